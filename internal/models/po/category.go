package po

import (
	"time"

	"github.com/google/uuid"
)

// Category 表示 outterspace.categories 表的行。
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
