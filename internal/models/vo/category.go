package vo

import (
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/google/uuid"
)

// AllCategoryName 是表示“不过滤”的伪分类名。
const AllCategoryName = "All"

// Category 分类视图；伪分类 All 的 ID 为 nil。
type Category struct {
	ID   *uuid.UUID `json:"id"`
	Name string     `json:"name"`
}

// AllCategory 返回伪分类。
func AllCategory() Category {
	return Category{Name: AllCategoryName}
}

// CategoriesWithAll 在存储分类前插入 All，同名分类保持原样不合并。
func CategoriesWithAll(rows []po.Category) []Category {
	out := make([]Category, 0, len(rows)+1)
	out = append(out, AllCategory())
	for _, row := range rows {
		id := row.ID
		out = append(out, Category{ID: &id, Name: row.Name})
	}
	return out
}
