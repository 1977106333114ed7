package services

import "github.com/google/uuid"

// Identity 是经过访问令牌校验后的调用方，零值表示匿名。
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

// Anonymous 判断调用方是否未登录。
func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}
