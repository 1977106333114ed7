package dto

import (
	"github.com/Kermitroid/outterspace2/internal/services"
)

// SignUpRequest 是注册请求体。
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// ToInput 转换为 services.SignUpInput。
func (r SignUpRequest) ToInput() services.SignUpInput {
	return services.SignUpInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Username: r.Username,
	}
}

// SignInRequest 是登录请求体。
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest 是刷新请求体，refresh_token 为空时读取会话 Cookie。
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
