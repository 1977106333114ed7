package services

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

// 错误原因，HTTP 层据此映射状态码，客户端据此区分错误类别。
const (
	ReasonValidation             = "VALIDATION_ERROR"
	ReasonAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	ReasonPermissionDenied       = "PERMISSION_DENIED"
	ReasonNotFound               = "NOT_FOUND"
	ReasonStoreError             = "STORE_ERROR"
	ReasonTimeout                = "TIMEOUT"
)

// ValidationError 输入缺失或格式错误，400。
func ValidationError(format string, args ...any) *errors.Error {
	return errors.BadRequest(ReasonValidation, fmt.Sprintf(format, args...))
}

// AuthenticationRequired 需要登录或凭据无效，401。
func AuthenticationRequired(format string, args ...any) *errors.Error {
	return errors.Unauthorized(ReasonAuthenticationRequired, fmt.Sprintf(format, args...))
}

// PermissionDenied 已登录但角色不足，403。
func PermissionDenied(format string, args ...any) *errors.Error {
	return errors.Forbidden(ReasonPermissionDenied, fmt.Sprintf(format, args...))
}

// NotFound 资源不存在或尚不可见，404。
func NotFound(format string, args ...any) *errors.Error {
	return errors.NotFound(ReasonNotFound, fmt.Sprintf(format, args...))
}

// StoreError 存储层失败，500，原始错误保留为 cause。
func StoreError(op string, cause error) *errors.Error {
	return errors.InternalServer(ReasonStoreError, op+" failed").WithCause(fmt.Errorf("%s: %w", op, cause))
}

// Timeout 存储调用超出截止时间，504。
func Timeout(op string, cause error) *errors.Error {
	return errors.GatewayTimeout(ReasonTimeout, op+" timed out").WithCause(cause)
}

// IsValidation 等判断函数按 reason 匹配，兼容经过 HTTP 传输还原的错误。
func IsValidation(err error) bool { return errors.Reason(err) == ReasonValidation }

// IsAuthenticationRequired 判断是否需要登录。
func IsAuthenticationRequired(err error) bool {
	return errors.Reason(err) == ReasonAuthenticationRequired
}

// IsPermissionDenied 判断是否权限不足。
func IsPermissionDenied(err error) bool { return errors.Reason(err) == ReasonPermissionDenied }

// IsNotFound 判断资源是否不存在。
func IsNotFound(err error) bool { return errors.Reason(err) == ReasonNotFound }

// IsStoreError 判断是否存储失败。
func IsStoreError(err error) bool { return errors.Reason(err) == ReasonStoreError }

// IsTimeout 判断是否超时。
func IsTimeout(err error) bool { return errors.Reason(err) == ReasonTimeout }

// storeFailure 将仓储返回的错误归入错误分类：已分类的原样返回，超时归为 Timeout，其余归为 StoreError。
func storeFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	var classified *errors.Error
	if errors.As(err, &classified) && classified.Reason != "" {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout(op, err)
	}
	return StoreError(op, err)
}
