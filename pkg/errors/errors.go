package errors

import (
	"errors"
	"fmt"
)

// Kind 错误类别
// 设计说明：
// 1. 类别描述"错误的语义"，边界层(pkg/response)负责把类别映射到HTTP状态码
// 2. 不在业务代码里直接使用HTTP状态码，保持领域层与传输层解耦
// 3. 类别集合是封闭的，新增类别必须同时补充response层的映射
type Kind int

const (
	KindInternal        Kind = iota // 内部错误（数据库异常等，不向客户端泄露细节）
	KindNotFound                    // 实体不存在
	KindInvalidArgument             // 参数非法（形状或取值）
	KindConflict                    // 业务冲突（库存不足、用户名重复、状态机违规）
	KindForbidden                   // 无权限
	KindUnauthorized                // 未认证或凭证无效
	KindImport                      // 导入失败（文件格式或IO）
	KindExport                      // 导出失败
)

// String 实现Stringer接口（作为problem document的title）
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "实体不存在"
	case KindInvalidArgument:
		return "参数错误"
	case KindConflict:
		return "数据冲突"
	case KindForbidden:
		return "无权限访问"
	case KindUnauthorized:
		return "认证失败"
	case KindImport:
		return "导入失败"
	case KindExport:
		return "导出失败"
	default:
		return "内部错误"
	}
}

// AppError 自定义应用错误
// 设计说明：
// 1. Kind用于边界层判断错误类别
// 2. Message是面向客户端的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
// 4. Fields携带逐字段的校验错误（一次响应枚举所有非法字段）
type AppError struct {
	Kind    Kind              `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation 创建带逐字段明细的参数错误
// 用途：绑定/校验失败时把所有非法字段一次性返回，而不是在第一个字段上失败
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Kind:    KindInvalidArgument,
		Message: "参数校验失败",
		Fields:  fields,
	}
}

// Wrap 包装系统错误（如数据库错误、文件IO错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: message,
		Err:     err,
	}
}

// WrapKind 以指定类别包装底层错误
func WrapKind(kind Kind, err error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	ErrInternal     = New(KindInternal, "系统内部错误")
	ErrUnauthorized = New(KindUnauthorized, "请先登录")
	ErrInvalidToken = New(KindUnauthorized, "无效的Token")
	ErrTokenExpired = New(KindUnauthorized, "Token已过期")
	ErrForbidden    = New(KindForbidden, "无权限执行此操作")
)

// =========================================
// 辅助函数
// =========================================

// KindOf 提取错误类别（非AppError一律视为Internal）
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
