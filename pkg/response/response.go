package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// ProblemDetail 统一错误响应结构
// 设计说明：
// 1. 对齐RFC 9457风格的problem document：{title, status, detail, timestamp, path}
// 2. Errors仅在参数校验失败时出现，一次性枚举所有非法字段
// 3. 内部错误的细节不进入detail，只写日志（防止泄露敏感信息）
type ProblemDetail struct {
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail"`
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// statusOf 错误类别 → HTTP状态码
// 映射关系是封闭的：未识别的类别一律降级为500
func statusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalidArgument, apperrors.KindImport:
		return http.StatusBadRequest
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// JSON 成功响应
// 说明：成功时直接返回DTO本体，不额外包装信封
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Problem 错误响应（自动按错误类别映射HTTP状态码）
// 用法：
//
//	book, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Problem(c, err)
//	    return
//	}
func Problem(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := statusOf(appErr.Kind)

	detail := appErr.Message
	if appErr.Kind == apperrors.KindInternal {
		// 内部错误不暴露底层细节
		detail = "系统内部错误"
	}

	c.AbortWithStatusJSON(status, ProblemDetail{
		Title:     appErr.Kind.String(),
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
		Path:      c.Request.URL.Path,
		Errors:    appErr.Fields,
	})
}
