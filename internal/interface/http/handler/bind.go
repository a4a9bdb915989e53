// Package handler 实现HTTP处理器，只做参数解析和DTO转换，业务在应用层。
package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bindJSON 绑定并校验JSON请求体
// 校验失败时一次性枚举所有非法字段，而不是只报第一个
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				fields[strings.ToLower(fe.Field())] = validationMessage(fe)
			}
			return apperrors.Validation(fields)
		}
		return apperrors.New(apperrors.KindInvalidArgument, "请求体格式错误")
	}
	return nil
}

// validationMessage 校验规则 → 提示信息
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "min":
		return "不能小于" + fe.Param()
	case "max":
		return "不能大于" + fe.Param()
	default:
		return "格式不正确"
	}
}

// uintParam 解析路径中的无符号整数参数
func uintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.Newf(apperrors.KindInvalidArgument, "路径参数%s必须是正整数", name)
	}
	return uint(value), nil
}

// uintQuery 解析查询串中的无符号整数参数（必填）
func uintQuery(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0, apperrors.Newf(apperrors.KindInvalidArgument, "参数%s必须是正整数", name)
	}
	return uint(value), nil
}

// intQuery 解析查询串中的整数参数（必填）
func intQuery(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, apperrors.Newf(apperrors.KindInvalidArgument, "参数%s必须是整数", name)
	}
	return value, nil
}

// timeQuery 解析查询串中的时间参数（可选，缺省返回nil）
func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := dto.ParseTime(raw)
	if err != nil {
		return nil, apperrors.Newf(apperrors.KindInvalidArgument, "参数%s的时间格式必须是%s", name, dto.DateTimeLayout)
	}
	return &t, nil
}
