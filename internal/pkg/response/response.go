package response

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/pkg/util"
	"Microblog/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const storageFailureMessage = "Internal storage error"

// Success 成功返回封装，data 需自带 result 字段
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OK 仅返回 {"result": true}
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Response{Result: true})
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, kind service.ErrorKind, message string) {
	c.JSON(status, dto.ErrorResponse{
		Result:       false,
		ErrorType:    string(kind),
		ErrorMessage: message,
	})
}

// Error 处理错误，按错误类型映射状态码
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusUnprocessableEntity, service.KindValidationFailure, util.ValidationMessage(err))
		return
	}

	kind := service.KindOf(err)
	code, ok := service.ErrorMap[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	message := err.Error()
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		message = storageFailureMessage
	}
	if kind == service.KindStorageFailure {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	Fail(c, code, kind, message)
}

// BindError 请求参数绑定失败统一视为 ValidationFailure
func BindError(c *gin.Context, err error) {
	Fail(c, http.StatusUnprocessableEntity, service.KindValidationFailure, util.ValidationMessage(err))
}
