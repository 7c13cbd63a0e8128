package middleware

import (
	"Microblog/internal/model"
	"Microblog/internal/pkg/consts"
	"Microblog/internal/pkg/response"
	"Microblog/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 通过 Api-Key 解析当前用户并注入 Context
func AuthMiddleware(userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(consts.ApiKeyHeader)
		if apiKey == "" {
			response.Error(c, service.ValidationFailure("Header [%s] is required", consts.ApiKeyHeader))
			c.Abort()
			return
		}
		if len(apiKey) > consts.ApiKeyMaxLength {
			response.Error(c, service.ValidationFailure("Header [%s] must be at most %d characters", consts.ApiKeyHeader, consts.ApiKeyMaxLength))
			c.Abort()
			return
		}

		user, err := userSvc.GetUserByApiKey(c.Request.Context(), apiKey)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(consts.CtxUserKey, user)
		c.Next()
	}
}

// CurrentUser 获取 AuthMiddleware 注入的用户
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(consts.CtxUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
