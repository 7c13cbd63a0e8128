package api

import (
	"Microblog/internal/api/handler"
	"Microblog/internal/service"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	UserFollowHandler  *handler.UserFollowHandler
	TweetHandler       *handler.TweetHandler
	TweetActionHandler *handler.TweetActionHandler
	MediaHandler       *handler.MediaHandler

	// 鉴权中间件依赖
	UserService service.UserService
}
