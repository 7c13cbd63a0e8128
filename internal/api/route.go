package api

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/api/middleware"
	"Microblog/internal/pkg/logger"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, maxUploadBytes int64) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	// 带与不带结尾斜杠的路径都直接注册
	r.RedirectTrailingSlash = false

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(group.UserService)

	apiGroup := r.Group("/api")
	{
		handle(apiGroup, http.MethodGet, "/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.Response{Result: true})
		})

		userGroup := apiGroup.Group("/users")
		{
			handle(userGroup, http.MethodGet, "/me", auth, group.UserHandler.GetMe)
			handle(userGroup, http.MethodGet, "/:id", group.UserHandler.GetUser)
			handle(userGroup, http.MethodPost, "/:id/follow", auth, group.UserFollowHandler.Follow)
			handle(userGroup, http.MethodDelete, "/:id/follow", auth, group.UserFollowHandler.Unfollow)
		}

		tweetGroup := apiGroup.Group("/tweets")
		{
			handle(tweetGroup, http.MethodGet, "", group.TweetHandler.ListTweets)
			handle(tweetGroup, http.MethodPost, "", auth, group.TweetHandler.CreateTweet)
			handle(tweetGroup, http.MethodDelete, "/:id", auth, group.TweetHandler.DeleteTweet)
			handle(tweetGroup, http.MethodPost, "/:id/likes", auth, group.TweetActionHandler.LikeTweet)
			handle(tweetGroup, http.MethodDelete, "/:id/likes", auth, group.TweetActionHandler.UnlikeTweet)
		}

		mediaGroup := apiGroup.Group("/medias")
		{
			handle(mediaGroup, http.MethodPost, "", middleware.UploadLimitMiddleware(maxUploadBytes), group.MediaHandler.Upload)
		}
	}

	return r
}

// handle 同时注册 path 与 path + "/"
func handle(g *gin.RouterGroup, method, path string, handlers ...gin.HandlerFunc) {
	g.Handle(method, path, handlers...)
	if !strings.HasSuffix(path, "/") {
		g.Handle(method, path+"/", handlers...)
	}
}
