package wire

import (
	"Microblog/internal/api"
	"Microblog/internal/api/config"
	"Microblog/internal/api/handler"
	"Microblog/internal/job"
	"Microblog/internal/pkg/cron"
	"Microblog/internal/pkg/kafka"
	"Microblog/internal/pkg/redis"
	"Microblog/internal/pkg/storage"
	"Microblog/internal/repository"
	"Microblog/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Infra 外部依赖，Cache 与 Publisher 可以为空
type Infra struct {
	DB        *gorm.DB
	Cache     *redis.Cache
	Store     storage.Store
	Publisher kafka.Publisher
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(infra *Infra, cfg *config.Config) (*ApplicationContainer, error) {
	db := infra.DB
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	tweetRepo := repository.NewTweetRepository(db)
	tweetLikeRepo := repository.NewTweetLikeRepo(db)
	mediaRepo := repository.NewMediaRepo(db)

	userService := service.NewUserService(userRepo, infra.Cache)
	userFollowService := service.NewUserFollowService(userRepo, userFollowRepo, infra.Publisher)
	tweetService := service.NewTweetService(tweetRepo, mediaRepo, infra.Store, infra.Publisher)
	tweetLikeService := service.NewTweetLikeService(tweetRepo, tweetLikeRepo, infra.Publisher)
	mediaService := service.NewMediaService(mediaRepo, infra.Store)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService),
		UserFollowHandler:  handler.NewUserFollowHandler(userFollowService),
		TweetHandler:       handler.NewTweetHandler(tweetService),
		TweetActionHandler: handler.NewTweetActionHandler(tweetLikeService),
		MediaHandler:       handler.NewMediaHandler(mediaService, cfg.Media.MaxFileSizeBytes),
		UserService:        userService,
	}

	router := api.SetupRouter(handlers, cfg.Media.MaxFileSizeBytes)

	mediaCleanupJob := job.NewMediaCleanupJob(mediaService, cfg.Media.OrphanTTL())
	cronMgr := cron.NewCronManager(cfg.Media.CleanupCron, mediaCleanupJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
