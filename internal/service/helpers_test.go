package service

import (
	"Microblog/internal/model"
	"Microblog/internal/pkg/database"
	"Microblog/internal/pkg/redis"
	"Microblog/internal/pkg/storage"
	"Microblog/internal/repository"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	uploads  string
	users    UserService
	follows  UserFollowService
	tweets   TweetService
	likes    TweetLikeService
	media    MediaService
	userRepo repository.UserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := database.CreateTempDB(t)
	uploads := t.TempDir()
	store := storage.NewLocalStore(uploads)

	userRepo := repository.NewUserRepo(db)
	tweetRepo := repository.NewTweetRepository(db)
	mediaRepo := repository.NewMediaRepo(db)

	return &testEnv{
		db:       db,
		uploads:  uploads,
		users:    NewUserService(userRepo, redis.NewCache(nil)),
		follows:  NewUserFollowService(userRepo, repository.NewUserFollowRepo(db), nil),
		tweets:   NewTweetService(tweetRepo, mediaRepo, store, nil),
		likes:    NewTweetLikeService(tweetRepo, repository.NewTweetLikeRepo(db), nil),
		media:    NewMediaService(mediaRepo, store),
		userRepo: userRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, name, apiKey string) *model.User {
	t.Helper()
	user := &model.User{Name: name, ApiKey: apiKey}
	require.NoError(t, e.userRepo.CreateUser(context.Background(), user))
	return user
}

func ptr[T any](v T) *T {
	return &v
}

var kindSentinels = map[ErrorKind]error{
	KindNotFound:             ErrNotFound,
	KindConflict:             ErrConflict,
	KindValidationFailure:    ErrValidationFailure,
	KindUnsupportedMediaType: ErrUnsupportedMediaType,
	KindPayloadTooLarge:      ErrPayloadTooLarge,
	KindStorageFailure:       ErrStorageFailure,
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "unexpected error: %v", err)

	// 未分类的底层错误不是 *Error，只能按 KindOf 判断
	var e *Error
	if !errors.As(err, &e) {
		return
	}
	require.ErrorIs(t, err, kindSentinels[kind])
	for other, sentinel := range kindSentinels {
		if other != kind {
			require.NotErrorIs(t, err, sentinel)
		}
	}
}

// racingFollowRepo 跳过存在性检查，模拟并发请求同时通过预检
type racingFollowRepo struct {
	repository.UserFollowRepo
}

func (s racingFollowRepo) GetUserFollow(context.Context, uint64, uint64) (*model.Follower, error) {
	return nil, nil
}

type racingLikeRepo struct {
	repository.TweetLikeRepo
}

func (s racingLikeRepo) CheckLikeExists(context.Context, uint64, uint64) (bool, error) {
	return false, nil
}

// failingImageRepo 写入图片记录总是失败
type failingImageRepo struct {
	repository.MediaRepo
}

func (s failingImageRepo) CreateImage(context.Context, *model.Image) error {
	return errors.New("insert image: connection reset")
}
