package service

import (
	"Microblog/internal/pkg/consts"
	"Microblog/internal/pkg/redis"
	"Microblog/internal/repository"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestGetUserByApiKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "Aleksiy", "test")

	got, err := env.users.GetUserByApiKey(ctx, "test")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = env.users.GetUserByApiKey(ctx, "nope")
	requireKind(t, err, KindNotFound)
	require.Equal(t, "User with api_key: nope not found", err.Error())
}

func TestGetUserByApiKeyUsesCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "Aleksiy", "test")

	mr := miniredis.RunT(t)
	rdb := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	svc := NewUserService(repository.NewUserRepo(env.db), redis.NewCache(rdb))

	got, err := svc.GetUserByApiKey(ctx, "test")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	cached, err := mr.Get(consts.UserApiKeyKey + "test")
	require.NoError(t, err)
	require.Equal(t, strconv.FormatUint(user.ID, 10), cached)
	require.Equal(t, time.Hour, mr.TTL(consts.UserApiKeyKey+"test"))

	got, err = svc.GetUserByApiKey(ctx, "test")
	require.NoError(t, err)
	require.Equal(t, "Aleksiy", got.Name)

	// 缓存指向的用户被删除后回退到按 key 查询
	require.NoError(t, env.userRepo.DeleteUser(ctx, user.ID))
	_, err = svc.GetUserByApiKey(ctx, "test")
	requireKind(t, err, KindNotFound)
	require.False(t, mr.Exists(consts.UserApiKeyKey+"test"))
}

func TestGetUserProfileNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.GetUserProfile(context.Background(), 42)
	requireKind(t, err, KindNotFound)
	require.Equal(t, "User with id: 42 not found", err.Error())
}
