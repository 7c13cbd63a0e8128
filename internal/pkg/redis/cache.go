package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 对 *redis.Client 的薄封装，client 为 nil 时所有操作都是空操作
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// GetValue 获取字符串类型的值，key 不存在时返回空串
func (c *Cache) GetValue(ctx context.Context, key string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetWithExpiration 设置键值对并设置过期时间
func (c *Cache) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// DeleteKey 删除一个键
func (c *Cache) DeleteKey(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}
