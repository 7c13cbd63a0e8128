package database

import (
	"Microblog/internal/api/config"
	"Microblog/internal/model"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TestUserName   = "Aleksiy"
	TestUserApiKey = "test"
)

var demoNames = []string{"Maria", "Ivan", "Olga", "Pavel", "Nina", "Sergey", "Anna", "Dmitry"}

// Seed 在 id=1 的用户不存在时写入测试用户与演示数据
func Seed(ctx context.Context, db *gorm.DB, cfg config.SeedConfig) error {
	if !cfg.Enabled {
		return nil
	}

	var first model.User
	err := db.WithContext(ctx).First(&first, 1).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check seed state: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.User{Name: TestUserName, ApiKey: TestUserApiKey}).Error; err != nil {
			return err
		}
		for i := 0; i < cfg.DemoUsers; i++ {
			user := &model.User{
				Name:   demoNames[i%len(demoNames)],
				ApiKey: uuid.NewString()[:13],
			}
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			tweet := &model.Tweet{
				UserID:  user.ID,
				Content: fmt.Sprintf("Hello from %s!", user.Name),
			}
			if err := tx.Create(tweet).Error; err != nil {
				return err
			}
		}
		log.InfoContext(ctx, "Seed data created", "demo_users", cfg.DemoUsers)
		return nil
	})
}
