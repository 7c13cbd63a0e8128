package database

import (
	"Microblog/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// Migrate 建表，外键均为 ON DELETE CASCADE
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Image{},
		&model.TweetLike{},
		&model.Follower{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
