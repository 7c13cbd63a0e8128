package model

import (
	"time"
)

// Image 上传后先处于未挂载状态（TweetID 为空），发推时再关联
type Image struct {
	ID        uint64    `gorm:"primaryKey"`
	TweetID   *uint64   `gorm:"index:idx_image_tweet_id"`
	Src       string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Image) TableName() string {
	return "images"
}
