package model

import (
	"time"
)

type Tweet struct {
	ID        uint64    `gorm:"primaryKey"`
	Content   string    `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt time.Time `gorm:"not null;index:idx_created_at"`
	UserID    uint64    `gorm:"not null;index:idx_user_id"`

	// 关联关系
	Author      *User        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Attachments []*Image     `gorm:"foreignKey:TweetID;references:ID;constraint:OnDelete:CASCADE"`
	Likes       []*TweetLike `gorm:"foreignKey:TweetID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Tweet) TableName() string {
	return "tweets"
}
