package repository

import (
	"Microblog/internal/model"
	"context"

	"gorm.io/gorm"
)

type TweetLikeRepo interface {
	CheckLikeExists(ctx context.Context, userID, tweetID uint64) (bool, error)
	CreateLike(ctx context.Context, like *model.TweetLike) error
	DeleteLike(ctx context.Context, userID, tweetID uint64) (int64, error)
}

type TweetLikeRepoImpl struct {
	db *gorm.DB
}

func NewTweetLikeRepo(db *gorm.DB) TweetLikeRepo {
	return &TweetLikeRepoImpl{db: db}
}

func (s *TweetLikeRepoImpl) CheckLikeExists(ctx context.Context, userID, tweetID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.TweetLike{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error
	return count > 0, err
}

func (s *TweetLikeRepoImpl) CreateLike(ctx context.Context, like *model.TweetLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *TweetLikeRepoImpl) DeleteLike(ctx context.Context, userID, tweetID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&model.TweetLike{})
	return result.RowsAffected, result.Error
}
