package repository

import (
	"Microblog/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TweetRepo interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet, mediaIDs []uint64) error
	GetTweet(ctx context.Context, id uint64) (*model.Tweet, error)
	GetUserTweet(ctx context.Context, id, userID uint64) (*model.Tweet, error)
	GetAllTweets(ctx context.Context) ([]*model.Tweet, error)
	DeleteTweet(ctx context.Context, id uint64) error
}

type TweetRepoImpl struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepo {
	return &TweetRepoImpl{
		db: db,
	}
}

// CreateTweet 写入推文并在同一事务内挂载媒体
func (s *TweetRepoImpl) CreateTweet(ctx context.Context, tweet *model.Tweet, mediaIDs []uint64) error {
	if len(mediaIDs) == 0 {
		return s.db.WithContext(ctx).Omit(clause.Associations).Create(tweet).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(tweet).Error; err != nil {
			return err
		}
		_, err := attachImages(tx, tweet.ID, mediaIDs)
		return err
	})
}

// GetTweet 不存在时返回 nil, nil
func (s *TweetRepoImpl) GetTweet(ctx context.Context, id uint64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := s.db.WithContext(ctx).First(&tweet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tweet, nil
}

// GetUserTweet 仅返回属于 userID 的推文，附带附件
func (s *TweetRepoImpl) GetUserTweet(ctx context.Context, id, userID uint64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := s.db.WithContext(ctx).
		Preload("Attachments").
		Where("id = ? AND user_id = ?", id, userID).
		First(&tweet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tweet, nil
}

// GetAllTweets 按创建时间倒序，作者/点赞/附件各用一次 IN 查询批量加载
func (s *TweetRepoImpl) GetAllTweets(ctx context.Context) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_id")
		}).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "tweet_id", "src").Order("id")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// DeleteTweet 附件与点赞由外键级联删除
func (s *TweetRepoImpl) DeleteTweet(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Tweet{}, id).Error
}
