package repository

import (
	"Microblog/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserFollowRepo interface {
	GetUserFollow(ctx context.Context, userID, followerID uint64) (*model.Follower, error)
	CreateUserFollow(ctx context.Context, follow *model.Follower) error
	DeleteUserFollow(ctx context.Context, userID, followerID uint64) (int64, error)
}

type UserFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &UserFollowRepoImpl{db: db}
}

// GetUserFollow 获取 followerID 对 userID 的关注关系，不存在时返回 nil, nil
func (s *UserFollowRepoImpl) GetUserFollow(ctx context.Context, userID, followerID uint64) (*model.Follower, error) {
	var follow model.Follower
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND follower = ?", userID, followerID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

// CreateUserFollow 重复插入时由复合主键拒绝，调用方通过 IsDuplicateError 识别
func (s *UserFollowRepoImpl) CreateUserFollow(ctx context.Context, follow *model.Follower) error {
	return s.db.WithContext(ctx).Omit("Followee", "Fan").Create(follow).Error
}

// DeleteUserFollow 返回实际删除的行数
func (s *UserFollowRepoImpl) DeleteUserFollow(ctx context.Context, userID, followerID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND follower = ?", userID, followerID).
		Delete(&model.Follower{})
	return result.RowsAffected, result.Error
}
