package repository

import (
	"Microblog/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error)
	GetFollowers(ctx context.Context, id uint64) ([]*model.User, error)
	GetFollowing(ctx context.Context, id uint64) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

// GetUserById 用户不存在时返回 nil, nil
func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByApiKey 用户不存在时返回 nil, nil
func (s *UserRepoImpl) GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetFollowers 获取关注了 id 的用户
func (s *UserRepoImpl) GetFollowers(ctx context.Context, id uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN user_followers ON user_followers.follower = users.id").
		Where("user_followers.user_id = ?", id).
		Order("users.id").
		Find(&users).Error
	return users, err
}

// GetFollowing 获取 id 关注的用户
func (s *UserRepoImpl) GetFollowing(ctx context.Context, id uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN user_followers ON user_followers.user_id = users.id").
		Where("user_followers.follower = ?", id).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
