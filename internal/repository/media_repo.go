package repository

import (
	"Microblog/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type MediaRepo interface {
	CreateImage(ctx context.Context, image *model.Image) error
	AttachImages(ctx context.Context, tweetID uint64, imageIDs []uint64) (int64, error)
	GetOrphanImages(ctx context.Context, before time.Time, limit int) ([]*model.Image, error)
	DeleteOrphanImage(ctx context.Context, id uint64) (bool, error)
	CountImagesBySrc(ctx context.Context, src string) (int64, error)
}

type MediaRepoImpl struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) MediaRepo {
	return &MediaRepoImpl{db: db}
}

func (s *MediaRepoImpl) CreateImage(ctx context.Context, image *model.Image) error {
	return s.db.WithContext(ctx).Create(image).Error
}

// AttachImages 批量设置 tweet_id，不存在的 id 不报错，已挂载的会被覆盖
func (s *MediaRepoImpl) AttachImages(ctx context.Context, tweetID uint64, imageIDs []uint64) (int64, error) {
	return attachImages(s.db.WithContext(ctx), tweetID, imageIDs)
}

// GetOrphanImages 获取 before 之前上传且仍未挂载的图片
func (s *MediaRepoImpl) GetOrphanImages(ctx context.Context, before time.Time, limit int) ([]*model.Image, error) {
	images := make([]*model.Image, 0)
	err := s.db.WithContext(ctx).
		Where("tweet_id IS NULL AND created_at < ?", before).
		Order("id").
		Limit(limit).
		Find(&images).Error
	return images, err
}

// DeleteOrphanImage 仅在图片仍未挂载时删除，返回是否删除
func (s *MediaRepoImpl) DeleteOrphanImage(ctx context.Context, id uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND tweet_id IS NULL", id).
		Delete(&model.Image{})
	return result.RowsAffected > 0, result.Error
}

// CountImagesBySrc 同名上传会共用一个文件，删除文件前需确认没有其它记录引用
func (s *MediaRepoImpl) CountImagesBySrc(ctx context.Context, src string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Image{}).
		Where("src = ?", src).
		Count(&count).Error
	return count, err
}

func attachImages(db *gorm.DB, tweetID uint64, imageIDs []uint64) (int64, error) {
	if len(imageIDs) == 0 {
		return 0, nil
	}
	result := db.Model(&model.Image{}).
		Where("id IN ?", imageIDs).
		Update("tweet_id", tweetID)
	return result.RowsAffected, result.Error
}
