package service

import (
	"Microblog/internal/model"
	"Microblog/internal/pkg/consts"
	"Microblog/internal/pkg/storage"
	"Microblog/internal/repository"
	"context"
	"io"
	log "log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const orphanBatchSize = 200

type MediaService interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (uint64, error)
	CleanupOrphans(ctx context.Context, before time.Time) (int, error)
}

type MediaServiceImpl struct {
	mediaRepo repository.MediaRepo
	store     storage.Store
}

func NewMediaService(mediaRepo repository.MediaRepo, store storage.Store) MediaService {
	return &MediaServiceImpl{
		mediaRepo: mediaRepo,
		store:     store,
	}
}

// Upload 保存图片并登记为未挂载状态，返回图片 id
func (s *MediaServiceImpl) Upload(ctx context.Context, filename string, r io.Reader, size int64) (uint64, error) {
	if !IsImageFilename(filename) {
		return 0, UnsupportedMediaType("File type not supported")
	}

	src, err := s.store.Save(ctx, filename, r, size)
	if err != nil {
		return 0, StorageFailure(err, "Failed to save file")
	}

	image := &model.Image{Src: src}
	if err = s.mediaRepo.CreateImage(ctx, image); err != nil {
		// 没有记录的文件清理任务扫不到，这里直接回收
		removeUnreferencedFile(ctx, s.mediaRepo, s.store, src)
		return 0, err
	}
	return image.ID, nil
}

// CleanupOrphans 删除 before 之前上传且从未挂载的图片，返回删除数量
func (s *MediaServiceImpl) CleanupOrphans(ctx context.Context, before time.Time) (int, error) {
	count := 0
	for {
		images, err := s.mediaRepo.GetOrphanImages(ctx, before, orphanBatchSize)
		if err != nil {
			return count, err
		}

		removed := 0
		for _, image := range images {
			// 先删记录再删文件，期间被挂载的图片不会被删除
			ok, err := s.mediaRepo.DeleteOrphanImage(ctx, image.ID)
			if err != nil {
				return count, err
			}
			if !ok {
				continue
			}
			removed++
			removeUnreferencedFile(ctx, s.mediaRepo, s.store, image.Src)
		}

		count += removed
		if len(images) < orphanBatchSize || removed == 0 {
			return count, nil
		}
	}
}

// removeUnreferencedFile 文件仍被其它图片记录引用时保留
func removeUnreferencedFile(ctx context.Context, mediaRepo repository.MediaRepo, store storage.Store, src string) {
	refs, err := mediaRepo.CountImagesBySrc(ctx, src)
	if err != nil {
		log.WarnContext(ctx, "failed to count file references", "src", src, "err", err)
		return
	}
	if refs > 0 {
		return
	}
	if err = store.Delete(ctx, src); err != nil {
		log.WarnContext(ctx, "failed to delete media file", "src", src, "err", err)
	}
}

// IsImageFilename 扩展名不区分大小写
func IsImageFilename(filename string) bool {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return false
	}
	return slices.Contains(consts.ImageExtensions, strings.ToLower(filepath.Ext(base)))
}
