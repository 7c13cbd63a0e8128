package storage

import (
	"Microblog/internal/api/config"
	"Microblog/internal/pkg/consts"
	minioInit "Microblog/internal/pkg/minio"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
)

const (
	DriverLocal = "local"
	DriverMinIO = "minio"
)

// Store 媒体文件存储，Save 返回写入 images.src 的相对路径
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, src string) error
}

// NewStore 按 media.driver 选择存储后端
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Media.Driver {
	case "", DriverLocal:
		return NewLocalStore(cfg.Media.UploadDir), nil
	case DriverMinIO:
		client, err := minioInit.NewClient(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return NewMinioStore(client, cfg.MinIO.Bucket), nil
	default:
		return nil, fmt.Errorf("unsupported media driver: %s", cfg.Media.Driver)
	}
}

// RelativePath 文件名只保留最后一段，防止写出上传目录
func RelativePath(filename string) string {
	return path.Join(consts.ImagesDir, filepath.Base(filename))
}
