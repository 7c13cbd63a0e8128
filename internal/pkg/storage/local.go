package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore 写入本地目录，同名文件直接覆盖
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Save(_ context.Context, filename string, r io.Reader, _ int64) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err = io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return RelativePath(filename), nil
}

// Delete 文件不存在视为成功
func (s *LocalStore) Delete(_ context.Context, src string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(src)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
