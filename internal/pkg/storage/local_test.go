package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store := NewLocalStore(dir)
	ctx := context.Background()

	src, err := store.Save(ctx, "cat.png", strings.NewReader("first"), 5)
	require.NoError(t, err)
	require.Equal(t, "tweets_images/cat.png", src)

	// 同名覆盖
	_, err = store.Save(ctx, "cat.png", strings.NewReader("second"), 6)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "cat.png"))
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	require.NoError(t, store.Delete(ctx, src))
	_, err = os.Stat(filepath.Join(dir, "cat.png"))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, store.Delete(ctx, src))
}

func TestLocalStoreStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	src, err := store.Save(context.Background(), "../../escape.png", strings.NewReader("x"), 1)
	require.NoError(t, err)
	require.Equal(t, "tweets_images/escape.png", src)

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	require.NoError(t, err)
}
