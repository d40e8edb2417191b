package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"portfolio/internal/storage"
	filestorage "portfolio/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T, maxSize int64) *filestorage.LocalFileStorage {
	t.Helper()

	fs, err := filestorage.NewLocalFileStorage(t.TempDir(), "http://test.local/media/", maxSize)
	require.NoError(t, err)

	return fs
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t, 0)
	ctx := context.Background()

	t.Run("successful save", func(t *testing.T) {
		filePath, size, err := fs.Save(ctx, createTestFile(t, "logo.png", "png content"), "company_logos")
		require.NoError(t, err)

		assert.Equal(t, "company_logos/logo.png", filePath)
		assert.Equal(t, int64(11), size)

		data, err := os.ReadFile(fs.GetFullPath(filePath))
		require.NoError(t, err)
		assert.Equal(t, "png content", string(data))
	})

	t.Run("name collision gets suffix", func(t *testing.T) {
		first, _, err := fs.Save(ctx, createTestFile(t, "hero.jpg", "a"), "academy")
		require.NoError(t, err)
		second, _, err := fs.Save(ctx, createTestFile(t, "hero.jpg", "b"), "academy")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, strings.HasPrefix(second, "academy/hero_"))
		assert.True(t, strings.HasSuffix(second, ".jpg"))
	})

	t.Run("rejects unknown extension", func(t *testing.T) {
		_, _, err := fs.Save(ctx, createTestFile(t, "script.sh", "echo"), "")
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)
	})

	t.Run("path traversal is confined", func(t *testing.T) {
		filePath, _, err := fs.SaveReader(ctx, strings.NewReader("x"), "../../evil.png", "../up")
		require.NoError(t, err)
		assert.Equal(t, "up/evil.png", filePath)
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := fs.Save(ctx, createTestFile(t, "c.png", "x"), "subdir")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalFileStorage_MaxSize(t *testing.T) {
	fs := setupFileStorage(t, 4)
	ctx := context.Background()

	_, _, err := fs.Save(ctx, createTestFile(t, "big.png", "too large"), "")
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)

	_, _, err = fs.SaveReader(ctx, strings.NewReader("too large"), "big.png", "")
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)

	entries, err := os.ReadDir(fs.GetBaseDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t, 0)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		filePath, _, err := fs.SaveReader(ctx, strings.NewReader("content"), "to_delete.jpg", "")
		require.NoError(t, err)

		require.NoError(t, fs.Delete(ctx, filePath))

		_, err = os.Stat(fs.GetFullPath(filePath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing file is released silently", func(t *testing.T) {
		assert.NoError(t, fs.Delete(ctx, "nonexistent.jpg"))
		assert.NoError(t, fs.Delete(ctx, ""))
	})
}

func TestLocalFileStorage_Paths(t *testing.T) {
	fs := setupFileStorage(t, 0)

	assert.Equal(t, filepath.Join(fs.GetBaseDir(), "test", "file.txt"), fs.GetFullPath("test/file.txt"))
	assert.Equal(t, filepath.Join(fs.GetBaseDir(), "etc", "passwd"), fs.GetFullPath("../../etc/passwd"))
	assert.Equal(t, "http://test.local/media", fs.BaseURL())
	assert.Equal(t, "http://test.local/media/profile/me.jpg", fs.URL("profile/me.jpg"))
	assert.Equal(t, "", fs.URL(""))
}

func TestNewLocalFileStorage_InvalidDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := filestorage.NewLocalFileStorage(filepath.Join(file, "sub"), "", 0)
	assert.Error(t, err)
}

func TestConcurrentSaves(t *testing.T) {
	fs := setupFileStorage(t, 0)
	ctx := context.Background()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		paths = map[string]bool{}
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, _, err := fs.SaveReader(ctx, strings.NewReader("data"), "concurrent.png", "concurrent")
			assert.NoError(t, err)
			mu.Lock()
			paths[p] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, paths, 10)
	for p := range paths {
		assert.FileExists(t, fs.GetFullPath(p))
	}
}
