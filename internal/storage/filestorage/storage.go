package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"portfolio/internal/storage"
)

// FileStorage stores uploaded assets (photos, logos, resumes) and releases
// them when a record stops referencing them.
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, subPath string) (filePath string, fileSize int64, err error)
	SaveReader(ctx context.Context, src io.Reader, filename, subPath string) (filePath string, fileSize int64, err error)
	Delete(ctx context.Context, filePath string) error
	GetFullPath(relativePath string) string
	URL(relativePath string) string
	BaseURL() string
	GetBaseDir() string
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// LocalFileStorage keeps assets on the local file system under baseDir.
type LocalFileStorage struct {
	baseDir string // e.g. "./media"
	baseURL string // e.g. "/media"
	maxSize int64  // 0 disables the check
}

func NewLocalFileStorage(baseDir, baseURL string, maxSize int64) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", 0, storage.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	return s.SaveReader(ctx, src, file.Filename, subPath)
}

// SaveReader writes src under subPath. An existing file with the same name
// is never overwritten: a short random suffix is added instead.
func (s *LocalFileStorage) SaveReader(ctx context.Context, src io.Reader, filename, subPath string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	name := filepath.Base(filepath.Clean("/" + filename))
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return "", 0, storage.ErrInvalidFileType
	}

	dir := filepath.Join(s.baseDir, filepath.Clean("/"+subPath))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directories: %w", err)
	}

	dst, fullPath, err := createUnique(dir, name)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	reader := src
	if s.maxSize > 0 {
		reader = io.LimitReader(src, s.maxSize+1)
	}

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, reader)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(fullPath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		<-done
		_ = os.Remove(fullPath)
		return "", 0, ctx.Err()
	}

	if s.maxSize > 0 && size > s.maxSize {
		_ = os.Remove(fullPath)
		return "", 0, storage.ErrFileTooLarge
	}

	rel, err := filepath.Rel(s.baseDir, fullPath)
	if err != nil {
		return "", 0, err
	}

	return filepath.ToSlash(rel), size, nil
}

const maxNameAttempts = 5

// createUnique claims dir/name exclusively, adding a short random suffix when
// the name is taken. Two concurrent saves never share a file.
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := name
	for i := 0; i < maxNameAttempts; i++ {
		fullPath := filepath.Join(dir, candidate)
		f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			return f, fullPath, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", err
		}
		candidate = base + "_" + uuid.NewString()[:8] + ext
	}

	return nil, "", fmt.Errorf("no free name for %s", name)
}

// Delete removes a stored asset. Releasing an asset that is already gone is
// not an error.
func (s *LocalFileStorage) Delete(ctx context.Context, filePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if filePath == "" {
		return nil
	}

	err := os.Remove(s.GetFullPath(filePath))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

// GetFullPath returns the on-disk path, confined to baseDir.
func (s *LocalFileStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.baseDir, filepath.Clean("/"+relativePath))
}

// URL returns the public URL for a stored asset, or "" for an empty path.
func (s *LocalFileStorage) URL(relativePath string) string {
	if relativePath == "" {
		return ""
	}

	return s.baseURL + path.Clean("/"+relativePath)
}

func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
