package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/logger"
)

//go:generate mockgen -source=local.go -destination=../mocks/storage_mocks.go -package=mocks

// Store persists uploaded avatar and cover images and hands back the public
// path the UI serves them from. Delete is best-effort cleanup: removal of a
// stale file must never fail the surrounding operation.
type Store interface {
	Save(file *multipart.FileHeader) (string, error)
	Delete(publicPath string)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// LocalStore keeps files on the local filesystem under a base directory and
// serves them under a public prefix
type LocalStore struct {
	baseDir      string
	publicPrefix string
	maxBytes     int64
	log          *logger.Logger
}

// NewLocalStore creates the base directory if needed and returns a store
func NewLocalStore(baseDir string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		baseDir:      baseDir,
		publicPrefix: "/uploads",
		maxBytes:     maxBytes,
		log:          logger.New(),
	}, nil
}

// Save validates and writes an uploaded file, returning its public path
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrUploadMissing
	}
	if file.Size > s.maxBytes {
		return "", apperrors.ErrUploadTooLarge
	}
	if !allowedImageTypes[strings.ToLower(file.Header.Get("Content-Type"))] {
		return "", apperrors.ErrUploadNotImage
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(),
		rand.Int63n(1_000_000_000),
		strings.ToLower(filepath.Ext(file.Filename)),
	)

	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path.Join(s.publicPrefix, name), nil
}

// Delete removes a previously saved file. Failures are logged and swallowed.
func (s *LocalStore) Delete(publicPath string) {
	if publicPath == "" {
		return
	}
	// publicPath looks like "/uploads/<name>"; only the name is trusted
	full := filepath.Join(s.baseDir, filepath.Base(publicPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).WithField("path", publicPath).Warn("could not delete uploaded file")
	}
}
