package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rkenterprise/site-backend/internal/config"
	"github.com/rs/zerolog"
)

// Sentinel errors for image uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Allowed image extensions and the declared MIME types accepted for them.
var (
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}
	allowedMIMETypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
	}
)

// MediaService owns the product image lifecycle: validated writes into the
// upload directory and best-effort deletes. Deletion failures are logged
// and swallowed; a missing file is not an error.
type MediaService struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewMediaService creates a new MediaService.
func NewMediaService(cfg *config.Config, log zerolog.Logger) *MediaService {
	return &MediaService{cfg: cfg, log: log}
}

// SaveUpload validates and stores an uploaded image, returning the relative
// path stored in product rows (e.g. "assets/img/products/<name>") and the
// generated filename. Validation happens before any byte is written, so a
// rejected upload leaves no file behind.
func (s *MediaService) SaveUpload(file multipart.File, header *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	if contentType := header.Header.Get("Content-Type"); contentType != "" && !allowedMIMETypes[contentType] {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}

	if header.Size > s.cfg.MaxUploadBytes {
		return "", "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	if err := os.MkdirAll(s.cfg.UploadDir(), 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := generateFilename(ext)
	destPath := filepath.Join(s.cfg.UploadDir(), filename)

	dst, err := os.Create(destPath)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// Half-written file is useless; remove it before reporting.
		os.Remove(destPath)
		return "", "", fmt.Errorf("write file: %w", err)
	}

	return path.Join(config.ProductImagePath, filename), filename, nil
}

// Delete removes a previously stored file by its relative path. Best
// effort: missing files and removal failures are logged, never surfaced.
func (s *MediaService) Delete(relPath string) {
	if relPath == "" {
		return
	}

	full, err := s.resolve(relPath)
	if err != nil {
		s.log.Warn().Str("path", relPath).Err(err).Msg("Refusing file delete outside public dir")
		return
	}

	switch err := os.Remove(full); {
	case err == nil:
		s.log.Debug().Str("path", relPath).Msg("File deleted")
	case os.IsNotExist(err):
		s.log.Debug().Str("path", relPath).Msg("File already gone")
	default:
		s.log.Error().Str("path", relPath).Err(err).Msg("File delete failed")
	}
}

// resolve turns a stored relative path into an on-disk path, rejecting
// anything that escapes the public directory.
func (s *MediaService) resolve(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(relPath, "/")))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", errors.New("path escapes public dir")
	}
	return filepath.Join(s.cfg.PublicDir, clean), nil
}

// generateFilename builds a collision-resistant name from the current time
// and a random suffix, keeping the original extension.
func generateFilename(ext string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
