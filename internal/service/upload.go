// Package service contains application services above the repository layer.
package service

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"vendora/internal/config"
	"vendora/internal/middleware"
	"vendora/internal/models"

	"github.com/google/uuid"
)

const (
	// UploadFieldName is the multipart field carrying the optional image.
	UploadFieldName = "image"
	// MaxUploadSizeBytes caps accepted image uploads at 5 MiB.
	MaxUploadSizeBytes = 5 * 1024 * 1024
	// StaticPrefix is the URL path prefix under which uploads are served.
	StaticPrefix = "/uploads"
)

// SaveImageInput describes one uploaded file.
type SaveImageInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// UploadService validates and persists uploaded images into a flat upload
// directory and builds their public URLs.
type UploadService struct {
	uploadDir string
	baseURL   string
}

// NewUploadService creates the service and ensures the upload directory exists.
func NewUploadService(cfg *config.Config) (*UploadService, error) {
	dir := cfg.UploadDir
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", dir, err)
	}

	return &UploadService{
		uploadDir: dir,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *UploadService) Dir() string {
	return s.uploadDir
}

// SaveImage validates one uploaded image and writes it to the upload
// directory under a collision-resistant name, returning its public URL.
// Validation failures happen before any disk write. File writes are not
// transactional with any later DB insert; orphan files are accepted.
func (s *UploadService) SaveImage(in SaveImageInput) (string, error) {
	if !isAllowedImageMIME(in.ContentType) {
		middleware.UploadsTotal.WithLabelValues("rejected").Inc()
		return "", models.NewValidationError("Invalid file type. Only JPEG, PNG, and JPG are allowed.")
	}
	if int64(len(in.Content)) > MaxUploadSizeBytes {
		middleware.UploadsTotal.WithLabelValues("rejected").Inc()
		return "", models.NewValidationError("File too large (max 5MB)")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(in.Filename))
	if err := os.WriteFile(filepath.Join(s.uploadDir, name), in.Content, 0o600); err != nil {
		middleware.UploadsTotal.WithLabelValues("failed").Inc()
		return "", models.NewInternalError(err)
	}

	middleware.UploadsTotal.WithLabelValues("stored").Inc()
	return s.baseURL + StaticPrefix + "/" + name, nil
}

// isAllowedImageMIME reports whether the declared content type is on the
// whitelist. Exactly JPEG, PNG and the legacy image/jpg alias are accepted.
func isAllowedImageMIME(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	default:
		return false
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
