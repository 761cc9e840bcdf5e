// internal/domain/upload/service.go
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
)

// Service handles image upload business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new upload service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ImageUploadRequest represents an image upload request
type ImageUploadRequest struct {
	File   multipart.File        `json:"-"`
	Header *multipart.FileHeader `json:"-"`
	Bucket string                `json:"bucket"`
}

// UploadImage validates, stores and records a single image, returning
// the record with its public URL.
func (s *Service) UploadImage(req *ImageUploadRequest) (*UploadedFile, error) {
	if err := s.validateImageFile(req.Header); err != nil {
		return nil, err
	}

	bucket := req.Bucket
	if bucket == "" {
		bucket = "general"
	}

	filename := s.generateUniqueFilename(req.Header.Filename)
	relativePath := filepath.Join(bucket, filename)
	fullPath := filepath.Join(s.config.Storage.LocalPath, relativePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, req.File); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	uploadedFile := UploadedFile{
		OriginalName: req.Header.Filename,
		Filename:     filename,
		Path:         relativePath,
		URL:          s.getFileURL(relativePath),
		MimeType:     s.getMimeType(req.Header.Filename),
		Size:         req.Header.Size,
		Bucket:       bucket,
	}

	if err := s.db.Create(&uploadedFile).Error; err != nil {
		// Clean up file if database insert fails
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to save file info: %w", err)
	}

	return &uploadedFile, nil
}

// DeleteImage removes an uploaded image from disk and from the database.
func (s *Service) DeleteImage(imageID uuid.UUID) error {
	var uploadedFile UploadedFile
	if err := s.db.Where("id = ?", imageID).First(&uploadedFile).Error; err != nil {
		return fmt.Errorf("image not found")
	}

	fullPath := filepath.Join(s.config.Storage.LocalPath, uploadedFile.Path)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := s.db.Delete(&uploadedFile).Error; err != nil {
		return fmt.Errorf("failed to delete file info: %w", err)
	}

	return nil
}

// validateImageFile checks the extension and size against the upload
// configuration.
func (s *Service) validateImageFile(header *multipart.FileHeader) error {
	if header == nil {
		return fmt.Errorf("no file provided")
	}

	if header.Size > s.config.Upload.MaxSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", header.Size, s.config.Upload.MaxSize)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}
	return fmt.Errorf("file type .%s is not allowed", ext)
}

func (s *Service) generateUniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}

func (s *Service) getFileURL(relativePath string) string {
	base := strings.TrimSuffix(s.config.Storage.PublicBaseURL, "/")
	return fmt.Sprintf("%s/%s", base, filepath.ToSlash(relativePath))
}

func (s *Service) getMimeType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
