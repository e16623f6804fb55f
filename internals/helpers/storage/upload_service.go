package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	helper "abhm_backend/internals/helpers"
)

const MaxUploadSize = 5 * 1024 * 1024 // 5MB

var allowedImageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// UploadService stores multipart files under BaseDir/<field>/<YYYY-MM>/.
// Stored paths are relative, forward-slashed, and served under /uploads.
type UploadService struct {
	BaseDir string
}

func NewUploadService(baseDir string) *UploadService {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &UploadService{BaseDir: baseDir}
}

// SaveImage validates and persists one uploaded image, returning its relative path.
func (s *UploadService) SaveImage(field string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", fmt.Errorf("only image files are allowed (got %q)", ext)
	}
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", fh.Size, MaxUploadSize)
	}

	yearMonth := time.Now().Format("2006-01")
	dir := filepath.Join(s.BaseDir, field, yearMonth)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := helper.GenerateUniqueFilename(field, fh.Filename)
	dst := filepath.Join(dir, filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	// always forward slashes in stored references
	return path.Join(s.BaseDir, field, yearMonth, filename), nil
}

// SavePhoto stores a member photo and normalizes it to webp for smaller cards.
// Normalization failure is non-fatal; the original upload is kept.
func (s *UploadService) SavePhoto(field string, fh *multipart.FileHeader) (string, error) {
	stored, err := s.SaveImage(field, fh)
	if err != nil || stored == "" {
		return stored, err
	}
	converted, convErr := ConvertToWebp(filepath.FromSlash(stored))
	if convErr != nil {
		log.Printf("[Storage] webp conversion skipped for %s: %v", stored, convErr)
		return stored, nil
	}
	return filepath.ToSlash(converted), nil
}

// Delete removes a previously stored file; best effort only.
func (s *UploadService) Delete(relPath string) {
	if relPath == "" {
		return
	}
	if err := os.Remove(filepath.FromSlash(relPath)); err != nil {
		log.Printf("[Storage] failed to delete %s: %v", relPath, err)
	} else {
		log.Printf("[Storage] deleted replaced file: %s", relPath)
	}
}
