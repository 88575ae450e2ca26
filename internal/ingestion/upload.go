// Package ingestion handles resume file uploads: validation, transient
// storage, and plain-text extraction from PDF and DOCX documents.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload size limit (5 MiB).
const MaxFileSize = 5 << 20

// FieldName is the multipart form field carrying the resume file.
const FieldName = "resumeFile"

// allowedTypes maps accepted extensions to the MIME type the client must declare.
var allowedTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateUpload checks the original filename, declared MIME type, and size
// against the upload constraints. It returns a ValidationError or
// UnsupportedTypeError before any storage write happens.
func ValidateUpload(filename, declaredMIME string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	wantMIME, ok := allowedTypes[ext]
	if !ok {
		return &UnsupportedTypeError{Extension: ext}
	}

	// Strip any media type parameters before comparing.
	mime := declaredMIME
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	mime = strings.TrimSpace(strings.ToLower(mime))
	if mime != wantMIME {
		return &ValidationError{
			Field:   FieldName,
			Message: fmt.Sprintf("declared MIME type %q does not match extension %s", declaredMIME, ext),
		}
	}

	if size <= 0 {
		return &ValidationError{Field: FieldName, Message: "file is empty"}
	}
	if size > MaxFileSize {
		return &ValidationError{
			Field:   FieldName,
			Message: fmt.Sprintf("file size %d exceeds limit of %d bytes", size, MaxFileSize),
		}
	}

	return nil
}

// Store writes the upload to a unique path under dir, derived from the owner
// id, a nanosecond timestamp, and the original extension. The caller owns the
// returned path and must remove it when processing finishes, on every exit path.
func Store(dir string, ownerID uuid.UUID, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(dir, fmt.Sprintf("%s-%d%s", ownerID, time.Now().UnixNano(), ext))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return path, nil
}
