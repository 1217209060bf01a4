// Package upload validates and stores uploaded gallery and service images.
package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidFileType is returned when the file extension is not on the allow-list.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrEmptyFilename is returned when the client-supplied filename sanitizes to nothing.
	ErrEmptyFilename = errors.New("empty filename")
)

// allowedExtensions is the set of accepted image extensions, compared
// case-insensitively against the part after the final dot.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return false
	}

	_, ok := allowedExtensions[strings.ToLower(filename[idx+1:])]

	return ok
}

// Sanitize strips path separators and unsafe characters from a
// client-supplied filename. Spaces become underscores; anything outside
// [A-Za-z0-9._-] is dropped.
func Sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	return strings.Trim(b.String(), "._")
}

// Save validates and writes the uploaded file into the upload directory
// under its sanitized filename, returning the stored name. A name
// collision silently overwrites the existing file.
func Save(fileHeader *multipart.FileHeader, uploadDir string) (string, error) {
	if !Allowed(fileHeader.Filename) {
		return "", ErrInvalidFileType
	}

	filename := Sanitize(fileHeader.Filename)
	if filename == "" {
		return "", ErrEmptyFilename
	}

	if err := os.MkdirAll(uploadDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close destination file: %w", err)
	}

	return filename, nil
}

// Remove deletes the named file from the upload directory. A missing file
// is not an error, so delete stays idempotent.
func Remove(uploadDir, filename string) error {
	if filename == "" {
		return nil
	}

	err := os.Remove(filepath.Join(uploadDir, filepath.Base(filename)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	return nil
}
