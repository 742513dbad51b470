package resume

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxFileSize bounds uploaded resume files.
const MaxFileSize = 5 << 20

// User-facing validation errors.
var (
	ErrNoFile          = errors.New("No file provided")
	ErrFileTooLarge    = errors.New("File size must be less than 5MB")
	ErrUnsupportedType = errors.New("Only PDF and DOCX files are supported")
)

var supportedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".doc":  {},
}

// ValidateFile checks an upload's name and size before any processing.
// The returned error message is user-facing.
func ValidateFile(fileName string, size int64) error {
	if fileName == "" {
		return ErrNoFile
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := supportedExtensions[ext]; !ok {
		return ErrUnsupportedType
	}
	return nil
}
