package ordering

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// ValidatePhotoExtension rejects uploads the recognition backend cannot
// read anyway, before spending a round-trip on them.
func ValidatePhotoExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed, upload a photo")
	}

	return nil
}
