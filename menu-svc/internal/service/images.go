package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxImageSize = 10 << 20

var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// StoragePath returns a collision-free object name for an uploaded image,
// keeping the original extension.
func StoragePath(filename string, now time.Time) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("menu-%d-%s.%s", now.UnixMilli(), uuid.NewString()[:8], ext)
}

// ClassifyUploadError turns a storage failure into an actionable message.
// Remote object stores only report these conditions as text, so the message
// is matched as well as the error chain.
func ClassifyUploadError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, os.ErrNotExist) || strings.Contains(msg, "bucket not found") || strings.Contains(msg, "bucket"):
		return fmt.Errorf("%w: %v", ErrStorageBucketMissing, err)
	case errors.Is(err, os.ErrPermission) || strings.Contains(msg, "row-level security") || strings.Contains(msg, "access denied"):
		return fmt.Errorf("%w: %v", ErrStoragePolicy, err)
	default:
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
}
