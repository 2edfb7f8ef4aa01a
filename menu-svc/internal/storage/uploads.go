package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalImageStore keeps images in a directory served under PublicPrefix.
// The directory plays the role of the storage bucket and must already exist.
type LocalImageStore struct {
	Dir          string
	PublicPrefix string
}

func NewLocalImageStore(dir, publicPrefix string) *LocalImageStore {
	return &LocalImageStore{Dir: dir, PublicPrefix: publicPrefix}
}

func (s *LocalImageStore) Upload(ctx context.Context, name string, r io.Reader, contentType string) (string, error) {
	if strings.ContainsAny(name, `/\`) || name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	info, err := os.Stat(s.Dir)
	if err != nil {
		return "", fmt.Errorf("bucket not found: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("bucket not found: %s is not a directory", s.Dir)
	}

	dst, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return path.Join(s.PublicPrefix, name), nil
}
