package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores blobs on the filesystem under baseDir and serves them from
// staticBase via the API's static file route. Default store for local
// development and tests.
type Local struct {
	baseDir    string
	staticBase string
}

func NewLocal(baseDir, staticBase string) *Local {
	return &Local{baseDir: baseDir, staticBase: staticBase}
}

func (l *Local) Upload(ctx context.Context, key string, contentType string, r io.Reader, size int64) (string, error) {
	absPath := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.URL(key), nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	absPath := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Local) URL(key string) string {
	return strings.TrimSuffix(l.staticBase, "/") + "/" + key
}
