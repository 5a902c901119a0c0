package storage

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Store is the blob storage port. Implementations must not touch the
// database; callers sequence the blob write before the metadata row and
// compensate on failure.
type Store interface {
	// Upload writes the blob under key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, r io.Reader, size int64) (string, error)
	// Delete removes the blob. Missing blobs are not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL a stored key is served from.
	URL(key string) string
}

// BuildKey produces a storage key for an owned image:
// images/<owner_type>/<owner_id>/<uuid>_<sanitized-name><ext>
func BuildKey(ownerType string, ownerID int64, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := sanitizeName(originalName)
	return "images/" + ownerType + "/" + strconv.FormatInt(ownerID, 10) + "/" +
		uuid.New().String() + "_" + name + ext
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
