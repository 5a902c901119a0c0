package image

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"templecms/internal/storage"
)

// MaxFileSize caps uploads at 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

// AllowedMimeTypes is the photo allow-list. The type is sniffed from file
// content, not trusted from the request.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// OwnerDirectory answers whether the entity an upload targets exists.
// cmd/api wires it to the event and project repositories.
type OwnerDirectory interface {
	EventExists(ctx context.Context, id int64) (bool, error)
	ProjectExists(ctx context.Context, id int64) (bool, error)
}

// Service manages image uploads and featured-image bookkeeping. Blob and
// row operations are sequential, not transactional: uploads write the blob
// first and only then the row; deletes remove the row even when the blob
// removal fails.
type Service struct {
	repo   Repository
	store  storage.Store
	owners OwnerDirectory
}

func NewService(repo Repository, store storage.Store, owners OwnerDirectory) *Service {
	return &Service{repo: repo, store: store, owners: owners}
}

// Upload validates the file, writes the blob, then inserts the metadata
// row. A blob-store failure aborts before any row exists; a row-insert
// failure removes the fresh blob best-effort.
func (s *Service) Upload(ctx context.Context, uploadedBy int64, owner Owner, fileHeader *multipart.FileHeader, alt string) (*Image, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ok, err := s.ownerExists(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOwnerNotFound
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the MIME type from the first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	key := storage.BuildKey(string(owner.Type), owner.ID, fileHeader.Filename)

	url, err := s.store.Upload(ctx, key, mimeType, file, fileHeader.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	img := &Image{
		ID:           uuid.New().String(),
		Filename:     filepath.Base(key),
		OriginalName: fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		Path:         key,
		URL:          url,
		IsFeatured:   false,
		UploadedBy:   uploadedBy,
		OwnerType:    owner.Type,
		OwnerID:      owner.ID,
		CreatedAt:    time.Now(),
	}
	if alt != "" {
		img.Alt = &alt
	}

	if err := s.repo.Create(ctx, img); err != nil {
		// compensate: the blob exists but will have no reference
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Printf("image_blob_rollback_failed path=%s error=%q", key, delErr)
		}
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}

	return img, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Image, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, owner Owner) ([]Image, error) {
	return s.repo.ListByOwner(ctx, owner)
}

// SetFeatured makes the given image the single featured one for its owner.
func (s *Service) SetFeatured(ctx context.Context, id string) (*Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetFeatured(ctx, img); err != nil {
		return nil, err
	}

	img.IsFeatured = true
	return img, nil
}

// Delete removes the blob best-effort and the row unconditionally; a dead
// blob is preferable to a dead URL in the database.
func (s *Service) Delete(ctx context.Context, id string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, img.Path); err != nil {
		log.Printf("image_blob_delete_failed path=%s error=%q", img.Path, err)
	}

	return s.repo.Delete(ctx, id)
}

// DeleteEventImages removes all images owned by the event. Satisfies
// event.ImageCleaner.
func (s *Service) DeleteEventImages(ctx context.Context, eventID int64) error {
	return s.deleteByOwner(ctx, EventOwner(eventID))
}

// DeleteProjectImages removes all images owned by the project. Satisfies
// project.ImageCleaner.
func (s *Service) DeleteProjectImages(ctx context.Context, projectID int64) error {
	return s.deleteByOwner(ctx, ProjectOwner(projectID))
}

func (s *Service) deleteByOwner(ctx context.Context, owner Owner) error {
	images, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return err
	}

	for i := range images {
		if err := s.store.Delete(ctx, images[i].Path); err != nil {
			log.Printf("image_blob_delete_failed path=%s error=%q", images[i].Path, err)
		}
	}

	return s.repo.DeleteByOwner(ctx, owner)
}

func (s *Service) ownerExists(ctx context.Context, owner Owner) (bool, error) {
	switch owner.Type {
	case OwnerTypeEvent:
		return s.owners.EventExists(ctx, owner.ID)
	case OwnerTypeProject:
		return s.owners.ProjectExists(ctx, owner.ID)
	default:
		return false, ErrInvalidOwnerType
	}
}
