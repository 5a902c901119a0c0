package image

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n" + "fake png payload")

// makeFileHeader builds a real multipart.FileHeader by writing and
// re-parsing a multipart body, the same way the HTTP layer produces one.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.NotEmpty(t, form.File["file"])
	return form.File["file"][0]
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, img *Image) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *MockImageRepository) GetByID(ctx context.Context, id string) (*Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Image), args.Error(1)
}

func (m *MockImageRepository) ListByOwner(ctx context.Context, owner Owner) ([]Image, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Image), args.Error(1)
}

func (m *MockImageRepository) SetFeatured(ctx context.Context, img *Image) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *MockImageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockImageRepository) DeleteByOwner(ctx context.Context, owner Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

// fakeStore records blob operations and can be told to fail.
type fakeStore struct {
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeStore) Upload(_ context.Context, key, _ string, r io.Reader, _ int64) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	_, _ = io.Copy(io.Discard, r)
	f.uploads = append(f.uploads, key)
	return "/static/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return f.deleteErr
}

func (f *fakeStore) URL(key string) string { return "/static/" + key }

type fakeOwners struct {
	eventExists   bool
	projectExists bool
}

func (f *fakeOwners) EventExists(context.Context, int64) (bool, error) {
	return f.eventExists, nil
}

func (f *fakeOwners) ProjectExists(context.Context, int64) (bool, error) {
	return f.projectExists, nil
}

func TestService_Upload_Success(t *testing.T) {
	repo := new(MockImageRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(img *Image) bool {
		return img.MimeType == "image/png" &&
			img.OwnerType == OwnerTypeEvent &&
			img.OwnerID == 1 &&
			!img.IsFeatured &&
			img.Alt != nil && *img.Alt == "hall"
	})).Return(nil)

	store := &fakeStore{}
	svc := NewService(repo, store, &fakeOwners{eventExists: true})

	fh := makeFileHeader(t, "hall.png", pngBytes)
	img, err := svc.Upload(context.Background(), 1, EventOwner(1), fh, "hall")

	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)
	assert.Equal(t, "hall.png", img.OriginalName)
	assert.Len(t, store.uploads, 1)
	repo.AssertExpectations(t)
}

func TestService_Upload_RejectsNonImage(t *testing.T) {
	svc := NewService(new(MockImageRepository), &fakeStore{}, &fakeOwners{eventExists: true})

	fh := makeFileHeader(t, "notes.txt", []byte("just some plain text, not an image"))
	_, err := svc.Upload(context.Background(), 1, EventOwner(1), fh, "")

	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestService_Upload_RejectsTooLarge(t *testing.T) {
	svc := NewService(new(MockImageRepository), &fakeStore{}, &fakeOwners{eventExists: true})

	big := make([]byte, MaxFileSize+1)
	copy(big, pngBytes)
	fh := makeFileHeader(t, "huge.png", big)

	_, err := svc.Upload(context.Background(), 1, EventOwner(1), fh, "")

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestService_Upload_OwnerMissing(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(new(MockImageRepository), store, &fakeOwners{})

	fh := makeFileHeader(t, "hall.png", pngBytes)
	_, err := svc.Upload(context.Background(), 1, ProjectOwner(99), fh, "")

	assert.ErrorIs(t, err, ErrOwnerNotFound)
	assert.Empty(t, store.uploads, "no blob is written for a missing owner")
}

func TestService_Upload_StoreFailureLeavesNoRow(t *testing.T) {
	repo := new(MockImageRepository)
	store := &fakeStore{uploadErr: errors.New("disk full")}
	svc := NewService(repo, store, &fakeOwners{eventExists: true})

	fh := makeFileHeader(t, "hall.png", pngBytes)
	_, err := svc.Upload(context.Background(), 1, EventOwner(1), fh, "")

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Upload_RowFailureRemovesBlob(t *testing.T) {
	repo := new(MockImageRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	store := &fakeStore{}
	svc := NewService(repo, store, &fakeOwners{eventExists: true})

	fh := makeFileHeader(t, "hall.png", pngBytes)
	_, err := svc.Upload(context.Background(), 1, EventOwner(1), fh, "")

	require.Error(t, err)
	require.Len(t, store.uploads, 1)
	assert.Equal(t, store.uploads, store.deletes, "the orphaned blob is removed")
}

func TestService_Delete_BlobFailureStillRemovesRow(t *testing.T) {
	repo := new(MockImageRepository)
	repo.On("GetByID", mock.Anything, "img-1").Return(&Image{
		ID:        "img-1",
		Path:      "images/event/1/x.png",
		OwnerType: OwnerTypeEvent,
		OwnerID:   1,
	}, nil)
	repo.On("Delete", mock.Anything, "img-1").Return(nil)

	store := &fakeStore{deleteErr: errors.New("backend unavailable")}
	svc := NewService(repo, store, &fakeOwners{eventExists: true})

	err := svc.Delete(context.Background(), "img-1")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_SetFeatured(t *testing.T) {
	repo := new(MockImageRepository)
	repo.On("GetByID", mock.Anything, "img-1").Return(&Image{
		ID:        "img-1",
		OwnerType: OwnerTypeEvent,
		OwnerID:   1,
	}, nil)
	repo.On("SetFeatured", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, &fakeStore{}, &fakeOwners{eventExists: true})

	img, err := svc.SetFeatured(context.Background(), "img-1")

	require.NoError(t, err)
	assert.True(t, img.IsFeatured)
	repo.AssertExpectations(t)
}

func TestService_DeleteEventImages_RemovesAllBlobsAndRows(t *testing.T) {
	repo := new(MockImageRepository)
	repo.On("ListByOwner", mock.Anything, EventOwner(1)).Return([]Image{
		{ID: "a", Path: "images/event/1/a.png"},
		{ID: "b", Path: "images/event/1/b.png"},
	}, nil)
	repo.On("DeleteByOwner", mock.Anything, EventOwner(1)).Return(nil)

	store := &fakeStore{}
	svc := NewService(repo, store, &fakeOwners{eventExists: true})

	err := svc.DeleteEventImages(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"images/event/1/a.png", "images/event/1/b.png"}, store.deletes)
	repo.AssertExpectations(t)
}
