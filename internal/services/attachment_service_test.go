package services

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memObjectStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemObjectStore() *memObjectStore {
	return &memObjectStore{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (m *memObjectStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, "", apperrors.NotFound("object", key)
	}
	return io.NopCloser(bytes.NewReader(data)), m.types[key], nil
}

func seedActivity(t *testing.T) (*fakeActivityStore, *models.LotActivity) {
	t.Helper()
	lots := newFakeLotStore()
	require.NoError(t, lots.Create(context.Background(), &models.Lot{LotNumber: "AV-240301-001"}))
	activities := newFakeActivityStore(lots)

	a := &models.LotActivity{
		LotID:         1,
		ActivityType:  models.ActivityPackage,
		DatePerformed: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Quantity:      50,
		OperatorName:  "Hassan",
		Attachments:   []string{},
	}
	require.NoError(t, activities.CreateWithStatus(context.Background(), a, models.StatusPackaged))
	return activities, a
}

func TestAttachmentUploadDownload(t *testing.T) {
	activities, activity := seedActivity(t)
	store := newMemObjectStore()
	svc := NewAttachmentService(activities, store)
	ctx := context.Background()

	key, err := svc.Upload(ctx, activity.ID, "crate photo.jpg", "image/jpeg", bytes.NewReader([]byte("jpeg-bytes")))
	require.NoError(t, err)
	assert.Contains(t, key, "crate_photo.jpg")

	body, contentType, err := svc.Download(ctx, activity.ID, 0)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, "image/jpeg", contentType)
}

func TestAttachmentStorageNotConfigured(t *testing.T) {
	activities, activity := seedActivity(t)
	svc := NewAttachmentService(activities, nil)

	_, err := svc.Upload(context.Background(), activity.ID, "a.jpg", "image/jpeg", bytes.NewReader(nil))
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAttachmentDownloadIndexOutOfRange(t *testing.T) {
	activities, activity := seedActivity(t)
	svc := NewAttachmentService(activities, newMemObjectStore())

	_, _, err := svc.Download(context.Background(), activity.ID, 0)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
