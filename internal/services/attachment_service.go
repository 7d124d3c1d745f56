package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/timeutil"
)

// ObjectStore is the storage slice attachments need.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// AttachmentService stores activity attachments (photos of crates, delivery
// slips) in the object store and records the keys on the activity.
type AttachmentService struct {
	Activities ActivityStore
	Store      ObjectStore // nil when storage is not configured
}

func NewAttachmentService(activities ActivityStore, store ObjectStore) *AttachmentService {
	return &AttachmentService{Activities: activities, Store: store}
}

// Upload stores a file against an activity and returns the object key.
func (s *AttachmentService) Upload(ctx context.Context, activityID int, filename, contentType string, body io.Reader) (string, error) {
	if s.Store == nil {
		return "", apperrors.Invalid("attachment", "attachment storage is not configured")
	}
	if _, err := s.Activities.Get(ctx, activityID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("activities/%d/%d-%s", activityID, timeutil.Now().UnixNano(), sanitizeFilename(filename))
	if err := s.Store.Upload(ctx, key, contentType, body); err != nil {
		return "", fmt.Errorf("failed to upload attachment: %w", err)
	}
	if err := s.Activities.AppendAttachment(ctx, activityID, key); err != nil {
		return "", err
	}
	return key, nil
}

// Download streams the n-th attachment of an activity.
func (s *AttachmentService) Download(ctx context.Context, activityID, index int) (io.ReadCloser, string, error) {
	if s.Store == nil {
		return nil, "", apperrors.Invalid("attachment", "attachment storage is not configured")
	}
	activity, err := s.Activities.Get(ctx, activityID)
	if err != nil {
		return nil, "", err
	}
	if index < 0 || index >= len(activity.Attachments) {
		return nil, "", apperrors.NotFound("attachment", index)
	}
	return s.Store.Download(ctx, activity.Attachments[index])
}

func sanitizeFilename(name string) string {
	base := path.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." || base == "/" {
		base = "attachment"
	}
	return base
}
