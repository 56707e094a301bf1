package service

import (
	"context"
	"fmt"
	"time"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"
)

// UploadTarget pairs the one-shot upload credential with the permanent URL
// the video will be readable from once the client finishes the upload.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	VideoURL  string `json:"videoUrl"`
}

// MediaUploadService issues upload targets for course videos. It persists
// nothing: the returned VideoURL only becomes durable when the caller
// writes it into a chapter through a course update. Large binaries must
// bypass the course-update path entirely, so credential issuance and
// reference recording stay decoupled.
type MediaUploadService struct {
	issuer UploadCredentialIssuer
	ttl    time.Duration
}

func NewMediaUploadService(issuer UploadCredentialIssuer, ttl time.Duration) *MediaUploadService {
	return &MediaUploadService{issuer: issuer, ttl: ttl}
}

// IssueUploadTarget derives a fresh videos/<id>/<fileName> key and asks the
// issuer for a write credential on it. Two calls with identical arguments
// produce distinct keys.
func (s *MediaUploadService) IssueUploadTarget(ctx context.Context, fileName, fileType string) (*UploadTarget, error) {
	if fileName == "" || fileType == "" {
		return nil, fmt.Errorf("%w: file name and file type are required", util.ErrInvalidInput)
	}

	objectKey := fmt.Sprintf("videos/%s/%s", model.GenerateID(), fileName)

	uploadURL, err := s.issuer.IssueUploadURL(ctx, objectKey, fileType, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("issue upload credential for %s: %w", objectKey, err)
	}

	return &UploadTarget{
		UploadURL: uploadURL,
		VideoURL:  s.issuer.RetrievalURL(objectKey),
	}, nil
}
