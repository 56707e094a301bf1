package service

import (
	"context"
	"course_catalog_backend/internal/config"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// UploadCredentialIssuer hands out short-lived, write-scoped upload URLs
// for a single object key and derives the permanent retrieval URL for the
// same key.
type UploadCredentialIssuer interface {
	IssueUploadURL(ctx context.Context, objectKey, contentType string, expiry time.Duration) (string, error)
	RetrievalURL(objectKey string) string
}

// MinioCredentialIssuer issues presigned PUT URLs against a MinIO (or any
// S3-compatible) bucket. Retrieval goes through the configured CDN base
// address, not the bucket endpoint.
type MinioCredentialIssuer struct {
	client     *minio.Client
	bucket     string
	cdnBaseURL string
}

func NewMinioCredentialIssuer(cfg *config.StorageConfig) (*MinioCredentialIssuer, error) {
	endpoint := cfg.MinioEndpoint
	secure := true
	if cfg.Local {
		endpoint = cfg.LocalEndpoint
		if endpoint == "" {
			endpoint = "localhost:9000"
		}
		secure = false
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	return &MinioCredentialIssuer{
		client:     client,
		bucket:     cfg.MinioBucket,
		cdnBaseURL: cfg.CDNBaseURL,
	}, nil
}

// IssueUploadURL presigns a PUT scoped to one key, pinning the Content-Type
// header so the credential cannot be reused for a different payload type.
func (p *MinioCredentialIssuer) IssueUploadURL(ctx context.Context, objectKey, contentType string, expiry time.Duration) (string, error) {
	presigned, err := p.client.PresignHeader(ctx, http.MethodPut, p.bucket, objectKey, expiry,
		url.Values{}, http.Header{"Content-Type": []string{contentType}})
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}

func (p *MinioCredentialIssuer) RetrievalURL(objectKey string) string {
	return strings.TrimRight(p.cdnBaseURL, "/") + "/" + objectKey
}
