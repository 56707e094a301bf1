package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"course_catalog_backend/internal/util"
)

// fakeIssuer records the keys it was asked to sign.
type fakeIssuer struct {
	keys    []string
	types   []string
	expires []time.Duration
	err     error
}

func (f *fakeIssuer) IssueUploadURL(ctx context.Context, objectKey, contentType string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, objectKey)
	f.types = append(f.types, contentType)
	f.expires = append(f.expires, expiry)
	return "https://storage.example.com/upload/" + objectKey, nil
}

func (f *fakeIssuer) RetrievalURL(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func TestIssueUploadTarget_RequiresFileNameAndType(t *testing.T) {
	svc := NewMediaUploadService(&fakeIssuer{}, time.Minute)
	ctx := context.Background()

	for _, args := range [][2]string{{"", "video/mp4"}, {"lecture.mp4", ""}} {
		if _, err := svc.IssueUploadTarget(ctx, args[0], args[1]); !errors.Is(err, util.ErrInvalidInput) {
			t.Fatalf("args %v: expected ErrInvalidInput, got %v", args, err)
		}
	}
}

func TestIssueUploadTarget_KeyShapeAndTTL(t *testing.T) {
	issuer := &fakeIssuer{}
	svc := NewMediaUploadService(issuer, time.Minute)

	target, err := svc.IssueUploadTarget(context.Background(), "lecture.mp4", "video/mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key := issuer.keys[0]
	if !strings.HasPrefix(key, "videos/") || !strings.HasSuffix(key, "/lecture.mp4") {
		t.Fatalf("key shape wrong: %q", key)
	}
	if issuer.types[0] != "video/mp4" {
		t.Fatalf("content type not forwarded: %q", issuer.types[0])
	}
	if issuer.expires[0] != time.Minute {
		t.Fatalf("ttl not forwarded: %v", issuer.expires[0])
	}
	if target.VideoURL != "https://cdn.example.com/"+key {
		t.Fatalf("retrieval url not derived from the same key: %q", target.VideoURL)
	}
}

func TestIssueUploadTarget_SameInputsYieldDistinctTargets(t *testing.T) {
	issuer := &fakeIssuer{}
	svc := NewMediaUploadService(issuer, time.Minute)
	ctx := context.Background()

	first, err := svc.IssueUploadTarget(ctx, "lecture.mp4", "video/mp4")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := svc.IssueUploadTarget(ctx, "lecture.mp4", "video/mp4")
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if issuer.keys[0] == issuer.keys[1] {
		t.Fatalf("storage keys collide: %q", issuer.keys[0])
	}
	if first.VideoURL == second.VideoURL || first.UploadURL == second.UploadURL {
		t.Fatalf("targets collide across calls")
	}
}

func TestIssueUploadTarget_IssuerFailureSurfaces(t *testing.T) {
	issuer := &fakeIssuer{err: errors.New("throttled")}
	svc := NewMediaUploadService(issuer, time.Minute)

	if _, err := svc.IssueUploadTarget(context.Background(), "lecture.mp4", "video/mp4"); err == nil {
		t.Fatalf("expected issuer failure to surface")
	}
}
