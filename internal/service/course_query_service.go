package service

import (
	"context"

	"course_catalog_backend/internal/model"
)

// AllCategories is the sentinel a client may pass to disable filtering.
const AllCategories = "all"

// CourseQueryService serves read-only course listings and lookups.
type CourseQueryService struct {
	store CourseStore
}

func NewCourseQueryService(store CourseStore) *CourseQueryService {
	return &CourseQueryService{store: store}
}

// List returns every course, or exactly those whose category matches the
// filter (case-sensitive). The result order is unspecified.
func (s *CourseQueryService) List(ctx context.Context, category string) ([]model.Course, error) {
	if category == "" || category == AllCategories {
		return s.store.Scan(ctx, "")
	}
	return s.store.Scan(ctx, category)
}

func (s *CourseQueryService) GetByID(ctx context.Context, courseID string) (*model.Course, error) {
	return s.store.Get(ctx, courseID)
}
