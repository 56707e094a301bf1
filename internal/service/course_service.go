package service

import (
	"context"
	"fmt"
	"strings"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"
	"course_catalog_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// CourseStore is the keyed document-store contract the services run
// against. Put replaces the whole aggregate; Scan takes an optional
// category equality filter (empty string means all).
type CourseStore interface {
	Get(ctx context.Context, courseID string) (*model.Course, error)
	Put(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, courseID string) error
	Scan(ctx context.Context, category string) ([]model.Course, error)
}

// CourseService owns course-aggregate mutations: create, authorized update
// with section/chapter reconciliation, authorized delete.
type CourseService struct {
	store CourseStore
}

func NewCourseService(store CourseStore) *CourseService {
	return &CourseService{store: store}
}

// Create persists a new draft course owned by the given teacher. Every
// field other than the teacher pair starts at its documented default.
func (s *CourseService) Create(ctx context.Context, teacherID, teacherName string) (*model.Course, error) {
	if strings.TrimSpace(teacherID) == "" || strings.TrimSpace(teacherName) == "" {
		return nil, fmt.Errorf("%w: teacher id and teacher name are required", util.ErrInvalidInput)
	}

	course := &model.Course{
		CourseID:    model.GenerateID(),
		TeacherID:   teacherID,
		TeacherName: teacherName,
		Title:       "Untitled Course",
		Description: "",
		Category:    "Uncategorized",
		Image:       "",
		Price:       0,
		Level:       model.Beginner,
		Status:      model.Draft,
		Sections:    datatypes.JSONSlice[model.Section]{},
		Enrollments: datatypes.JSONSlice[model.Enrollment]{},
	}

	if err := s.store.Put(ctx, course); err != nil {
		return nil, err
	}

	logger.Log.Info("course created",
		zap.String("courseId", course.CourseID),
		zap.String("teacherId", course.TeacherID))
	return course, nil
}

// Update loads the course, authorizes the caller, merges the patch and
// persists the result. The ownership check runs strictly before any
// mutation; a failed merge or save leaves the stored record untouched.
// Concurrent updates to the same course are last-write-wins (no conflict
// token is maintained).
func (s *CourseService) Update(ctx context.Context, courseID, callerID string, patch *CoursePatch) (*model.Course, error) {
	course, err := s.store.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if course.TeacherID != callerID {
		return nil, util.ErrNotCourseOwner
	}

	merged, err := MergeCourse(*course, patch)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, &merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

// Delete removes an owned course and returns the pre-deletion record as the
// confirmation payload.
func (s *CourseService) Delete(ctx context.Context, courseID, callerID string) (*model.Course, error) {
	course, err := s.store.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if course.TeacherID != callerID {
		return nil, util.ErrNotCourseOwner
	}

	if err := s.store.Delete(ctx, courseID); err != nil {
		return nil, err
	}

	logger.Log.Info("course deleted",
		zap.String("courseId", courseID),
		zap.String("teacherId", callerID))
	return course, nil
}
