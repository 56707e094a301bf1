package service

import (
	"context"
	"errors"
	"testing"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"
)

func seedCategories(t *testing.T, store *fakeStore) {
	t.Helper()
	for i, category := range []string{"A", "B", "A"} {
		course := model.Course{
			CourseID:  model.GenerateID(),
			TeacherID: "teacher-1",
			Category:  category,
		}
		if err := store.Put(context.Background(), &course); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func TestList_CategoryFilterExactMatch(t *testing.T) {
	store := newFakeStore()
	seedCategories(t, store)
	svc := NewCourseQueryService(store)
	ctx := context.Background()

	matched, err := svc.List(ctx, "A")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("category A: got %d courses, want 2", len(matched))
	}
	for _, course := range matched {
		if course.Category != "A" {
			t.Fatalf("stray category %q in filtered result", course.Category)
		}
	}

	// Case-sensitive exact match: "a" is a different category.
	lower, err := svc.List(ctx, "a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lower) != 0 {
		t.Fatalf("category a: got %d courses, want 0", len(lower))
	}
}

func TestList_AllSentinelAndEmptyReturnEverything(t *testing.T) {
	store := newFakeStore()
	seedCategories(t, store)
	svc := NewCourseQueryService(store)
	ctx := context.Background()

	for _, filter := range []string{"", AllCategories} {
		courses, err := svc.List(ctx, filter)
		if err != nil {
			t.Fatalf("list(%q): %v", filter, err)
		}
		if len(courses) != 3 {
			t.Fatalf("list(%q): got %d courses, want 3", filter, len(courses))
		}
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewCourseQueryService(newFakeStore())
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
