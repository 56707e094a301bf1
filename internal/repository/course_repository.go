package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"
	"course_catalog_backend/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const courseCacheTTL = 5 * time.Minute

// CourseRepository treats the courses table as a keyed document store: one
// row per course, nested sections and enrollments serialized verbatim into
// JSON columns. A non-nil redis client adds a read cache on Get; cache
// failures degrade to plain database reads.
type CourseRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewCourseRepository(db *gorm.DB, rdb *redis.Client) *CourseRepository {
	return &CourseRepository{DB: db, RDB: rdb}
}

func (r *CourseRepository) Get(ctx context.Context, courseID string) (*model.Course, error) {
	if cached := r.fromCache(ctx, courseID); cached != nil {
		return cached, nil
	}

	var course model.Course
	err := r.DB.WithContext(ctx).First(&course, "course_id = ?", courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, fmt.Errorf("load course %s: %w", courseID, err)
	}

	r.toCache(ctx, &course)
	return &course, nil
}

// Put writes the full aggregate. There is no optimistic concurrency token:
// two concurrent writers to the same course race with last-write-wins
// semantics at the database.
func (r *CourseRepository) Put(ctx context.Context, course *model.Course) error {
	if err := r.DB.WithContext(ctx).Save(course).Error; err != nil {
		return fmt.Errorf("save course %s: %w", course.CourseID, err)
	}
	r.invalidate(ctx, course.CourseID)
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, courseID string) error {
	if err := r.DB.WithContext(ctx).Delete(&model.Course{}, "course_id = ?", courseID).Error; err != nil {
		return fmt.Errorf("delete course %s: %w", courseID, err)
	}
	r.invalidate(ctx, courseID)
	return nil
}

// Scan returns every course, or only those whose category equals the filter
// exactly. An empty filter means no filtering. No ordering is guaranteed.
func (r *CourseRepository) Scan(ctx context.Context, category string) ([]model.Course, error) {
	query := r.DB.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []model.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("scan courses: %w", err)
	}
	return courses, nil
}

func cacheKey(courseID string) string {
	return "course:" + courseID
}

func (r *CourseRepository) fromCache(ctx context.Context, courseID string) *model.Course {
	if r.RDB == nil {
		return nil
	}

	raw, err := r.RDB.Get(ctx, cacheKey(courseID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Debug("course cache read failed", zap.Error(err))
		}
		return nil
	}

	var course model.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		logger.Log.Debug("course cache entry corrupt", zap.String("courseId", courseID), zap.Error(err))
		return nil
	}
	return &course
}

func (r *CourseRepository) toCache(ctx context.Context, course *model.Course) {
	if r.RDB == nil {
		return
	}

	raw, err := json.Marshal(course)
	if err != nil {
		return
	}
	if err := r.RDB.Set(ctx, cacheKey(course.CourseID), raw, courseCacheTTL).Err(); err != nil {
		logger.Log.Debug("course cache write failed", zap.Error(err))
	}
}

func (r *CourseRepository) invalidate(ctx context.Context, courseID string) {
	if r.RDB == nil {
		return
	}
	if err := r.RDB.Del(ctx, cacheKey(courseID)).Err(); err != nil {
		logger.Log.Debug("course cache invalidation failed", zap.Error(err))
	}
}
