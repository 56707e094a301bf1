package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"course_catalog_backend/internal/config"
	"course_catalog_backend/internal/middleware"
	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/service"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const testSecret = "controller-test-secret"

type memoryStore struct {
	courses map[string]model.Course
}

func (m *memoryStore) Get(ctx context.Context, courseID string) (*model.Course, error) {
	course, ok := m.courses[courseID]
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	return &course, nil
}

func (m *memoryStore) Put(ctx context.Context, course *model.Course) error {
	m.courses[course.CourseID] = *course
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, courseID string) error {
	delete(m.courses, courseID)
	return nil
}

func (m *memoryStore) Scan(ctx context.Context, category string) ([]model.Course, error) {
	var out []model.Course
	for _, course := range m.courses {
		if category == "" || course.Category == category {
			out = append(out, course)
		}
	}
	return out, nil
}

type memoryIssuer struct{}

func (memoryIssuer) IssueUploadURL(ctx context.Context, objectKey, contentType string, expiry time.Duration) (string, error) {
	return "https://storage.example.com/upload/" + objectKey, nil
}

func (memoryIssuer) RetrievalURL(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func newTestRouter(store *memoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret

	courses := service.NewCourseService(store)
	queries := service.NewCourseQueryService(store)
	uploads := service.NewMediaUploadService(memoryIssuer{}, time.Minute)
	c := NewCourseController(courses, queries, uploads)

	router := gin.New()
	group := router.Group("/courses")
	group.GET("", c.ListCourses)
	group.GET("/:courseId", c.GetCourse)

	authorized := group.Group("")
	authorized.Use(middleware.AuthMiddleware(cfg))
	authorized.POST("", c.CreateCourse)
	authorized.PUT("/:courseId", c.UpdateCourse)
	authorized.DELETE("/:courseId", c.DeleteCourse)
	authorized.POST("/upload-url", c.GetUploadURL)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope util.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not the {message, data|error} envelope: %s", rec.Body.String())
	}
	return rec, envelope
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := util.GenerateJWT(userID, "Test Teacher", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestListCourses_PublicAndEnveloped(t *testing.T) {
	store := &memoryStore{courses: map[string]model.Course{
		"c1": {CourseID: "c1", TeacherID: "t1", Category: "A"},
		"c2": {CourseID: "c2", TeacherID: "t1", Category: "B"},
	}}
	router := newTestRouter(store)

	rec, envelope := doRequest(t, router, http.MethodGet, "/courses?category=A", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Message != "Courses retrieved successfully" || envelope.Error != "" {
		t.Fatalf("envelope wrong: %+v", envelope)
	}

	items, ok := envelope.Data.([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("data wrong: %+v", envelope.Data)
	}
}

func TestGetCourse_NotFound(t *testing.T) {
	router := newTestRouter(&memoryStore{courses: map[string]model.Course{}})

	rec, envelope := doRequest(t, router, http.MethodGet, "/courses/missing", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Error != util.CodeNotFound {
		t.Fatalf("error code = %q", envelope.Error)
	}
}

func TestCreateCourse_RequiresAuth(t *testing.T) {
	router := newTestRouter(&memoryStore{courses: map[string]model.Course{}})

	rec, _ := doRequest(t, router, http.MethodPost, "/courses", "", `{"teacherId":"t1","teacherName":"Ada"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateCourse_ReturnsDraft(t *testing.T) {
	store := &memoryStore{courses: map[string]model.Course{}}
	router := newTestRouter(store)

	rec, envelope := doRequest(t, router, http.MethodPost, "/courses",
		tokenFor(t, "t1"), `{"teacherId":"t1","teacherName":"Ada"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data wrong: %+v", envelope.Data)
	}
	if data["status"] != string(model.Draft) || data["title"] != "Untitled Course" {
		t.Fatalf("defaults wrong: %+v", data)
	}
	if len(store.courses) != 1 {
		t.Fatalf("course not persisted")
	}
}

func TestUpdateCourse_ForbiddenForNonOwner(t *testing.T) {
	store := &memoryStore{courses: map[string]model.Course{
		"c1": {CourseID: "c1", TeacherID: "owner", Title: "Original"},
	}}
	router := newTestRouter(store)

	rec, envelope := doRequest(t, router, http.MethodPut, "/courses/c1",
		tokenFor(t, "intruder"), `{"title":"Taken"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Error != util.CodeForbidden {
		t.Fatalf("error code = %q", envelope.Error)
	}
	if store.courses["c1"].Title != "Original" {
		t.Fatalf("course mutated by non-owner")
	}
}

func TestUpdateCourse_InvalidPriceIs400(t *testing.T) {
	store := &memoryStore{courses: map[string]model.Course{
		"c1": {CourseID: "c1", TeacherID: "owner"},
	}}
	router := newTestRouter(store)

	rec, envelope := doRequest(t, router, http.MethodPut, "/courses/c1",
		tokenFor(t, "owner"), `{"price":"free"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Error != util.CodeInvalidRequest {
		t.Fatalf("error code = %q", envelope.Error)
	}
}

func TestUpdateCourse_PriceAndSectionsApplied(t *testing.T) {
	store := &memoryStore{courses: map[string]model.Course{
		"c1": {CourseID: "c1", TeacherID: "owner"},
	}}
	router := newTestRouter(store)

	body := `{"price":"15.00","sections":[{"sectionTitle":"Week 1","chapters":[{"type":"Video","title":"Intro"}]}]}`
	rec, _ := doRequest(t, router, http.MethodPut, "/courses/c1", tokenFor(t, "owner"), body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	stored := store.courses["c1"]
	if stored.Price != 1500 {
		t.Fatalf("price = %d", stored.Price)
	}
	if len(stored.Sections) != 1 || stored.Sections[0].SectionID == "" {
		t.Fatalf("sections not reconciled: %+v", stored.Sections)
	}
}

func TestDeleteCourse_ReturnsDeletedRecord(t *testing.T) {
	store := &memoryStore{courses: map[string]model.Course{
		"c1": {CourseID: "c1", TeacherID: "owner", Title: "Doomed"},
	}}
	router := newTestRouter(store)

	rec, envelope := doRequest(t, router, http.MethodDelete, "/courses/c1", tokenFor(t, "owner"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, ok := envelope.Data.(map[string]interface{})
	if !ok || data["title"] != "Doomed" {
		t.Fatalf("confirmation payload wrong: %+v", envelope.Data)
	}
	if len(store.courses) != 0 {
		t.Fatalf("course still stored")
	}
}

func TestGetUploadURL_ValidatesAndReturnsBothURLs(t *testing.T) {
	router := newTestRouter(&memoryStore{courses: map[string]model.Course{}})
	token := tokenFor(t, "owner")

	rec, _ := doRequest(t, router, http.MethodPost, "/courses/upload-url", token, `{"fileName":"lecture.mp4"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing fileType: status = %d", rec.Code)
	}

	rec, envelope := doRequest(t, router, http.MethodPost, "/courses/upload-url", token,
		`{"fileName":"lecture.mp4","fileType":"video/mp4"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data wrong: %+v", envelope.Data)
	}
	uploadURL, _ := data["uploadUrl"].(string)
	videoURL, _ := data["videoUrl"].(string)
	if uploadURL == "" || videoURL == "" {
		t.Fatalf("urls missing: %+v", data)
	}
	if !strings.Contains(videoURL, "/videos/") || !strings.HasSuffix(videoURL, "/lecture.mp4") {
		t.Fatalf("video url shape wrong: %q", videoURL)
	}
}
