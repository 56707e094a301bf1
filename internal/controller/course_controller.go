package controller

import (
	"errors"

	"course_catalog_backend/internal/service"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	courses *service.CourseService
	queries *service.CourseQueryService
	uploads *service.MediaUploadService
}

func NewCourseController(courses *service.CourseService, queries *service.CourseQueryService, uploads *service.MediaUploadService) *CourseController {
	return &CourseController{courses: courses, queries: queries, uploads: uploads}
}

type CreateCourseRequest struct {
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
}

type UploadURLRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// respondServiceError translates the service error taxonomy to the response
// envelope. Upstream failures are logged and surfaced as opaque 500s.
func respondServiceError(ctx *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, util.ErrInvalidInput):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "Course not found")
	case errors.Is(err, util.ErrNotCourseOwner):
		util.Forbidden(ctx, "Not authorized to modify this course")
	default:
		util.LogInternalError(ctx, logMessage, err)
	}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns every course, or only those in the given category. Pass "all" or omit the filter for the full catalog. Result order is unspecified.
// @Tags courses
// @Produce json
// @Param category query string false "Exact category filter"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Failure 500 {object} util.Response
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.queries.List(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		respondServiceError(ctx, err, "Error retrieving courses")
		return
	}

	util.Success(ctx, "Courses retrieved successfully", courses)
}

// GetCourse godoc
// @Summary Get one course
// @Tags courses
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.queries.GetByID(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		respondServiceError(ctx, err, "Error retrieving course")
		return
	}

	util.Success(ctx, "Course retrieved successfully", course)
}

// CreateCourse godoc
// @Summary Create a draft course
// @Description Allocates a new course with documented defaults (Draft status, zero price, empty sections).
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateCourseRequest true "Owning teacher"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.courses.Create(ctx.Request.Context(), req.TeacherID, req.TeacherName)
	if err != nil {
		respondServiceError(ctx, err, "Error creating course")
		return
	}

	util.Success(ctx, "Course created successfully", course)
}

// UpdateCourse godoc
// @Summary Update an owned course
// @Description Shallow-merges the supplied fields onto the course. Price is a major-unit amount (number or numeric string); sections may be structured or a serialized JSON string, and existing section/chapter ids are preserved.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course id"
// @Param body body service.CoursePatch true "Fields to change"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /courses/{courseId} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var patch service.CoursePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.courses.Update(ctx.Request.Context(), ctx.Param("courseId"), user.UserID, &patch)
	if err != nil {
		respondServiceError(ctx, err, "Error updating course")
		return
	}

	util.Success(ctx, "Course updated successfully", course)
}

// DeleteCourse godoc
// @Summary Delete an owned course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /courses/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.courses.Delete(ctx.Request.Context(), ctx.Param("courseId"), user.UserID)
	if err != nil {
		respondServiceError(ctx, err, "Error deleting course")
		return
	}

	util.Success(ctx, "Course deleted successfully", course)
}

// GetUploadURL godoc
// @Summary Issue a video upload target
// @Description Returns a short-lived presigned upload URL plus the permanent retrieval URL. Nothing is persisted; store the videoUrl in a chapter via a course update.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UploadURLRequest true "File to upload"
// @Success 200 {object} util.Response{data=service.UploadTarget}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /courses/upload-url [post]
func (c *CourseController) GetUploadURL(ctx *gin.Context) {
	var req UploadURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	target, err := c.uploads.IssueUploadTarget(ctx.Request.Context(), req.FileName, req.FileType)
	if err != nil {
		respondServiceError(ctx, err, "Error generating upload URL")
		return
	}

	util.Success(ctx, "Upload URL generated successfully", target)
}
