package util

import "errors"

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNotCourseOwner = errors.New("caller does not own this course")
	ErrInvalidInput   = errors.New("invalid input")
)
