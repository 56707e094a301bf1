package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CourseLevel string

const (
	Beginner     CourseLevel = "Beginner"
	Intermediate CourseLevel = "Intermediate"
	Advanced     CourseLevel = "Advanced"
)

type CourseStatus string

const (
	Draft     CourseStatus = "Draft"
	Published CourseStatus = "Published"
)

type ChapterType string

const (
	TextChapter  ChapterType = "Text"
	QuizChapter  ChapterType = "Quiz"
	VideoChapter ChapterType = "Video"
)

// Chapter is embedded in a Section and persisted as part of the course row.
// ChapterID is assigned once and must survive every later edit; external
// progress trackers reference chapters by id.
type Chapter struct {
	ChapterID string      `json:"chapterId"`
	Type      ChapterType `json:"type"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Video     string      `json:"video,omitempty"`
}

// Section groups chapters. Like ChapterID, SectionID is stable across edits.
type Section struct {
	SectionID          string    `json:"sectionId"`
	SectionTitle       string    `json:"sectionTitle"`
	SectionDescription string    `json:"sectionDescription"`
	Chapters           []Chapter `json:"chapters"`
}

// Enrollment is opaque to the catalog; only the learner id is recorded.
type Enrollment struct {
	UserID string `json:"userId"`
}

// Course is the root aggregate. Sections and enrollments are stored verbatim
// as JSON columns so the whole aggregate lives in one row.
// swagger:model Course
type Course struct {
	CourseID    string                          `gorm:"primaryKey;type:varchar(36)" json:"courseId"`
	TeacherID   string                          `gorm:"size:64;index;not null" json:"teacherId"`
	TeacherName string                          `gorm:"size:255" json:"teacherName"`
	Title       string                          `gorm:"size:255" json:"title"`
	Description string                          `gorm:"type:text" json:"description"`
	Category    string                          `gorm:"size:100;index" json:"category"`
	Image       string                          `gorm:"size:512" json:"image"`
	Price       int                             `gorm:"not null;default:0" json:"price"` // minor currency units
	Level       CourseLevel                     `gorm:"size:32" json:"level"`
	Status      CourseStatus                    `gorm:"size:32" json:"status"`
	Sections    datatypes.JSONSlice[Section]    `json:"sections"`
	Enrollments datatypes.JSONSlice[Enrollment] `json:"enrollments"`
	CreatedAt   time.Time                       `json:"createdAt"`
	UpdatedAt   time.Time                       `json:"updatedAt"`
}

func (Course) TableName() string {
	return "courses"
}

func GenerateID() string {
	return uuid.New().String()
}
