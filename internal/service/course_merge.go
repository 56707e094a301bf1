package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"

	"gorm.io/datatypes"
)

// CoursePatch is a partial course edit. Pointer fields distinguish "absent"
// from "set to zero value". Price and Sections are kept raw because clients
// send them in more than one shape: price as a JSON number or a numeric
// string in major units, sections either structured or as a serialized JSON
// string.
type CoursePatch struct {
	TeacherName *string             `json:"teacherName"`
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Category    *string             `json:"category"`
	Image       *string             `json:"image"`
	Price       json.RawMessage     `json:"price,omitempty"`
	Level       *model.CourseLevel  `json:"level"`
	Status      *model.CourseStatus `json:"status"`
	Sections    json.RawMessage     `json:"sections,omitempty"`
}

// MergeCourse applies a patch onto a loaded course and returns the merged
// copy. Fields absent from the patch are left untouched; Sections, when
// present, replaces the whole sequence with the reconciled version. The
// input course is not modified, and no error path returns a partially
// merged result.
func MergeCourse(existing model.Course, patch *CoursePatch) (model.Course, error) {
	merged := existing

	if patch.Price != nil {
		cents, err := parsePrice(patch.Price)
		if err != nil {
			return model.Course{}, err
		}
		merged.Price = cents
	}

	if patch.Sections != nil {
		sections, err := normalizeSections(patch.Sections)
		if err != nil {
			return model.Course{}, err
		}
		reconcileSectionIDs(sections)
		merged.Sections = datatypes.JSONSlice[model.Section](sections)
	}

	if patch.TeacherName != nil {
		merged.TeacherName = *patch.TeacherName
	}
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Image != nil {
		merged.Image = *patch.Image
	}
	if patch.Level != nil {
		merged.Level = *patch.Level
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}

	return merged, nil
}

// maxPriceMajor bounds accepted amounts far below the point where the
// minor-unit conversion overflows int64.
const maxPriceMajor = 1e15

// parsePrice converts a major-unit amount (JSON number or numeric string)
// to non-negative minor units, e.g. "15.00" -> 1500.
func parsePrice(raw json.RawMessage) (int, error) {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, fmt.Errorf("%w: invalid price format", util.ErrInvalidInput)
	}

	var major float64
	switch v := value.(type) {
	case float64:
		major = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid price format", util.ErrInvalidInput)
		}
		major = parsed
	default:
		return 0, fmt.Errorf("%w: invalid price format", util.ErrInvalidInput)
	}

	if math.IsNaN(major) || math.IsInf(major, 0) || major < 0 || major > maxPriceMajor {
		return 0, fmt.Errorf("%w: invalid price format", util.ErrInvalidInput)
	}

	return int(math.Round(major * 100)), nil
}

// normalizeSections accepts both input shapes: a structured JSON array, or
// that same array serialized into a JSON string. Field names are matched
// case-insensitively either way (encoding/json semantics).
func normalizeSections(raw json.RawMessage) ([]model.Section, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return nil, fmt.Errorf("%w: malformed sections payload", util.ErrInvalidInput)
		}
		trimmed = []byte(encoded)
	}

	var sections []model.Section
	if err := json.Unmarshal(trimmed, &sections); err != nil {
		return nil, fmt.Errorf("%w: malformed sections payload", util.ErrInvalidInput)
	}
	return sections, nil
}

// reconcileSectionIDs preserves every id the client re-submitted and mints
// fresh ones only for sub-entities added in this edit. Progress trackers
// outside this service reference sections and chapters by id, so an id,
// once assigned, must never be regenerated. Submission order is kept.
func reconcileSectionIDs(sections []model.Section) {
	for i := range sections {
		if sections[i].SectionID == "" {
			sections[i].SectionID = model.GenerateID()
		}
		for j := range sections[i].Chapters {
			if sections[i].Chapters[j].ChapterID == "" {
				sections[i].Chapters[j].ChapterID = model.GenerateID()
			}
		}
	}
}
