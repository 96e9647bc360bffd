package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a course, optionally owned by a teacher. The course
// code is globally unique.
type Course struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	TeacherID   *uuid.UUID `json:"teacherId,omitempty" db:"teacher_id"`
	Code        string     `json:"code" db:"code"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Credits     int        `json:"credits" db:"credits"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	// TeacherName is resolved from the owning teacher's display/first/last
	// name fallback chain when the row is read with its join.
	TeacherName *string `json:"teacherName,omitempty"`
}
