package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links one student to one course for a given semester.
// Uniqueness per (student, course, semester) is enforced by a service
// pre-check, not a database constraint.
type Enrollment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	StudentID  uuid.UUID `json:"studentId" db:"student_id"`
	CourseID   uuid.UUID `json:"courseId" db:"course_id"`
	Semester   string    `json:"semester" db:"semester"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	// Resolved from joins on list/detail reads.
	StudentName *string `json:"studentName,omitempty"`
	CourseName  *string `json:"courseName,omitempty"`
	CourseCode  *string `json:"courseCode,omitempty"`
}
