package models

import (
	"time"

	"github.com/google/uuid"
)

// Grade references a student and a course, and optionally one of
// assignment or exam. LetterGrade is derived from the numeric marks.
type Grade struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	CourseID     uuid.UUID  `json:"courseId" db:"course_id"`
	StudentID    uuid.UUID  `json:"studentId" db:"student_id"`
	AssignmentID *uuid.UUID `json:"assignmentId,omitempty" db:"assignment_id"`
	ExamID       *uuid.UUID `json:"examId,omitempty" db:"exam_id"`
	Marks        float64    `json:"marks" db:"marks"`
	LetterGrade  string     `json:"letterGrade" db:"letter_grade" example:"A"`
	GradedAt     *time.Time `json:"gradedAt,omitempty" db:"graded_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`

	StudentName *string `json:"studentName,omitempty"`
	CourseName  *string `json:"courseName,omitempty"`
	CourseCode  *string `json:"courseCode,omitempty"`
}
