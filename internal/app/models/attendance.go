package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance records a student's status in a course for a given date.
type Attendance struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	CourseID  uuid.UUID        `json:"courseId" db:"course_id"`
	StudentID uuid.UUID        `json:"studentId" db:"student_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status" example:"present"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`

	StudentName *string `json:"studentName,omitempty"`
	CourseName  *string `json:"courseName,omitempty"`
	CourseCode  *string `json:"courseCode,omitempty"`
}
