package dto

import "time"

// CreateAttendanceRequest represents attendance creation data
type CreateAttendanceRequest struct {
	CourseID  string    `json:"courseId" binding:"required,uuid"`
	StudentID string    `json:"studentId" binding:"required,uuid"`
	Date      time.Time `json:"date" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=present absent late excused"`
}

// UpdateAttendanceRequest represents a partial attendance patch
type UpdateAttendanceRequest struct {
	Date   *time.Time `json:"date"`
	Status *string    `json:"status" binding:"omitempty,oneof=present absent late excused"`
}
