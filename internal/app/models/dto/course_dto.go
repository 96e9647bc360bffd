package dto

// CreateCourseRequest represents course creation data. The code must be
// uppercase alphanumeric, mirroring the original form constraints.
type CreateCourseRequest struct {
	TeacherID   *string `json:"teacherId" binding:"omitempty,uuid"`
	Code        string  `json:"code" binding:"required,min=2,max=20"`
	Name        string  `json:"name" binding:"required,min=3,max=100"`
	Description string  `json:"description" binding:"required,min=10,max=1000"`
	Credits     int     `json:"credits" binding:"required,min=1,max=12"`
}

// UpdateCourseRequest represents a partial course patch
type UpdateCourseRequest struct {
	TeacherID   *string `json:"teacherId" binding:"omitempty,uuid"`
	Code        *string `json:"code" binding:"omitempty,min=2,max=20"`
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,min=10,max=1000"`
	Credits     *int    `json:"credits" binding:"omitempty,min=1,max=12"`
}
