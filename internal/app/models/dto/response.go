package dto

import "time"

// APIResponse is the standard `{success, data | error}` envelope every
// endpoint returns.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-01-15T12:01:05Z"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse wraps an error detail in a failure envelope.
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// ListMeta is the pagination metadata block of every list response.
type ListMeta struct {
	Total      int64 `json:"total" example:"42"`
	TotalPages int   `json:"totalPages" example:"5"`
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
}

// ListResponse pairs a page of rows with its meta block.
type ListResponse struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}
