package dto

// UpdateUserRequest represents a partial user patch. Email changes run
// through the uniqueness pre-check; the role tag is constrained to the
// known roles.
type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=admin student teacher"`
}
