package dto

// CreateAdminRequest represents admin profile creation data
type CreateAdminRequest struct {
	UserID      string  `json:"userId" binding:"required,uuid"`
	FirstName   string  `json:"firstName" binding:"required,min=2,max=50"`
	LastName    string  `json:"lastName" binding:"required,min=2,max=50"`
	DisplayName *string `json:"displayName" binding:"omitempty,min=2,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	Department  *string `json:"department"`
	AccessLevel *string `json:"accessLevel"`
	Notes       *string `json:"notes"`
}

// UpdateAdminRequest represents a partial admin patch
type UpdateAdminRequest struct {
	FirstName   *string `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName    *string `json:"lastName" binding:"omitempty,min=2,max=50"`
	DisplayName *string `json:"displayName" binding:"omitempty,min=2,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Department  *string `json:"department"`
	AccessLevel *string `json:"accessLevel"`
	Notes       *string `json:"notes"`
}
