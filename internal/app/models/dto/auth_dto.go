package dto

import "github.com/campushub/campushub/internal/app/models"

// SignupRequest represents account creation data
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=admin student teacher"`
}

// LoginRequest represents sign-in data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued session token and the account it
// belongs to.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"3600"`
	User      *models.User `json:"user"`
}
