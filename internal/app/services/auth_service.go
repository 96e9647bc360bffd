package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// AuthService defines account registration and session operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// userAccountStore is the slice of the user repository the auth flows
// need. Kept narrow so tests can substitute an in-memory store.
type userAccountStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

type authService struct {
	userRepo   userAccountStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account and issues a session token for it.
func (s *authService) Register(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("Invalid role")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		return nil, err
	}

	logger.Info().Str("userID", user.ID.String()).Msg("User registered")
	return &dto.AuthResponse{Token: token, ExpiresIn: expiresIn, User: user}, nil
}

// Login verifies credentials and issues a session token. A missing
// account and a bad password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		return nil, err
	}

	logger.Info().Str("userID", user.ID.String()).Msg("User logged in")
	return &dto.AuthResponse{Token: token, ExpiresIn: expiresIn, User: user}, nil
}

// GetCurrentUser loads the account behind an authenticated session.
func (s *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
