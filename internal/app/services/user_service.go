package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// UserService defines account administration operations. Accounts are
// created through registration, so there is no create here.
type UserService interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.User, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, params repositories.ListParams) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, params)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update patches an account. Email changes run through a uniqueness
// pre-check.
func (s *userService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Email != nil {
		taken, err := s.userRepo.EmailExists(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		fields["email"] = *req.Email
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, apperrors.NewValidationError("Invalid role")
		}
		fields["role"] = role
	}

	if err := s.userRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}

// Delete removes an account and returns the deleted row. Accounts with
// a linked profile cannot be deleted.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasDependents, err := s.userRepo.HasDependents(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasDependents {
		return nil, apperrors.NewPreconditionFailedError(
			"Cannot delete this user because a profile still references it. Please remove the linked profile first.")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return user, nil
}
