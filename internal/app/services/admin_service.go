package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// AdminService defines admin profile operations.
type AdminService interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Admin, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	Create(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*models.Admin, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

type adminService struct {
	adminRepo *repositories.AdminRepository
	userRepo  *repositories.UserRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo *repositories.AdminRepository, userRepo *repositories.UserRepository) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

func (s *adminService) List(ctx context.Context, params repositories.ListParams) ([]models.Admin, int64, error) {
	return s.adminRepo.List(ctx, params)
}

func (s *adminService) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// Create adds an admin profile. The linked account must exist and may
// back at most one admin profile.
func (s *adminService) Create(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	userID, err := parseUUID(req.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid user id")
	}

	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	taken, err := s.adminRepo.UserIDExists(ctx, userID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError("An admin profile for this user already exists")
	}

	admin := &models.Admin{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		Department:  req.Department,
		AccessLevel: req.AccessLevel,
		Notes:       req.Notes,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Update patches an admin profile; only provided fields are written.
func (s *adminService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	if _, err := s.adminRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.AccessLevel != nil {
		fields["access_level"] = *req.AccessLevel
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if err := s.adminRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.adminRepo.GetByID(ctx, id)
}

// Delete removes an admin profile and returns the deleted row.
func (s *adminService) Delete(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return admin, nil
}
