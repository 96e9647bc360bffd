package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// TeacherService defines teacher profile operations.
type TeacherService interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Teacher, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error)
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Teacher, error)
}

type teacherService struct {
	teacherRepo *repositories.TeacherRepository
	userRepo    *repositories.UserRepository
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo *repositories.TeacherRepository, userRepo *repositories.UserRepository) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
		userRepo:    userRepo,
	}
}

func (s *teacherService) List(ctx context.Context, params repositories.ListParams) ([]models.Teacher, int64, error) {
	return s.teacherRepo.List(ctx, params)
}

func (s *teacherService) GetByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

func (s *teacherService) checkUserRef(ctx context.Context, userID *uuid.UUID) error {
	if userID == nil {
		return nil
	}
	exists, err := s.userRepo.ExistsByID(ctx, *userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Create adds a teacher profile after email uniqueness and account
// reference checks.
func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	userID, err := parseUUIDPtr(req.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid user id")
	}
	if err := s.checkUserRef(ctx, userID); err != nil {
		return nil, err
	}

	taken, err := s.teacherRepo.EmailExists(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError("A teacher with this email already exists")
	}

	teacher := &models.Teacher{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Department:  req.Department,
		Designation: req.Designation,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// Update patches a teacher profile; only provided fields are written.
func (s *teacherService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	if _, err := s.teacherRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.UserID != nil {
		userID, err := parseUUIDPtr(req.UserID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid user id")
		}
		if err := s.checkUserRef(ctx, userID); err != nil {
			return nil, err
		}
		fields["user_id"] = userID
	}
	if req.Email != nil {
		taken, err := s.teacherRepo.EmailExists(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflictError("A teacher with this email already exists")
		}
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		fields["date_of_birth"] = *req.DateOfBirth
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Designation != nil {
		fields["designation"] = *req.Designation
	}

	if err := s.teacherRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.teacherRepo.GetByID(ctx, id)
}

// Delete removes a teacher profile and returns the deleted row.
// Teachers with assigned courses cannot be deleted.
func (s *teacherService) Delete(ctx context.Context, id uuid.UUID) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasDependents, err := s.teacherRepo.HasDependents(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasDependents {
		return nil, apperrors.NewPreconditionFailedError(
			"Cannot delete this teacher because courses are still assigned. Please reassign or delete the teacher's courses first.")
	}

	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return teacher, nil
}
