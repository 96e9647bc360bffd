package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// StudentService defines student profile operations.
type StudentService interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Student, error)
}

type studentService struct {
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, userRepo *repositories.UserRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
	}
}

func (s *studentService) List(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error) {
	return s.studentRepo.List(ctx, params)
}

func (s *studentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// checkUserRef verifies that a linked account exists before a profile
// row references it.
func (s *studentService) checkUserRef(ctx context.Context, userID *uuid.UUID) error {
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

// Create adds a student profile after email uniqueness and account
// reference checks.
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	userID, err := parseUUIDPtr(req.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid user id")
	}
	if err := s.checkUserRef(ctx, userID); err != nil {
		return nil, err
	}

	taken, err := s.studentRepo.EmailExists(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError("A student with this email already exists")
	}

	student := &models.Student{
		UserID:               userID,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		DisplayName:          req.DisplayName,
		Email:                req.Email,
		Phone:                req.Phone,
		Gender:               req.Gender,
		DateOfBirth:          req.DateOfBirth,
		PlaceOfBirth:         req.PlaceOfBirth,
		Nationality:          req.Nationality,
		CurrentAddress:       req.CurrentAddress,
		PermanentAddress:     req.PermanentAddress,
		GuardianName:         req.GuardianName,
		GuardianRelationship: req.GuardianRelationship,
		GuardianPhone:        req.GuardianPhone,
		GuardianEmail:        req.GuardianEmail,
		Batch:                req.Batch,
		Program:              req.Program,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Update patches a student profile; only provided fields are written.
func (s *studentService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
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
		taken, err := s.studentRepo.EmailExists(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflictError("A student with this email already exists")
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
	if req.PlaceOfBirth != nil {
		fields["place_of_birth"] = *req.PlaceOfBirth
	}
	if req.Nationality != nil {
		fields["nationality"] = *req.Nationality
	}
	if req.CurrentAddress != nil {
		fields["current_address"] = *req.CurrentAddress
	}
	if req.PermanentAddress != nil {
		fields["permanent_address"] = *req.PermanentAddress
	}
	if req.GuardianName != nil {
		fields["guardian_name"] = *req.GuardianName
	}
	if req.GuardianRelationship != nil {
		fields["guardian_relationship"] = *req.GuardianRelationship
	}
	if req.GuardianPhone != nil {
		fields["guardian_phone"] = *req.GuardianPhone
	}
	if req.GuardianEmail != nil {
		fields["guardian_email"] = *req.GuardianEmail
	}
	if req.Batch != nil {
		fields["batch"] = *req.Batch
	}
	if req.Program != nil {
		fields["program"] = *req.Program
	}

	if err := s.studentRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// Delete removes a student profile and returns the deleted row.
// Students with enrollments, submissions, grades or attendance records
// cannot be deleted.
func (s *studentService) Delete(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasDependents, err := s.studentRepo.HasDependents(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasDependents {
		return nil, apperrors.NewPreconditionFailedError(
			"Cannot delete this student because related records exist. Please remove the student's enrollments, submissions, grades and attendance records first.")
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return student, nil
}
