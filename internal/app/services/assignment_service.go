package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// AssignmentService defines assignment operations.
type AssignmentService interface {
	List(ctx context.Context, params repositories.AssignmentListParams) ([]models.Assignment, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAssignmentRequest) (*models.Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
}

type assignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	courseRepo     *repositories.CourseRepository
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository, courseRepo *repositories.CourseRepository) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *assignmentService) List(ctx context.Context, params repositories.AssignmentListParams) ([]models.Assignment, int64, error) {
	return s.assignmentRepo.List(ctx, params)
}

func (s *assignmentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

func (s *assignmentService) checkCourseRef(ctx context.Context, courseID uuid.UUID) error {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Create adds an assignment to an existing course.
func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	courseID, err := parseUUID(req.CourseID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid course id")
	}
	if err := s.checkCourseRef(ctx, courseID); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		TotalMarks:  req.TotalMarks,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return s.assignmentRepo.GetByID(ctx, assignment.ID)
}

// Update patches an assignment; only provided fields are written.
func (s *assignmentService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.CourseID != nil {
		courseID, err := parseUUID(*req.CourseID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid course id")
		}
		if err := s.checkCourseRef(ctx, courseID); err != nil {
			return nil, err
		}
		fields["course_id"] = courseID
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.TotalMarks != nil {
		fields["total_marks"] = *req.TotalMarks
	}

	if err := s.assignmentRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.assignmentRepo.GetByID(ctx, id)
}

// Delete removes an assignment and returns the deleted row. Assignments
// with submissions or grades cannot be deleted.
func (s *assignmentService) Delete(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasDependents, err := s.assignmentRepo.HasDependents(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasDependents {
		return nil, apperrors.NewPreconditionFailedError(
			"Cannot delete this assignment because submissions or grades reference it. Please remove them first.")
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return assignment, nil
}
