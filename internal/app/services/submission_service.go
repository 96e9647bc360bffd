package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// SubmissionService defines submission operations.
type SubmissionService interface {
	List(ctx context.Context, params repositories.SubmissionListParams) ([]models.Submission, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubmissionRequest) (*models.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Submission, error)
}

type submissionService struct {
	submissionRepo *repositories.SubmissionRepository
	assignmentRepo *repositories.AssignmentRepository
	studentRepo    *repositories.StudentRepository
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(submissionRepo *repositories.SubmissionRepository, assignmentRepo *repositories.AssignmentRepository, studentRepo *repositories.StudentRepository) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
	}
}

func (s *submissionService) List(ctx context.Context, params repositories.SubmissionListParams) ([]models.Submission, int64, error) {
	return s.submissionRepo.List(ctx, params)
}

func (s *submissionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

// Create records a submission against an existing assignment and
// student. A submitted status without a timestamp gets the current
// time.
func (s *submissionService) Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error) {
	assignmentID, err := parseUUID(req.AssignmentID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid assignment id")
	}
	studentID, err := parseUUID(req.StudentID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid student id")
	}

	exists, err := s.assignmentRepo.ExistsByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrAssignmentNotFound
	}

	exists, err = s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	status := models.SubmissionStatus(req.Status)
	submittedAt := req.SubmittedAt
	if submittedAt == nil && status != models.SubmissionPending {
		now := time.Now()
		submittedAt = &now
	}

	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Status:       status,
		SubmittedAt:  submittedAt,
		IsLate:       req.IsLate,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	return s.submissionRepo.GetByID(ctx, submission.ID)
}

// Update patches a submission; only provided fields are written.
func (s *submissionService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubmissionRequest) (*models.Submission, error) {
	if _, err := s.submissionRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		fields["status"] = models.SubmissionStatus(*req.Status)
	}
	if req.SubmittedAt != nil {
		fields["submitted_at"] = *req.SubmittedAt
	}
	if req.IsLate != nil {
		fields["is_late"] = *req.IsLate
	}

	if err := s.submissionRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.submissionRepo.GetByID(ctx, id)
}

// Delete removes a submission and returns the deleted row.
func (s *submissionService) Delete(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.submissionRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return submission, nil
}
