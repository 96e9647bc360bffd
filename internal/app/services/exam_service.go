package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// ExamService defines exam operations.
type ExamService interface {
	List(ctx context.Context, params repositories.ExamListParams) ([]models.Exam, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Exam, error)
	Create(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateExamRequest) (*models.Exam, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Exam, error)
}

type examService struct {
	examRepo   *repositories.ExamRepository
	courseRepo *repositories.CourseRepository
}

// NewExamService creates a new ExamService
func NewExamService(examRepo *repositories.ExamRepository, courseRepo *repositories.CourseRepository) ExamService {
	return &examService{
		examRepo:   examRepo,
		courseRepo: courseRepo,
	}
}

func (s *examService) List(ctx context.Context, params repositories.ExamListParams) ([]models.Exam, int64, error) {
	return s.examRepo.List(ctx, params)
}

func (s *examService) GetByID(ctx context.Context, id uuid.UUID) (*models.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

func (s *examService) checkCourseRef(ctx context.Context, courseID uuid.UUID) error {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Create adds an exam to an existing course.
func (s *examService) Create(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	courseID, err := parseUUID(req.CourseID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid course id")
	}
	if err := s.checkCourseRef(ctx, courseID); err != nil {
		return nil, err
	}

	exam := &models.Exam{
		CourseID:   courseID,
		ExamType:   req.ExamType,
		ExamDate:   req.ExamDate,
		Duration:   req.Duration,
		TotalMarks: req.TotalMarks,
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}

	return s.examRepo.GetByID(ctx, exam.ID)
}

// Update patches an exam; only provided fields are written.
func (s *examService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateExamRequest) (*models.Exam, error) {
	if _, err := s.examRepo.GetByID(ctx, id); err != nil {
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
	if req.ExamType != nil {
		fields["exam_type"] = *req.ExamType
	}
	if req.ExamDate != nil {
		fields["exam_date"] = *req.ExamDate
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.TotalMarks != nil {
		fields["total_marks"] = *req.TotalMarks
	}

	if err := s.examRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.examRepo.GetByID(ctx, id)
}

// Delete removes an exam and returns the deleted row. Exams referenced
// by grades cannot be deleted.
func (s *examService) Delete(ctx context.Context, id uuid.UUID) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasDependents, err := s.examRepo.HasDependents(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasDependents {
		return nil, apperrors.NewPreconditionFailedError(
			"Cannot delete this exam because grades reference it. Please remove the related grades first.")
	}

	if err := s.examRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return exam, nil
}
