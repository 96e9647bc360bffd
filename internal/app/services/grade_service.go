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

// GradeService defines grade operations. The letter grade is derived
// from the numeric marks, never accepted from the client.
type GradeService interface {
	List(ctx context.Context, params repositories.GradeListParams) ([]models.Grade, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Grade, error)
	Create(ctx context.Context, req *dto.CreateGradeRequest) (*models.Grade, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGradeRequest) (*models.Grade, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Grade, error)
}

type gradeService struct {
	gradeRepo      *repositories.GradeRepository
	courseRepo     *repositories.CourseRepository
	studentRepo    *repositories.StudentRepository
	assignmentRepo *repositories.AssignmentRepository
	examRepo       *repositories.ExamRepository
}

// NewGradeService creates a new GradeService
func NewGradeService(gradeRepo *repositories.GradeRepository, courseRepo *repositories.CourseRepository, studentRepo *repositories.StudentRepository, assignmentRepo *repositories.AssignmentRepository, examRepo *repositories.ExamRepository) GradeService {
	return &gradeService{
		gradeRepo:      gradeRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		assignmentRepo: assignmentRepo,
		examRepo:       examRepo,
	}
}

// LetterGradeFor maps numeric marks on the 0-100 scale to a letter
// grade: A+ >= 90, A >= 80, B+ >= 75, B >= 70, C+ >= 65, C >= 60,
// D >= 50, F below.
func LetterGradeFor(marks float64) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 75:
		return "B+"
	case marks >= 70:
		return "B"
	case marks >= 65:
		return "C+"
	case marks >= 60:
		return "C"
	case marks >= 50:
		return "D"
	default:
		return "F"
	}
}

func (s *gradeService) List(ctx context.Context, params repositories.GradeListParams) ([]models.Grade, int64, error) {
	return s.gradeRepo.List(ctx, params)
}

func (s *gradeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Grade, error) {
	return s.gradeRepo.GetByID(ctx, id)
}

// checkSource validates the optional assignment/exam reference pair. A
// grade may point at one of them, never both.
func (s *gradeService) checkSource(ctx context.Context, assignmentID, examID *uuid.UUID) error {
	if assignmentID != nil && examID != nil {
		return apperrors.NewValidationError("A grade may reference an assignment or an exam, not both")
	}
	if assignmentID != nil {
		exists, err := s.assignmentRepo.ExistsByID(ctx, *assignmentID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrAssignmentNotFound
		}
	}
	if examID != nil {
		exists, err := s.examRepo.ExistsByID(ctx, *examID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrExamNotFound
		}
	}
	return nil
}

// Create records a grade for a student in a course, deriving the letter
// grade from the marks.
func (s *gradeService) Create(ctx context.Context, req *dto.CreateGradeRequest) (*models.Grade, error) {
	courseID, err := parseUUID(req.CourseID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid course id")
	}
	studentID, err := parseUUID(req.StudentID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid student id")
	}
	assignmentID, err := parseUUIDPtr(req.AssignmentID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid assignment id")
	}
	examID, err := parseUUIDPtr(req.ExamID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid exam id")
	}

	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	exists, err = s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	if err := s.checkSource(ctx, assignmentID, examID); err != nil {
		return nil, err
	}

	gradedAt := req.GradedAt
	if gradedAt == nil {
		now := time.Now()
		gradedAt = &now
	}

	grade := &models.Grade{
		CourseID:     courseID,
		StudentID:    studentID,
		AssignmentID: assignmentID,
		ExamID:       examID,
		Marks:        req.Marks,
		LetterGrade:  LetterGradeFor(req.Marks),
		GradedAt:     gradedAt,
	}
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	return s.gradeRepo.GetByID(ctx, grade.ID)
}

// Update patches a grade. New marks re-derive the letter grade.
func (s *gradeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGradeRequest) (*models.Grade, error) {
	current, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignmentID := current.AssignmentID
	examID := current.ExamID

	fields := map[string]interface{}{}

	if req.AssignmentID != nil {
		assignmentID, err = parseUUIDPtr(req.AssignmentID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid assignment id")
		}
		fields["assignment_id"] = assignmentID
	}
	if req.ExamID != nil {
		examID, err = parseUUIDPtr(req.ExamID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid exam id")
		}
		fields["exam_id"] = examID
	}
	if req.AssignmentID != nil || req.ExamID != nil {
		if err := s.checkSource(ctx, assignmentID, examID); err != nil {
			return nil, err
		}
	}
	if req.Marks != nil {
		fields["marks"] = *req.Marks
		fields["letter_grade"] = LetterGradeFor(*req.Marks)
	}
	if req.GradedAt != nil {
		fields["graded_at"] = *req.GradedAt
	}

	if err := s.gradeRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.gradeRepo.GetByID(ctx, id)
}

// Delete removes a grade and returns the deleted row.
func (s *gradeService) Delete(ctx context.Context, id uuid.UUID) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.gradeRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return grade, nil
}
