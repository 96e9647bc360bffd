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

// EnrollmentService defines enrollment operations.
type EnrollmentService interface {
	List(ctx context.Context, params repositories.EnrollmentListParams) ([]models.Enrollment, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
}

type enrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, studentRepo *repositories.StudentRepository, courseRepo *repositories.CourseRepository) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *enrollmentService) List(ctx context.Context, params repositories.EnrollmentListParams) ([]models.Enrollment, int64, error) {
	return s.enrollmentRepo.List(ctx, params)
}

func (s *enrollmentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

func (s *enrollmentService) checkRefs(ctx context.Context, studentID, courseID uuid.UUID) error {
	exists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}

	exists, err = s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Create enrolls a student in a course for a semester. A student may
// hold only one enrollment per (course, semester) pair.
func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	studentID, err := parseUUID(req.StudentID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid student id")
	}
	courseID, err := parseUUID(req.CourseID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid course id")
	}

	if err := s.checkRefs(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	exists, err := s.enrollmentRepo.Exists(ctx, studentID, courseID, req.Semester, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEnrollmentExists
	}

	enrolledAt := time.Now()
	if req.EnrolledAt != nil {
		enrolledAt = *req.EnrolledAt
	}

	enrollment := &models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Semester:   req.Semester,
		EnrolledAt: enrolledAt,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetByID(ctx, enrollment.ID)
}

// Update patches an enrollment, re-running the uniqueness pre-check
// when any key field changes.
func (s *enrollmentService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	current, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	studentID := current.StudentID
	courseID := current.CourseID
	semester := current.Semester

	fields := map[string]interface{}{}

	if req.StudentID != nil {
		studentID, err = parseUUID(*req.StudentID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid student id")
		}
		fields["student_id"] = studentID
	}
	if req.CourseID != nil {
		courseID, err = parseUUID(*req.CourseID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid course id")
		}
		fields["course_id"] = courseID
	}
	if req.Semester != nil {
		semester = *req.Semester
		fields["semester"] = semester
	}
	if req.EnrolledAt != nil {
		fields["enrolled_at"] = *req.EnrolledAt
	}

	if req.StudentID != nil || req.CourseID != nil {
		if err := s.checkRefs(ctx, studentID, courseID); err != nil {
			return nil, err
		}
	}
	if req.StudentID != nil || req.CourseID != nil || req.Semester != nil {
		exists, err := s.enrollmentRepo.Exists(ctx, studentID, courseID, semester, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEnrollmentExists
		}
	}

	if err := s.enrollmentRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetByID(ctx, id)
}

// Delete removes an enrollment and returns the deleted row.
func (s *enrollmentService) Delete(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return enrollment, nil
}
