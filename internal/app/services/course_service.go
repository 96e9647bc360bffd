package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// CourseService defines course catalog operations.
type CourseService interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Course, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

type courseService struct {
	courseRepo  *repositories.CourseRepository
	teacherRepo *repositories.TeacherRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, teacherRepo *repositories.TeacherRepository) CourseService {
	return &courseService{
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
	}
}

// isValidCourseCode checks that a code is uppercase letters and digits
// only, e.g. CS101.
func isValidCourseCode(code string) bool {
	if code == "" {
		return false
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func (s *courseService) List(ctx context.Context, params repositories.ListParams) ([]models.Course, int64, error) {
	return s.courseRepo.List(ctx, params)
}

func (s *courseService) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *courseService) checkTeacherRef(ctx context.Context, teacherID *uuid.UUID) error {
	if teacherID == nil {
		return nil
	}
	exists, err := s.teacherRepo.ExistsByID(ctx, *teacherID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// Create adds a course after code validation, code uniqueness and
// teacher reference checks.
func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if !isValidCourseCode(code) {
		return nil, apperrors.NewValidationError("Course code must contain only letters and digits")
	}

	teacherID, err := parseUUIDPtr(req.TeacherID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid teacher id")
	}
	if err := s.checkTeacherRef(ctx, teacherID); err != nil {
		return nil, err
	}

	taken, err := s.courseRepo.CodeExists(ctx, code, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		TeacherID:   teacherID,
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	// Re-read to resolve the teacher name for the response.
	return s.courseRepo.GetByID(ctx, course.ID)
}

// Update patches a course; only provided fields are written.
func (s *courseService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.Code))
		if !isValidCourseCode(code) {
			return nil, apperrors.NewValidationError("Course code must contain only letters and digits")
		}
		taken, err := s.courseRepo.CodeExists(ctx, code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrCourseCodeExists
		}
		fields["code"] = code
	}
	if req.TeacherID != nil {
		teacherID, err := parseUUIDPtr(req.TeacherID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid teacher id")
		}
		if err := s.checkTeacherRef(ctx, teacherID); err != nil {
			return nil, err
		}
		fields["teacher_id"] = teacherID
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Credits != nil {
		fields["credits"] = *req.Credits
	}

	if err := s.courseRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id)
}

// Delete removes a course and returns the deleted row. Courses with
// enrollments, assignments, exams, grades or attendance records cannot
// be deleted.
func (s *courseService) Delete(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasDependents, err := s.courseRepo.HasDependents(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasDependents {
		return nil, apperrors.NewPreconditionFailedError(
			"Cannot delete this course because it has active enrollments. Please remove all course enrollments first.")
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return course, nil
}
