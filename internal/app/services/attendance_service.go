package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// AttendanceService defines attendance operations.
type AttendanceService interface {
	List(ctx context.Context, params repositories.AttendanceListParams) ([]models.Attendance, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.Attendance, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendanceRequest) (*models.Attendance, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
}

type attendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	courseRepo     *repositories.CourseRepository
	studentRepo    *repositories.StudentRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository, courseRepo *repositories.CourseRepository, studentRepo *repositories.StudentRepository) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
	}
}

func (s *attendanceService) List(ctx context.Context, params repositories.AttendanceListParams) ([]models.Attendance, int64, error) {
	return s.attendanceRepo.List(ctx, params)
}

func (s *attendanceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// Create records attendance for a student in a course on a given date.
func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.Attendance, error) {
	courseID, err := parseUUID(req.CourseID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid course id")
	}
	studentID, err := parseUUID(req.StudentID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid student id")
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

	attendance := &models.Attendance{
		CourseID:  courseID,
		StudentID: studentID,
		Date:      req.Date,
		Status:    models.AttendanceStatus(req.Status),
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}

	return s.attendanceRepo.GetByID(ctx, attendance.ID)
}

// Update patches an attendance record; only provided fields are
// written.
func (s *attendanceService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Status != nil {
		fields["status"] = models.AttendanceStatus(*req.Status)
	}

	if err := s.attendanceRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.attendanceRepo.GetByID(ctx, id)
}

// Delete removes an attendance record and returns the deleted row.
func (s *attendanceService) Delete(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	attendance, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return attendance, nil
}
