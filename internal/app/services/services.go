package services

import (
	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/auth"
)

// Services bundles every service for dependency wiring.
type Services struct {
	AuthService       AuthService
	UserService       UserService
	StudentService    StudentService
	TeacherService    TeacherService
	AdminService      AdminService
	CourseService     CourseService
	EnrollmentService EnrollmentService
	AssignmentService AssignmentService
	ExamService       ExamService
	SubmissionService SubmissionService
	GradeService      GradeService
	AttendanceService AttendanceService
}

// NewServices creates all services on top of the repository container.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService),
		UserService:       NewUserService(repos.UserRepository),
		StudentService:    NewStudentService(repos.StudentRepository, repos.UserRepository),
		TeacherService:    NewTeacherService(repos.TeacherRepository, repos.UserRepository),
		AdminService:      NewAdminService(repos.AdminRepository, repos.UserRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.TeacherRepository),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository, repos.CourseRepository),
		ExamService:       NewExamService(repos.ExamRepository, repos.CourseRepository),
		SubmissionService: NewSubmissionService(repos.SubmissionRepository, repos.AssignmentRepository, repos.StudentRepository),
		GradeService:      NewGradeService(repos.GradeRepository, repos.CourseRepository, repos.StudentRepository, repos.AssignmentRepository, repos.ExamRepository),
		AttendanceService: NewAttendanceService(repos.AttendanceRepository, repos.CourseRepository, repos.StudentRepository),
	}
}

// parseUUID parses a UUID string already validated by the binding layer.
func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// parseUUIDPtr parses an optional UUID string, returning nil for nil
// input.
func parseUUIDPtr(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
