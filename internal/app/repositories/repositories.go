package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every entity repository for dependency wiring.
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	AdminRepository      *AdminRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	AssignmentRepository *AssignmentRepository
	ExamRepository       *ExamRepository
	SubmissionRepository *SubmissionRepository
	GradeRepository      *GradeRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories creates all repositories sharing one pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		AdminRepository:      NewAdminRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		ExamRepository:       NewExamRepository(db),
		SubmissionRepository: NewSubmissionRepository(db),
		GradeRepository:      NewGradeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
