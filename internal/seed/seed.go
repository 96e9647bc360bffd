package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/pkg/auth"
)

// CreateDefaultData populates the database with a demo dataset the
// first time the application starts against an empty database. It is a
// no-op whenever at least one user account already exists, so restarts
// never duplicate rows.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var userCount int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if userCount > 0 {
		lgr.Debug().Msg("Users already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Empty database detected, creating demo data...")

	adminHash, err := auth.HashPassword("admin123!")
	if err != nil {
		return fmt.Errorf("failed to hash demo admin password: %w", err)
	}
	memberHash, err := auth.HashPassword("campus123!")
	if err != nil {
		return fmt.Errorf("failed to hash demo member password: %w", err)
	}

	tx, err := dbPool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var adminUserID, teacherUserID, studentUserID uuid.UUID
	insertUser := `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id`
	if err := tx.QueryRow(ctx, insertUser, "admin@campushub.app", adminHash, "admin").Scan(&adminUserID); err != nil {
		return fmt.Errorf("failed to create demo admin user: %w", err)
	}
	if err := tx.QueryRow(ctx, insertUser, "e.turner@campushub.app", memberHash, "teacher").Scan(&teacherUserID); err != nil {
		return fmt.Errorf("failed to create demo teacher user: %w", err)
	}
	if err := tx.QueryRow(ctx, insertUser, "m.reyes@campushub.app", memberHash, "student").Scan(&studentUserID); err != nil {
		return fmt.Errorf("failed to create demo student user: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO admins (user_id, first_name, last_name, email, department, access_level)
		VALUES ($1, 'System', 'Administrator', 'admin@campushub.app', 'Registrar Office', 'super')`,
		adminUserID); err != nil {
		return fmt.Errorf("failed to create demo admin profile: %w", err)
	}

	var teacherID uuid.UUID
	if err := tx.QueryRow(ctx, `
		INSERT INTO teachers (user_id, first_name, last_name, display_name, email, department, designation)
		VALUES ($1, 'Evelyn', 'Turner', 'Dr. Evelyn Turner', 'e.turner@campushub.app', 'Computer Science', 'Associate Professor')
		RETURNING id`, teacherUserID).Scan(&teacherID); err != nil {
		return fmt.Errorf("failed to create demo teacher: %w", err)
	}

	var studentID uuid.UUID
	if err := tx.QueryRow(ctx, `
		INSERT INTO students (user_id, first_name, last_name, email, batch, program)
		VALUES ($1, 'Marco', 'Reyes', 'm.reyes@campushub.app', 2024, 'BSc Computer Science')
		RETURNING id`, studentUserID).Scan(&studentID); err != nil {
		return fmt.Errorf("failed to create demo student: %w", err)
	}

	var courseID uuid.UUID
	if err := tx.QueryRow(ctx, `
		INSERT INTO courses (teacher_id, code, name, description, credits)
		VALUES ($1, 'CS101', 'Introduction to Programming', 'Fundamentals of programming with structured exercises.', 6)
		RETURNING id`, teacherID).Scan(&courseID); err != nil {
		return fmt.Errorf("failed to create demo course: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO enrollments (student_id, course_id, semester)
		VALUES ($1, $2, 'Fall 2026')`, studentID, courseID); err != nil {
		return fmt.Errorf("failed to create demo enrollment: %w", err)
	}

	var assignmentID uuid.UUID
	if err := tx.QueryRow(ctx, `
		INSERT INTO assignments (course_id, title, description, due_date, total_marks)
		VALUES ($1, 'Problem Set 1', 'Loops, conditionals and functions.', $2, 100)
		RETURNING id`, courseID, time.Now().AddDate(0, 0, 14)).Scan(&assignmentID); err != nil {
		return fmt.Errorf("failed to create demo assignment: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO exams (course_id, exam_type, exam_date, duration, total_marks)
		VALUES ($1, 'midterm', $2, 120, 100)`, courseID, time.Now().AddDate(0, 2, 0)); err != nil {
		return fmt.Errorf("failed to create demo exam: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO submissions (assignment_id, student_id, status, submitted_at, is_late)
		VALUES ($1, $2, 'submitted', NOW(), FALSE)`, assignmentID, studentID); err != nil {
		return fmt.Errorf("failed to create demo submission: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO grades (course_id, student_id, assignment_id, marks, letter_grade, graded_at)
		VALUES ($1, $2, $3, 87.5, 'A', NOW())`, courseID, studentID, assignmentID); err != nil {
		return fmt.Errorf("failed to create demo grade: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO attendances (course_id, student_id, date, status)
		VALUES ($1, $2, CURRENT_DATE, 'present')`, courseID, studentID); err != nil {
		return fmt.Errorf("failed to create demo attendance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	lgr.Info().Msg("Demo data created")
	return nil
}
