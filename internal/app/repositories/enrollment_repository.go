package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/dberrors"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnrollmentListParams extends the common list parameters with optional
// student and course filters.
type EnrollmentListParams struct {
	ListParams
	StudentID *uuid.UUID
	CourseID  *uuid.UUID
}

var enrollmentColumns = []string{
	"e.id", "e.student_id", "e.course_id", "e.semester", "e.enrolled_at",
	"e.created_at", "e.updated_at",
	"s.display_name", "s.first_name", "s.last_name",
	"c.name", "c.code",
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	var displayName, firstName, lastName sql.NullString
	var courseName, courseCode sql.NullString

	err := row.Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.Semester, &enrollment.EnrolledAt,
		&enrollment.CreatedAt, &enrollment.UpdatedAt,
		&displayName, &firstName, &lastName,
		&courseName, &courseCode,
	)
	if err != nil {
		return nil, err
	}

	enrollment.StudentName = resolveDisplayName(displayName, firstName, lastName)
	enrollment.CourseName = helpers.StringPtr(courseName)
	enrollment.CourseCode = helpers.StringPtr(courseCode)
	return &enrollment, nil
}

func mapEnrollmentSortColumn(field string) string {
	switch field {
	case "semester":
		return "e.semester"
	case "enrolledAt", "enrolled_at":
		return "e.enrolled_at"
	default:
		return "e.created_at"
	}
}

// List retrieves a page of enrollments with resolved student and course
// names. Search matches the semester label.
func (r *EnrollmentRepository) List(ctx context.Context, params EnrollmentListParams) ([]models.Enrollment, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(enrollmentColumns...).
		From("enrollments e").
		LeftJoin("students s ON e.student_id = s.id").
		LeftJoin("courses c ON e.course_id = c.id")
	countQ := r.sb.Select("COUNT(*)").From("enrollments e")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "e.semester")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}
	if params.StudentID != nil {
		listQ = listQ.Where(squirrel.Eq{"e.student_id": *params.StudentID})
		countQ = countQ.Where(squirrel.Eq{"e.student_id": *params.StudentID})
	}
	if params.CourseID != nil {
		listQ = listQ.Where(squirrel.Eq{"e.course_id": *params.CourseID})
		countQ = countQ.Where(squirrel.Eq{"e.course_id": *params.CourseID})
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapEnrollmentSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	enrollments := []models.Enrollment{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return err
		}
		enrollments = append(enrollments, *enrollment)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing enrollments")
		return nil, 0, fmt.Errorf("failed to list enrollments: %w", err)
	}

	return enrollments, total, nil
}

// GetByID retrieves an enrollment with resolved names.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	query, args, err := r.sb.Select(enrollmentColumns...).
		From("enrollments e").
		LeftJoin("students s ON e.student_id = s.id").
		LeftJoin("courses c ON e.course_id = c.id").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error querying enrollment %s: %w", id, err)
	}

	return enrollment, nil
}

// Exists checks whether the student is already enrolled in the course
// for the semester.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID uuid.UUID, semester string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments
			WHERE student_id = $1 AND course_id = $2 AND semester = $3 AND id != $4)`,
		studentID, courseID, semester, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment uniqueness: %w", err)
	}
	return exists, nil
}

// Create inserts a new enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "semester", "enrolled_at").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.Semester, enrollment.EnrolledAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting enrollment")
		return fmt.Errorf("error inserting enrollment: %w", err)
	}

	logger.Info().Str("enrollmentID", enrollment.ID.String()).Msg("Enrollment created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *EnrollmentRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("enrollments").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating enrollment %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete removes an enrollment.
func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewPreconditionFailedError(
				"Cannot delete this enrollment because related records exist.")
		}
		return fmt.Errorf("error deleting enrollment %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	logger.Info().Str("enrollmentID", id.String()).Msg("Enrollment deleted")
	return nil
}
