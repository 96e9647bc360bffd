package repositories

import (
	"context"
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

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"id", "user_id", "first_name", "last_name", "display_name", "email",
	"phone", "gender", "date_of_birth", "place_of_birth", "nationality",
	"current_address", "permanent_address", "guardian_name",
	"guardian_relationship", "guardian_phone", "guardian_email",
	"batch", "program", "created_at", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.UserID, &student.FirstName, &student.LastName,
		&student.DisplayName, &student.Email, &student.Phone, &student.Gender,
		&student.DateOfBirth, &student.PlaceOfBirth, &student.Nationality,
		&student.CurrentAddress, &student.PermanentAddress, &student.GuardianName,
		&student.GuardianRelationship, &student.GuardianPhone, &student.GuardianEmail,
		&student.Batch, &student.Program, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func mapStudentSortColumn(field string) string {
	switch field {
	case "firstName", "first_name":
		return "first_name"
	case "lastName", "last_name":
		return "last_name"
	case "email":
		return "email"
	case "batch":
		return "batch"
	case "program":
		return "program"
	default:
		return "created_at"
	}
}

// List retrieves a page of students plus the total row count. Search
// matches name, email and program case-insensitively.
func (r *StudentRepository) List(ctx context.Context, params ListParams) ([]models.Student, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(studentColumns...).From("students")
	countQ := r.sb.Select("COUNT(*)").From("students")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "first_name", "last_name", "email", "program")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapStudentSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	students := []models.Student{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		student, err := scanStudent(rows)
		if err != nil {
			return err
		}
		students = append(students, *student)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing students")
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}

	return students, total, nil
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error querying student %s: %w", id, err)
	}

	return student, nil
}

// ExistsByID checks whether a student row exists.
func (r *StudentRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks whether another student already uses the email.
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email uniqueness: %w", err)
	}
	return exists, nil
}

// Create inserts a new student profile.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		Columns("user_id", "first_name", "last_name", "display_name", "email",
			"phone", "gender", "date_of_birth", "place_of_birth", "nationality",
			"current_address", "permanent_address", "guardian_name",
			"guardian_relationship", "guardian_phone", "guardian_email",
			"batch", "program").
		Values(student.UserID, student.FirstName, student.LastName, student.DisplayName,
			student.Email, student.Phone, student.Gender, student.DateOfBirth,
			student.PlaceOfBirth, student.Nationality, student.CurrentAddress,
			student.PermanentAddress, student.GuardianName, student.GuardianRelationship,
			student.GuardianPhone, student.GuardianEmail, student.Batch, student.Program).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A student with this email already exists")
		}
		logger.Error().Err(err).Msg("Error inserting student")
		return fmt.Errorf("error inserting student: %w", err)
	}

	logger.Info().Str("studentID", student.ID.String()).Msg("Student created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *StudentRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("students").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A student with this email already exists")
		}
		return fmt.Errorf("error updating student %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// HasDependents reports whether any dependent rows reference the
// student.
func (r *StudentRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var hasDependents bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1)
			OR EXISTS(SELECT 1 FROM submissions WHERE student_id = $1)
			OR EXISTS(SELECT 1 FROM grades WHERE student_id = $1)
			OR EXISTS(SELECT 1 FROM attendances WHERE student_id = $1)`,
		id).Scan(&hasDependents)
	if err != nil {
		return false, fmt.Errorf("error checking student dependents: %w", err)
	}
	return hasDependents, nil
}

// Delete removes a student profile.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewPreconditionFailedError(
				"Cannot delete this student because related records exist. Please remove the student's enrollments, submissions, grades and attendance records first.")
		}
		return fmt.Errorf("error deleting student %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Str("studentID", id.String()).Msg("Student deleted")
	return nil
}
