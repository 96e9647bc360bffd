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

// TeacherRepository handles teacher profile database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var teacherColumns = []string{
	"id", "user_id", "first_name", "last_name", "display_name", "email",
	"phone", "gender", "date_of_birth", "department", "designation",
	"created_at", "updated_at",
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	var teacher models.Teacher
	err := row.Scan(
		&teacher.ID, &teacher.UserID, &teacher.FirstName, &teacher.LastName,
		&teacher.DisplayName, &teacher.Email, &teacher.Phone, &teacher.Gender,
		&teacher.DateOfBirth, &teacher.Department, &teacher.Designation,
		&teacher.CreatedAt, &teacher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func mapTeacherSortColumn(field string) string {
	switch field {
	case "firstName", "first_name":
		return "first_name"
	case "lastName", "last_name":
		return "last_name"
	case "email":
		return "email"
	case "department":
		return "department"
	case "designation":
		return "designation"
	default:
		return "created_at"
	}
}

// List retrieves a page of teachers plus the total row count.
func (r *TeacherRepository) List(ctx context.Context, params ListParams) ([]models.Teacher, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(teacherColumns...).From("teachers")
	countQ := r.sb.Select("COUNT(*)").From("teachers")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "first_name", "last_name", "email", "department", "designation")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapTeacherSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	teachers := []models.Teacher{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return err
		}
		teachers = append(teachers, *teacher)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing teachers")
		return nil, 0, fmt.Errorf("failed to list teachers: %w", err)
	}

	return teachers, total, nil
}

// GetByID retrieves a teacher by id.
func (r *TeacherRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error) {
	query, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error querying teacher %s: %w", id, err)
	}

	return teacher, nil
}

// ExistsByID checks whether a teacher row exists.
func (r *TeacherRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks whether another teacher already uses the email.
func (r *TeacherRepository) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher email uniqueness: %w", err)
	}
	return exists, nil
}

// Create inserts a new teacher profile.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query, args, err := r.sb.Insert("teachers").
		Columns("user_id", "first_name", "last_name", "display_name", "email",
			"phone", "gender", "date_of_birth", "department", "designation").
		Values(teacher.UserID, teacher.FirstName, teacher.LastName, teacher.DisplayName,
			teacher.Email, teacher.Phone, teacher.Gender, teacher.DateOfBirth,
			teacher.Department, teacher.Designation).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A teacher with this email already exists")
		}
		logger.Error().Err(err).Msg("Error inserting teacher")
		return fmt.Errorf("error inserting teacher: %w", err)
	}

	logger.Info().Str("teacherID", teacher.ID.String()).Msg("Teacher created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *TeacherRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("teachers").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A teacher with this email already exists")
		}
		return fmt.Errorf("error updating teacher %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// HasDependents reports whether any course still references the teacher.
func (r *TeacherRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var hasDependents bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE teacher_id = $1)`,
		id).Scan(&hasDependents)
	if err != nil {
		return false, fmt.Errorf("error checking teacher dependents: %w", err)
	}
	return hasDependents, nil
}

// Delete removes a teacher profile.
func (r *TeacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewPreconditionFailedError(
				"Cannot delete this teacher because courses are still assigned. Please reassign or delete the teacher's courses first.")
		}
		return fmt.Errorf("error deleting teacher %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	logger.Info().Str("teacherID", id.String()).Msg("Teacher deleted")
	return nil
}
