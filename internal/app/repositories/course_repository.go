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

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var courseColumns = []string{
	"c.id", "c.teacher_id", "c.code", "c.name", "c.description", "c.credits",
	"c.created_at", "c.updated_at",
	"t.display_name", "t.first_name", "t.last_name",
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var displayName, firstName, lastName sql.NullString

	err := row.Scan(
		&course.ID, &course.TeacherID, &course.Code, &course.Name,
		&course.Description, &course.Credits, &course.CreatedAt, &course.UpdatedAt,
		&displayName, &firstName, &lastName,
	)
	if err != nil {
		return nil, err
	}

	course.TeacherName = resolveDisplayName(displayName, firstName, lastName)
	return &course, nil
}

// mapCourseSortColumn maps API sort field names to database columns.
// Unknown fields fall back to created_at.
func mapCourseSortColumn(field string) string {
	switch field {
	case "name":
		return "c.name"
	case "code":
		return "c.code"
	case "credits":
		return "c.credits"
	case "createdAt", "created_at":
		return "c.created_at"
	default:
		return "c.created_at"
	}
}

// List retrieves a page of courses plus the total row count. Search
// matches name, code and description case-insensitively.
func (r *CourseRepository) List(ctx context.Context, params ListParams) ([]models.Course, int64, error) {
	page, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(courseColumns...).
		From("courses c").
		LeftJoin("teachers t ON c.teacher_id = t.id")
	countQ := r.sb.Select("COUNT(*)").From("courses c")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "c.name", "c.code", "c.description")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapCourseSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	courses := []models.Course{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		course, err := scanCourse(rows)
		if err != nil {
			return err
		}
		courses = append(courses, *course)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing courses")
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}

	logger.Debug().Int("page", page).Int("limit", limit).Int64("total", total).Msg("Fetched courses")
	return courses, total, nil
}

// GetByID retrieves a course with its resolved teacher name.
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query, args, err := r.sb.Select(courseColumns...).
		From("courses c").
		LeftJoin("teachers t ON c.teacher_id = t.id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error querying course %s: %w", id, err)
	}

	return course, nil
}

// ExistsByID checks whether a course row exists.
func (r *CourseRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// CodeExists checks whether another course already uses the code.
// excludeID may be uuid.Nil when creating.
func (r *CourseRepository) CodeExists(ctx context.Context, code string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code uniqueness: %w", err)
	}
	return exists, nil
}

// Create inserts a new course and fills in the generated id and
// timestamps.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Insert("courses").
		Columns("teacher_id", "code", "name", "description", "credits").
		Values(course.TeacherID, course.Code, course.Name, course.Description, course.Credits).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Msg("Error inserting course")
		return fmt.Errorf("error inserting course: %w", err)
	}

	logger.Info().Str("courseID", course.ID.String()).Str("code", course.Code).Msg("Course created")
	return nil
}

// Update applies a partial patch built by the service layer. fields maps
// column names to new values.
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("courses").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// HasDependents reports whether any dependent rows reference the course.
func (r *CourseRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var hasDependents bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = $1)
			OR EXISTS(SELECT 1 FROM assignments WHERE course_id = $1)
			OR EXISTS(SELECT 1 FROM exams WHERE course_id = $1)
			OR EXISTS(SELECT 1 FROM grades WHERE course_id = $1)
			OR EXISTS(SELECT 1 FROM attendances WHERE course_id = $1)`,
		id).Scan(&hasDependents)
	if err != nil {
		return false, fmt.Errorf("error checking course dependents: %w", err)
	}
	return hasDependents, nil
}

// Delete removes a course row.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewPreconditionFailedError(
				"Cannot delete this course because it has active enrollments. Please remove all course enrollments first.")
		}
		return fmt.Errorf("error deleting course %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	logger.Info().Str("courseID", id.String()).Msg("Course deleted")
	return nil
}
