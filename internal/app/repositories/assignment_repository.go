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

// AssignmentRepository handles assignment database operations
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AssignmentListParams extends the common list parameters with an
// optional course filter.
type AssignmentListParams struct {
	ListParams
	CourseID *uuid.UUID
}

var assignmentColumns = []string{
	"a.id", "a.course_id", "a.title", "a.description", "a.due_date",
	"a.total_marks", "a.created_at", "a.updated_at",
	"c.name", "c.code",
}

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var assignment models.Assignment
	var courseName, courseCode sql.NullString

	err := row.Scan(
		&assignment.ID, &assignment.CourseID, &assignment.Title,
		&assignment.Description, &assignment.DueDate, &assignment.TotalMarks,
		&assignment.CreatedAt, &assignment.UpdatedAt,
		&courseName, &courseCode,
	)
	if err != nil {
		return nil, err
	}

	assignment.CourseName = helpers.StringPtr(courseName)
	assignment.CourseCode = helpers.StringPtr(courseCode)
	return &assignment, nil
}

func mapAssignmentSortColumn(field string) string {
	switch field {
	case "title":
		return "a.title"
	case "dueDate", "due_date":
		return "a.due_date"
	case "totalMarks", "total_marks":
		return "a.total_marks"
	default:
		return "a.created_at"
	}
}

// List retrieves a page of assignments with resolved course names.
// Search matches title and description.
func (r *AssignmentRepository) List(ctx context.Context, params AssignmentListParams) ([]models.Assignment, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(assignmentColumns...).
		From("assignments a").
		LeftJoin("courses c ON a.course_id = c.id")
	countQ := r.sb.Select("COUNT(*)").From("assignments a")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "a.title", "a.description")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}
	if params.CourseID != nil {
		listQ = listQ.Where(squirrel.Eq{"a.course_id": *params.CourseID})
		countQ = countQ.Where(squirrel.Eq{"a.course_id": *params.CourseID})
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapAssignmentSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	assignments := []models.Assignment{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return err
		}
		assignments = append(assignments, *assignment)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing assignments")
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	return assignments, total, nil
}

// GetByID retrieves an assignment with its resolved course name.
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	query, args, err := r.sb.Select(assignmentColumns...).
		From("assignments a").
		LeftJoin("courses c ON a.course_id = c.id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	assignment, err := scanAssignment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error querying assignment %s: %w", id, err)
	}

	return assignment, nil
}

// ExistsByID checks whether an assignment row exists.
func (r *AssignmentRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM assignments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking assignment existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query, args, err := r.sb.Insert("assignments").
		Columns("course_id", "title", "description", "due_date", "total_marks").
		Values(assignment.CourseID, assignment.Title, assignment.Description,
			assignment.DueDate, assignment.TotalMarks).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create assignment query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting assignment")
		return fmt.Errorf("error inserting assignment: %w", err)
	}

	logger.Info().Str("assignmentID", assignment.ID.String()).Msg("Assignment created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *AssignmentRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("assignments").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating assignment %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// HasDependents reports whether submissions or grades reference the
// assignment.
func (r *AssignmentRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var hasDependents bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM submissions WHERE assignment_id = $1)
			OR EXISTS(SELECT 1 FROM grades WHERE assignment_id = $1)`,
		id).Scan(&hasDependents)
	if err != nil {
		return false, fmt.Errorf("error checking assignment dependents: %w", err)
	}
	return hasDependents, nil
}

// Delete removes an assignment.
func (r *AssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewPreconditionFailedError(
				"Cannot delete this assignment because submissions or grades reference it. Please remove them first.")
		}
		return fmt.Errorf("error deleting assignment %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	logger.Info().Str("assignmentID", id.String()).Msg("Assignment deleted")
	return nil
}
