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
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// SubmissionRepository handles submission database operations
type SubmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// SubmissionListParams extends the common list parameters with optional
// assignment and student filters.
type SubmissionListParams struct {
	ListParams
	AssignmentID *uuid.UUID
	StudentID    *uuid.UUID
}

var submissionColumns = []string{
	"sub.id", "sub.assignment_id", "sub.student_id", "sub.status",
	"sub.submitted_at", "sub.is_late", "sub.created_at", "sub.updated_at",
	"s.display_name", "s.first_name", "s.last_name",
	"a.title",
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var submission models.Submission
	var displayName, firstName, lastName sql.NullString
	var assignmentTitle sql.NullString

	err := row.Scan(
		&submission.ID, &submission.AssignmentID, &submission.StudentID,
		&submission.Status, &submission.SubmittedAt, &submission.IsLate,
		&submission.CreatedAt, &submission.UpdatedAt,
		&displayName, &firstName, &lastName,
		&assignmentTitle,
	)
	if err != nil {
		return nil, err
	}

	submission.StudentName = resolveDisplayName(displayName, firstName, lastName)
	submission.AssignmentTitle = helpers.StringPtr(assignmentTitle)
	return &submission, nil
}

func mapSubmissionSortColumn(field string) string {
	switch field {
	case "status":
		return "sub.status"
	case "submittedAt", "submitted_at":
		return "sub.submitted_at"
	default:
		return "sub.created_at"
	}
}

// List retrieves a page of submissions with resolved student names and
// assignment titles. Search matches the status label.
func (r *SubmissionRepository) List(ctx context.Context, params SubmissionListParams) ([]models.Submission, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(submissionColumns...).
		From("submissions sub").
		LeftJoin("students s ON sub.student_id = s.id").
		LeftJoin("assignments a ON sub.assignment_id = a.id")
	countQ := r.sb.Select("COUNT(*)").From("submissions sub")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "sub.status::text")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}
	if params.AssignmentID != nil {
		listQ = listQ.Where(squirrel.Eq{"sub.assignment_id": *params.AssignmentID})
		countQ = countQ.Where(squirrel.Eq{"sub.assignment_id": *params.AssignmentID})
	}
	if params.StudentID != nil {
		listQ = listQ.Where(squirrel.Eq{"sub.student_id": *params.StudentID})
		countQ = countQ.Where(squirrel.Eq{"sub.student_id": *params.StudentID})
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapSubmissionSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	submissions := []models.Submission{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		submission, err := scanSubmission(rows)
		if err != nil {
			return err
		}
		submissions = append(submissions, *submission)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing submissions")
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, total, nil
}

// GetByID retrieves a submission with resolved names.
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	query, args, err := r.sb.Select(submissionColumns...).
		From("submissions sub").
		LeftJoin("students s ON sub.student_id = s.id").
		LeftJoin("assignments a ON sub.assignment_id = a.id").
		Where(squirrel.Eq{"sub.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get submission query: %w", err)
	}

	submission, err := scanSubmission(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error querying submission %s: %w", id, err)
	}

	return submission, nil
}

// Create inserts a new submission.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	query, args, err := r.sb.Insert("submissions").
		Columns("assignment_id", "student_id", "status", "submitted_at", "is_late").
		Values(submission.AssignmentID, submission.StudentID, submission.Status,
			submission.SubmittedAt, submission.IsLate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create submission query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&submission.ID, &submission.CreatedAt, &submission.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting submission")
		return fmt.Errorf("error inserting submission: %w", err)
	}

	logger.Info().Str("submissionID", submission.ID.String()).Msg("Submission created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *SubmissionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("submissions").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update submission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating submission %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}

	return nil
}

// Delete removes a submission.
func (r *SubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("submissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete submission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting submission %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}

	logger.Info().Str("submissionID", id.String()).Msg("Submission deleted")
	return nil
}
