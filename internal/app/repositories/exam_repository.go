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

// ExamRepository handles exam database operations
type ExamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ExamListParams extends the common list parameters with an optional
// course filter.
type ExamListParams struct {
	ListParams
	CourseID *uuid.UUID
}

var examColumns = []string{
	"e.id", "e.course_id", "e.exam_type", "e.exam_date", "e.duration",
	"e.total_marks", "e.created_at", "e.updated_at",
	"c.name", "c.code",
}

func scanExam(row pgx.Row) (*models.Exam, error) {
	var exam models.Exam
	var courseName, courseCode sql.NullString

	err := row.Scan(
		&exam.ID, &exam.CourseID, &exam.ExamType, &exam.ExamDate,
		&exam.Duration, &exam.TotalMarks, &exam.CreatedAt, &exam.UpdatedAt,
		&courseName, &courseCode,
	)
	if err != nil {
		return nil, err
	}

	exam.CourseName = helpers.StringPtr(courseName)
	exam.CourseCode = helpers.StringPtr(courseCode)
	return &exam, nil
}

func mapExamSortColumn(field string) string {
	switch field {
	case "examType", "exam_type":
		return "e.exam_type"
	case "examDate", "exam_date":
		return "e.exam_date"
	case "totalMarks", "total_marks":
		return "e.total_marks"
	default:
		return "e.created_at"
	}
}

// List retrieves a page of exams with resolved course names. Search
// matches the exam type.
func (r *ExamRepository) List(ctx context.Context, params ExamListParams) ([]models.Exam, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(examColumns...).
		From("exams e").
		LeftJoin("courses c ON e.course_id = c.id")
	countQ := r.sb.Select("COUNT(*)").From("exams e")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "e.exam_type")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}
	if params.CourseID != nil {
		listQ = listQ.Where(squirrel.Eq{"e.course_id": *params.CourseID})
		countQ = countQ.Where(squirrel.Eq{"e.course_id": *params.CourseID})
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapExamSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	exams := []models.Exam{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		exam, err := scanExam(rows)
		if err != nil {
			return err
		}
		exams = append(exams, *exam)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing exams")
		return nil, 0, fmt.Errorf("failed to list exams: %w", err)
	}

	return exams, total, nil
}

// GetByID retrieves an exam with its resolved course name.
func (r *ExamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Exam, error) {
	query, args, err := r.sb.Select(examColumns...).
		From("exams e").
		LeftJoin("courses c ON e.course_id = c.id").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam query: %w", err)
	}

	exam, err := scanExam(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error querying exam %s: %w", id, err)
	}

	return exam, nil
}

// ExistsByID checks whether an exam row exists.
func (r *ExamRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM exams WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking exam existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new exam.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query, args, err := r.sb.Insert("exams").
		Columns("course_id", "exam_type", "exam_date", "duration", "total_marks").
		Values(exam.CourseID, exam.ExamType, exam.ExamDate, exam.Duration, exam.TotalMarks).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create exam query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&exam.ID, &exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting exam")
		return fmt.Errorf("error inserting exam: %w", err)
	}

	logger.Info().Str("examID", exam.ID.String()).Msg("Exam created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *ExamRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("exams").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update exam query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating exam %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// HasDependents reports whether grades reference the exam.
func (r *ExamRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var hasDependents bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM grades WHERE exam_id = $1)`,
		id).Scan(&hasDependents)
	if err != nil {
		return false, fmt.Errorf("error checking exam dependents: %w", err)
	}
	return hasDependents, nil
}

// Delete removes an exam.
func (r *ExamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("exams").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete exam query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewPreconditionFailedError(
				"Cannot delete this exam because grades reference it. Please remove the related grades first.")
		}
		return fmt.Errorf("error deleting exam %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	logger.Info().Str("examID", id.String()).Msg("Exam deleted")
	return nil
}
