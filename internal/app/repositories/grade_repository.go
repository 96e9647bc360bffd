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

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GradeListParams extends the common list parameters with optional
// course and student filters.
type GradeListParams struct {
	ListParams
	CourseID  *uuid.UUID
	StudentID *uuid.UUID
}

var gradeColumns = []string{
	"g.id", "g.course_id", "g.student_id", "g.assignment_id", "g.exam_id",
	"g.marks", "g.letter_grade", "g.graded_at", "g.created_at", "g.updated_at",
	"s.display_name", "s.first_name", "s.last_name",
	"c.name", "c.code",
}

func scanGrade(row pgx.Row) (*models.Grade, error) {
	var grade models.Grade
	var displayName, firstName, lastName sql.NullString
	var courseName, courseCode sql.NullString

	err := row.Scan(
		&grade.ID, &grade.CourseID, &grade.StudentID, &grade.AssignmentID,
		&grade.ExamID, &grade.Marks, &grade.LetterGrade, &grade.GradedAt,
		&grade.CreatedAt, &grade.UpdatedAt,
		&displayName, &firstName, &lastName,
		&courseName, &courseCode,
	)
	if err != nil {
		return nil, err
	}

	grade.StudentName = resolveDisplayName(displayName, firstName, lastName)
	grade.CourseName = helpers.StringPtr(courseName)
	grade.CourseCode = helpers.StringPtr(courseCode)
	return &grade, nil
}

func mapGradeSortColumn(field string) string {
	switch field {
	case "marks":
		return "g.marks"
	case "letterGrade", "letter_grade":
		return "g.letter_grade"
	case "gradedAt", "graded_at":
		return "g.graded_at"
	default:
		return "g.created_at"
	}
}

// List retrieves a page of grades with resolved student and course
// names. Search matches the letter grade.
func (r *GradeRepository) List(ctx context.Context, params GradeListParams) ([]models.Grade, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(gradeColumns...).
		From("grades g").
		LeftJoin("students s ON g.student_id = s.id").
		LeftJoin("courses c ON g.course_id = c.id")
	countQ := r.sb.Select("COUNT(*)").From("grades g")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "g.letter_grade")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}
	if params.CourseID != nil {
		listQ = listQ.Where(squirrel.Eq{"g.course_id": *params.CourseID})
		countQ = countQ.Where(squirrel.Eq{"g.course_id": *params.CourseID})
	}
	if params.StudentID != nil {
		listQ = listQ.Where(squirrel.Eq{"g.student_id": *params.StudentID})
		countQ = countQ.Where(squirrel.Eq{"g.student_id": *params.StudentID})
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapGradeSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	grades := []models.Grade{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		grade, err := scanGrade(rows)
		if err != nil {
			return err
		}
		grades = append(grades, *grade)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing grades")
		return nil, 0, fmt.Errorf("failed to list grades: %w", err)
	}

	return grades, total, nil
}

// GetByID retrieves a grade with resolved names.
func (r *GradeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Grade, error) {
	query, args, err := r.sb.Select(gradeColumns...).
		From("grades g").
		LeftJoin("students s ON g.student_id = s.id").
		LeftJoin("courses c ON g.course_id = c.id").
		Where(squirrel.Eq{"g.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get grade query: %w", err)
	}

	grade, err := scanGrade(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error querying grade %s: %w", id, err)
	}

	return grade, nil
}

// Create inserts a new grade.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query, args, err := r.sb.Insert("grades").
		Columns("course_id", "student_id", "assignment_id", "exam_id",
			"marks", "letter_grade", "graded_at").
		Values(grade.CourseID, grade.StudentID, grade.AssignmentID, grade.ExamID,
			grade.Marks, grade.LetterGrade, grade.GradedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create grade query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting grade")
		return fmt.Errorf("error inserting grade: %w", err)
	}

	logger.Info().Str("gradeID", grade.ID.String()).Str("letterGrade", grade.LetterGrade).Msg("Grade created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *GradeRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("grades").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating grade %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete removes a grade.
func (r *GradeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("grades").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting grade %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	logger.Info().Str("gradeID", id.String()).Msg("Grade deleted")
	return nil
}
