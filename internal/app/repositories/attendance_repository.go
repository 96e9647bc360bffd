package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AttendanceListParams extends the common list parameters with optional
// course, student and date filters.
type AttendanceListParams struct {
	ListParams
	CourseID  *uuid.UUID
	StudentID *uuid.UUID
	Date      *time.Time
}

var attendanceColumns = []string{
	"a.id", "a.course_id", "a.student_id", "a.date", "a.status",
	"a.created_at", "a.updated_at",
	"s.display_name", "s.first_name", "s.last_name",
	"c.name", "c.code",
}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var attendance models.Attendance
	var displayName, firstName, lastName sql.NullString
	var courseName, courseCode sql.NullString

	err := row.Scan(
		&attendance.ID, &attendance.CourseID, &attendance.StudentID,
		&attendance.Date, &attendance.Status,
		&attendance.CreatedAt, &attendance.UpdatedAt,
		&displayName, &firstName, &lastName,
		&courseName, &courseCode,
	)
	if err != nil {
		return nil, err
	}

	attendance.StudentName = resolveDisplayName(displayName, firstName, lastName)
	attendance.CourseName = helpers.StringPtr(courseName)
	attendance.CourseCode = helpers.StringPtr(courseCode)
	return &attendance, nil
}

func mapAttendanceSortColumn(field string) string {
	switch field {
	case "date":
		return "a.date"
	case "status":
		return "a.status"
	default:
		return "a.created_at"
	}
}

// List retrieves a page of attendance records with resolved student and
// course names. Search matches the status label.
func (r *AttendanceRepository) List(ctx context.Context, params AttendanceListParams) ([]models.Attendance, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(attendanceColumns...).
		From("attendances a").
		LeftJoin("students s ON a.student_id = s.id").
		LeftJoin("courses c ON a.course_id = c.id")
	countQ := r.sb.Select("COUNT(*)").From("attendances a")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "a.status::text")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}
	if params.CourseID != nil {
		listQ = listQ.Where(squirrel.Eq{"a.course_id": *params.CourseID})
		countQ = countQ.Where(squirrel.Eq{"a.course_id": *params.CourseID})
	}
	if params.StudentID != nil {
		listQ = listQ.Where(squirrel.Eq{"a.student_id": *params.StudentID})
		countQ = countQ.Where(squirrel.Eq{"a.student_id": *params.StudentID})
	}
	if params.Date != nil {
		listQ = listQ.Where(squirrel.Eq{"a.date": *params.Date})
		countQ = countQ.Where(squirrel.Eq{"a.date": *params.Date})
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapAttendanceSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	attendances := []models.Attendance{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return err
		}
		attendances = append(attendances, *attendance)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing attendances")
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}

	return attendances, total, nil
}

// GetByID retrieves an attendance record with resolved names.
func (r *AttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	query, args, err := r.sb.Select(attendanceColumns...).
		From("attendances a").
		LeftJoin("students s ON a.student_id = s.id").
		LeftJoin("courses c ON a.course_id = c.id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get attendance query: %w", err)
	}

	attendance, err := scanAttendance(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error querying attendance %s: %w", id, err)
	}

	return attendance, nil
}

// Create inserts a new attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query, args, err := r.sb.Insert("attendances").
		Columns("course_id", "student_id", "date", "status").
		Values(attendance.CourseID, attendance.StudentID, attendance.Date, attendance.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create attendance query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting attendance")
		return fmt.Errorf("error inserting attendance: %w", err)
	}

	logger.Info().Str("attendanceID", attendance.ID.String()).Msg("Attendance created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *AttendanceRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("attendances").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update attendance query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating attendance %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// Delete removes an attendance record.
func (r *AttendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("attendances").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete attendance query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting attendance %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	logger.Info().Str("attendanceID", id.String()).Msg("Attendance deleted")
	return nil
}
