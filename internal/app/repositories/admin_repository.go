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

// AdminRepository handles admin profile database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var adminColumns = []string{
	"id", "user_id", "first_name", "last_name", "display_name", "email",
	"phone", "department", "access_level", "notes", "created_at", "updated_at",
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var admin models.Admin
	err := row.Scan(
		&admin.ID, &admin.UserID, &admin.FirstName, &admin.LastName,
		&admin.DisplayName, &admin.Email, &admin.Phone, &admin.Department,
		&admin.AccessLevel, &admin.Notes, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func mapAdminSortColumn(field string) string {
	switch field {
	case "firstName", "first_name":
		return "first_name"
	case "lastName", "last_name":
		return "last_name"
	case "email":
		return "email"
	default:
		return "created_at"
	}
}

// List retrieves a page of admins plus the total row count.
func (r *AdminRepository) List(ctx context.Context, params ListParams) ([]models.Admin, int64, error) {
	_, limit, offset := helpers.ClampPagination(params.Page, params.Limit)

	listQ := r.sb.Select(adminColumns...).From("admins")
	countQ := r.sb.Select("COUNT(*)").From("admins")

	if params.Search != "" {
		cond := ilikeAny(params.Search, "first_name", "last_name", "email")
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}

	order := helpers.NormalizeOrder(params.Order)
	listQ = listQ.OrderBy(fmt.Sprintf("%s %s", mapAdminSortColumn(params.Sort), order)).
		Limit(uint64(limit)).
		Offset(offset)

	admins := []models.Admin{}
	total, err := queryListAndCount(ctx, r.db, listQ, countQ, func(rows pgx.Rows) error {
		admin, err := scanAdmin(rows)
		if err != nil {
			return err
		}
		admins = append(admins, *admin)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing admins")
		return nil, 0, fmt.Errorf("failed to list admins: %w", err)
	}

	return admins, total, nil
}

// GetByID retrieves an admin by id.
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error querying admin %s: %w", id, err)
	}

	return admin, nil
}

// UserIDExists checks whether another admin profile already references
// the user.
func (r *AdminRepository) UserIDExists(ctx context.Context, userID uuid.UUID, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE user_id = $1 AND id != $2)`,
		userID, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin user uniqueness: %w", err)
	}
	return exists, nil
}

// Create inserts a new admin profile.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query, args, err := r.sb.Insert("admins").
		Columns("user_id", "first_name", "last_name", "display_name", "email",
			"phone", "department", "access_level", "notes").
		Values(admin.UserID, admin.FirstName, admin.LastName, admin.DisplayName,
			admin.Email, admin.Phone, admin.Department, admin.AccessLevel, admin.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("An admin profile for this user already exists")
		}
		logger.Error().Err(err).Msg("Error inserting admin")
		return fmt.Errorf("error inserting admin: %w", err)
	}

	logger.Info().Str("adminID", admin.ID.String()).Msg("Admin created")
	return nil
}

// Update applies a partial patch built by the service layer.
func (r *AdminRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.Update("admins").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admin query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("An admin profile for this user already exists")
		}
		return fmt.Errorf("error updating admin %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// Delete removes an admin profile.
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete("admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admin query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting admin %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	logger.Info().Str("adminID", id.String()).Msg("Admin deleted")
	return nil
}
