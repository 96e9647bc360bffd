package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// ListParams carries normalized list parameters into a repository. Page
// and limit are clamped by the repository before building SQL.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Sort   string
	Order  string
}

// queryListAndCount executes the page query and its COUNT(*) twin
// concurrently and reports the total row count. The two statements are
// independent reads, so no ordering between them is required. collect is
// invoked once per row of the page query, always from a single
// goroutine.
func queryListAndCount(ctx context.Context, db *pgxpool.Pool, listQ, countQ squirrel.SelectBuilder, collect func(pgx.Rows) error) (int64, error) {
	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build list query: %w", err)
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := db.Query(gctx, listSQL, listArgs...)
		if err != nil {
			return fmt.Errorf("failed to execute list query: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			if err := collect(rows); err != nil {
				return fmt.Errorf("failed to scan row: %w", err)
			}
		}
		return rows.Err()
	})

	g.Go(func() error {
		if err := db.QueryRow(gctx, countSQL, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("failed to execute count query: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return total, nil
}

// resolveDisplayName applies the display-name -> "first last" fallback
// chain for a joined person row. All three columns are nullable because
// the join may miss.
func resolveDisplayName(displayName, firstName, lastName sql.NullString) *string {
	if displayName.Valid && displayName.String != "" {
		return &displayName.String
	}
	if firstName.Valid && lastName.Valid {
		name := firstName.String + " " + lastName.String
		return &name
	}
	return nil
}

// ilikeAny builds a case-insensitive substring match OR-ed across the
// given columns.
func ilikeAny(search string, columns ...string) squirrel.Or {
	pattern := "%" + search + "%"
	or := make(squirrel.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, squirrel.ILike{col: pattern})
	}
	return or
}
