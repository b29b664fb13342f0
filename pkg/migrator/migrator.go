package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Up applies all pending goose migrations from files to db and returns the
// versions that were applied, in order.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, files fs.FS) ([]int64, error) {
	provider, err := goose.NewProvider(dialect, db, files)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to up migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

// RunMigrations opens dbURL with the pgx driver and applies all pending
// migrations from files.
func RunMigrations(ctx context.Context, dbURL string, files fs.FS) ([]int64, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Up(ctx, db, goose.DialectPostgres, files)
}
