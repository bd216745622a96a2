package migration

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Run executes all migrations on startup. Only needed for the Postgres
// backend; the Redis backend has no schema.
func Run(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	migrations := []Migration{
		{Name: "create_cv_documents", Up: createDocumentsTable},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		log.Debug("migration completed", zap.String("name", m.Name))
	}
	return nil
}

func createDocumentsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS cv_documents (
			id TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}
