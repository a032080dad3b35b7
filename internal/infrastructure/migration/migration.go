package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the migrations in the order they run.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_resume_documents", Up: createResumeDocuments},
		{Name: "add_updated_at_index_to_resume_documents", Up: addUpdatedAtIndex},
	}
}

// createResumeDocuments creates the slot table PostgresStore writes to.
func createResumeDocuments(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resume_documents (
			slot TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}
	slog.Info("Ensured resume_documents table")
	return nil
}

func addUpdatedAtIndex(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS resume_documents_updated_at_idx
		ON resume_documents (updated_at);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the index is not needed for correctness
		slog.Warn("Error creating updated_at index (may already exist)", "error", err)
		return nil
	}
	return nil
}
