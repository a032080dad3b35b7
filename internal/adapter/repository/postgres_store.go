package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// PostgresStore keeps slots in the resume_documents table created by the
// migration package.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var payload string
	err := s.pool.QueryRow(ctx, `SELECT payload FROM resume_documents WHERE slot = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "select resume slot")
	}
	return payload, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, val string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO resume_documents (slot, payload, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		key, val, time.Now().UTC())
	return errors.Wrap(err, "upsert resume slot")
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM resume_documents WHERE slot = $1`, key)
	return errors.Wrap(err, "delete resume slot")
}
