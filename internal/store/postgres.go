package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aravindh/hirelens/internal/types"
)

// PostgresStore persists resume records in a single jsonb-backed table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the resumes table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			file_name TEXT NOT NULL,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure resumes table: %w", err)
	}
	return nil
}

// Insert stores a resume record and returns its ID. Records are immutable
// after insertion; duplicate filenames create additional rows rather than
// overwriting.
func (s *PostgresStore) Insert(ctx context.Context, record types.StoredRecord) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume record: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resumes (file_name, content)
		 VALUES ($1, $2)
		 RETURNING id`,
		record.FileName, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert resume record: %w", err)
	}
	return id, nil
}

// FindByFileName loads the record stored under the normalized filename.
// When duplicates exist, the oldest row wins and the rest are ignored.
func (s *PostgresStore) FindByFileName(ctx context.Context, fileName string) (types.StoredRecord, error) {
	normalized := NormalizeFileName(fileName)

	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM resumes WHERE file_name = $1 ORDER BY created_at ASC LIMIT 1`,
		normalized,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.StoredRecord{}, &NotFoundError{FileName: normalized}
		}
		return types.StoredRecord{}, fmt.Errorf("failed to query resume record: %w", err)
	}

	var record types.StoredRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return types.StoredRecord{}, fmt.Errorf("failed to unmarshal resume record: %w", err)
	}
	return record, nil
}
