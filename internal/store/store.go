// Package store provides PostgreSQL persistence for extracted profile drafts.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-extractor/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveDraft stores one extraction result, keyed by the parse run ID. The
// draft and its diagnostics are stored as JSONB documents.
func (s *Store) SaveDraft(ctx context.Context, runID uuid.UUID, sourcePath string, draft *types.ProfileDraft, diag *types.Diagnostics) error {
	draftJSON, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	diagJSON, err := json.Marshal(diag)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnostics: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profile_drafts (run_id, source_path, draft, diagnostics)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (run_id) DO UPDATE SET source_path = $2, draft = $3, diagnostics = $4, created_at = NOW()`,
		runID, sourcePath, draftJSON, diagJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft for %s: %w", sourcePath, err)
	}
	return nil
}

// GetDraft loads a stored draft by run ID. Returns nil when no row exists.
func (s *Store) GetDraft(ctx context.Context, runID uuid.UUID) (*types.ProfileDraft, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT draft FROM profile_drafts WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var draft types.ProfileDraft
	if err := json.Unmarshal(content, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}
