package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Token names the CLI persists between runs
const (
	TokenSessionID      = "session_id"
	TokenGuestSessionID = "guest_session_id"
	TokenAccessToken    = "access_token"
)

type tokenRow struct {
	Name      string `db:"name"`
	Value     string `db:"value"`
	UpdatedAt int64  `db:"updated_at"`
}

// SaveToken stores a token, replacing the previous value of the same name
func (s *Store) SaveToken(ctx context.Context, name, value string) error {
	query := `
	INSERT INTO tokens (name, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT (name) DO UPDATE SET
	value = excluded.value,
	updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, name, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save token %s: %w", name, err)
	}
	return nil
}

// Token returns a stored token value
func (s *Store) Token(ctx context.Context, name string) (string, error) {
	var t tokenRow
	err := s.db.GetContext(ctx, &t, "SELECT name, value, updated_at FROM tokens WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("token %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token %s: %w", name, err)
	}
	return t.Value, nil
}

// DeleteToken removes a token; deleting a missing token is not an error
func (s *Store) DeleteToken(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM tokens WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete token %s: %w", name, err)
	}
	return nil
}
