package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
)

// scopeStore implements driven.ScopeStore.
type scopeStore struct {
	store *Store
}

var _ driven.ScopeStore = (*scopeStore)(nil)

// Touch records a use of the given scope at the current time, creating
// it if needed.
func (s *scopeStore) Touch(ctx context.Context, scope string) error {
	now := time.Now().UTC()

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO scopes (name, uses, last_used)
		VALUES (?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			uses = uses + 1,
			last_used = excluded.last_used
	`, scope, now)

	if err != nil {
		return fmt.Errorf("recording scope: %w", err)
	}
	return nil
}

// Recent returns up to limit scopes ordered by most recent use.
func (s *scopeStore) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name FROM scopes
		ORDER BY last_used DESC, uses DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent scopes: %w", err)
	}
	defer rows.Close()

	var scopes []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning scope: %w", err)
		}
		scopes = append(scopes, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scopes: %w", err)
	}

	return scopes, nil
}
