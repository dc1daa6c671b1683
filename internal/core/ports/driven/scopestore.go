package driven

import "context"

// ScopeStore persists scope usage history across runs.
type ScopeStore interface {
	// Touch records a use of the given scope at the current time,
	// creating it if needed.
	Touch(ctx context.Context, scope string) error

	// Recent returns up to limit scopes ordered by most recent use.
	Recent(ctx context.Context, limit int) ([]string, error)
}
