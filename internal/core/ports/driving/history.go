package driving

import "context"

// ScopeHistoryService tracks which scopes the user has answered before
// and suggests them on later runs.
type ScopeHistoryService interface {
	// Record notes that a scope was used. Empty scopes are ignored.
	// Storage failures are logged, never surfaced.
	Record(ctx context.Context, scope string)

	// Suggestions returns recently used scopes, most recent first.
	Suggestions(ctx context.Context) []string
}
