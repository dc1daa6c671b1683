package memory

import (
	"context"
	"sync"

	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
)

// Ensure ScopeStore implements the interface.
var _ driven.ScopeStore = (*ScopeStore)(nil)

// ScopeStore is an in-memory implementation of driven.ScopeStore for
// testing. Scopes are kept in most-recently-used order.
type ScopeStore struct {
	mu     sync.Mutex
	scopes []string
}

// NewScopeStore creates a new in-memory scope store.
func NewScopeStore() *ScopeStore {
	return &ScopeStore{}
}

// Touch records a use of the given scope, moving it to the front.
func (s *ScopeStore) Touch(ctx context.Context, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.scopes {
		if existing == scope {
			s.scopes = append(s.scopes[:i], s.scopes[i+1:]...)
			break
		}
	}
	s.scopes = append([]string{scope}, s.scopes...)
	return nil
}

// Recent returns up to limit scopes, most recently used first.
func (s *ScopeStore) Recent(ctx context.Context, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > len(s.scopes) {
		limit = len(s.scopes)
	}
	out := make([]string, limit)
	copy(out, s.scopes[:limit])
	return out, nil
}
