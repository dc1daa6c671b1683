package services

import (
	"context"
	"strings"

	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
	"github.com/nisar1406/commitmoji/internal/core/ports/driving"
	"github.com/nisar1406/commitmoji/internal/logger"
)

// Ensure ScopeHistory implements the interface.
var _ driving.ScopeHistoryService = (*ScopeHistory)(nil)

// suggestionLimit bounds how many recent scopes are offered.
const suggestionLimit = 5

// ScopeHistory records answered scopes and suggests them on later runs.
// The store is optional; without it the service is a no-op.
type ScopeHistory struct {
	store driven.ScopeStore
}

// NewScopeHistory creates a scope history service. store may be nil.
func NewScopeHistory(store driven.ScopeStore) *ScopeHistory {
	return &ScopeHistory{store: store}
}

// Record notes that a scope was used. Empty scopes are ignored and
// storage failures are logged, never surfaced.
func (h *ScopeHistory) Record(ctx context.Context, scope string) {
	scope = strings.TrimSpace(scope)
	if h.store == nil || scope == "" {
		return
	}
	if err := h.store.Touch(ctx, scope); err != nil {
		logger.Warn("history: recording scope %q: %v", scope, err)
	}
}

// Suggestions returns recently used scopes, most recent first.
func (h *ScopeHistory) Suggestions(ctx context.Context) []string {
	if h.store == nil {
		return nil
	}
	scopes, err := h.store.Recent(ctx, suggestionLimit)
	if err != nil {
		logger.Warn("history: loading recent scopes: %v", err)
		return nil
	}
	return scopes
}
