package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubScopeStore struct {
	touched []string
	recent  []string
	err     error
}

func (s *stubScopeStore) Touch(ctx context.Context, scope string) error {
	if s.err != nil {
		return s.err
	}
	s.touched = append(s.touched, scope)
	return nil
}

func (s *stubScopeStore) Recent(ctx context.Context, limit int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

func TestScopeHistory_Record(t *testing.T) {
	store := &stubScopeStore{}
	h := NewScopeHistory(store)

	h.Record(context.Background(), "auth")
	h.Record(context.Background(), "  api  ")

	assert.Equal(t, []string{"auth", "api"}, store.touched)
}

func TestScopeHistory_RecordIgnoresEmptyScope(t *testing.T) {
	store := &stubScopeStore{}
	h := NewScopeHistory(store)

	h.Record(context.Background(), "")
	h.Record(context.Background(), "   ")

	assert.Empty(t, store.touched)
}

func TestScopeHistory_RecordSwallowsStoreErrors(t *testing.T) {
	store := &stubScopeStore{err: errors.New("disk full")}
	h := NewScopeHistory(store)

	assert.NotPanics(t, func() {
		h.Record(context.Background(), "auth")
	})
}

func TestScopeHistory_NilStoreIsNoOp(t *testing.T) {
	h := NewScopeHistory(nil)

	h.Record(context.Background(), "auth")

	assert.Nil(t, h.Suggestions(context.Background()))
}

func TestScopeHistory_Suggestions(t *testing.T) {
	store := &stubScopeStore{recent: []string{"auth", "api", "ui"}}
	h := NewScopeHistory(store)

	assert.Equal(t, []string{"auth", "api", "ui"}, h.Suggestions(context.Background()))
}

func TestScopeHistory_SuggestionsOnStoreError(t *testing.T) {
	store := &stubScopeStore{err: errors.New("closed")}
	h := NewScopeHistory(store)

	assert.Nil(t, h.Suggestions(context.Background()))
}
