package services

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nisar1406/commitmoji/internal/core/domain"
)

// optionSource adapts a slice of options to the fuzzy matcher. Matching
// is case-insensitive and considers both the label and the extra search
// text (the emoji code, for gitmoji options).
type optionSource []domain.Option

func (s optionSource) String(i int) string {
	if s[i].Extra == "" {
		return strings.ToLower(s[i].Label)
	}
	return strings.ToLower(s[i].Label + " " + s[i].Extra)
}

func (s optionSource) Len() int { return len(s) }

// Rank orders options by fuzzy similarity to the query, best match
// first. Options that do not match at all are dropped. An empty query
// returns the options unchanged, preserving the catalog order.
func (b *QuestionBuilder) Rank(query string, opts []domain.Option) []domain.Option {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return opts
	}

	matches := fuzzy.FindFrom(query, optionSource(opts))
	ranked := make([]domain.Option, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, opts[m.Index])
	}
	return ranked
}
