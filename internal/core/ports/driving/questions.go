package driving

import "github.com/nisar1406/commitmoji/internal/core/domain"

// QuestionService builds the prompt sequence for a resolved
// configuration.
type QuestionService interface {
	// Build returns the ordered question set, honouring skip rules and
	// per-question text overrides.
	Build(cfg domain.Config) []domain.Question

	// Rank orders options by fuzzy similarity to the query, best match
	// first. An empty query returns the options in their default order.
	Rank(query string, opts []domain.Option) []domain.Option
}
