package driving

import "github.com/nisar1406/commitmoji/internal/core/domain"

// ComposerService renders answers into a commit message.
type ComposerService interface {
	// Format assembles the final message from answers and configuration.
	// width is the terminal column count used for head truncation and
	// body wrapping; it is passed explicitly so the composer stays pure.
	Format(answers domain.Answers, cfg domain.Config, width int) string
}
