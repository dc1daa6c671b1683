// Package tui provides the interactive commit wizard.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
	"github.com/nisar1406/commitmoji/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Questions builds the prompt sequence for a configuration.
	Questions driving.QuestionService

	// Composer renders answers into the final commit message.
	Composer driving.ComposerService

	// History records and suggests commit scopes. Optional.
	History driving.ScopeHistoryService

	// Committer executes the commit. Optional; without it the commit
	// action is unavailable.
	Committer driven.Committer
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(questions driving.QuestionService, composer driving.ComposerService) *Ports {
	return &Ports{
		Questions: questions,
		Composer:  composer,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Questions == nil {
		return ErrMissingQuestionService
	}
	if p.Composer == nil {
		return ErrMissingComposerService
	}
	return nil
}
