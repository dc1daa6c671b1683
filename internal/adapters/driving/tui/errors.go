package tui

import "errors"

// ErrMissingQuestionService is returned when the question service is not provided.
var ErrMissingQuestionService = errors.New("tui: question service is required")

// ErrMissingComposerService is returned when the composer service is not provided.
var ErrMissingComposerService = errors.New("tui: composer service is required")
