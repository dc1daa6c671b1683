// Package domain defines the core business entities for commitmoji.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CommitType: A categorical tag describing the nature of a change
//   - EmojiEntry: A gitmoji catalog entry
//   - Config: The resolved, merged configuration for one run
//   - Answers: The answers collected from one questionnaire run
//   - Question: A single prompt definition
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
