// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigSource: Discovers project-level configuration on disk
//   - ConfigStore: User-level key/value settings
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ScopeStore: Scope usage history. Without it, no scope suggestions.
//   - Committer: Commit execution. Without it, the message is only printed.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
