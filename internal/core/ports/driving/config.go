package driving

import "github.com/nisar1406/commitmoji/internal/core/domain"

// ConfigService resolves the configuration for a run.
type ConfigService interface {
	// Resolve merges all configuration sources for the given working
	// directory. It never fails: unreadable or malformed sources fall
	// through to the next source or to the defaults.
	Resolve(cwd string) domain.Config
}
