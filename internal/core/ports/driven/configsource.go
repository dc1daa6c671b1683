package driven

// ConfigSource discovers project-level configuration for a working
// directory. Implementations search the file system; tests provide
// in-memory fakes.
type ConfigSource interface {
	// Load returns the raw configuration object found for cwd, or nil
	// when no source applies. Read and parse failures are treated as
	// "source absent" and must not be returned as errors.
	Load(cwd string) map[string]any
}
