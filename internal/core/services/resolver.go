package services

import (
	"encoding/json"

	"github.com/imdario/mergo"

	"github.com/nisar1406/commitmoji/internal/core/domain"
	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
	"github.com/nisar1406/commitmoji/internal/core/ports/driving"
	"github.com/nisar1406/commitmoji/internal/logger"
)

// Ensure ConfigResolver implements the interface.
var _ driving.ConfigService = (*ConfigResolver)(nil)

// User-store keys applied below project configuration.
const (
	keySubjectMaxLength = "commit.subject_max_length"
	keySkipQuestions    = "commit.skip_questions"
	keyScopes           = "commit.scopes"
)

// ConfigResolver merges built-in defaults, user-level settings and the
// nearest project configuration into one Config.
type ConfigResolver struct {
	source driven.ConfigSource
	store  driven.ConfigStore
}

// NewConfigResolver creates a resolver. Both source and store may be nil;
// a nil layer is simply skipped.
func NewConfigResolver(source driven.ConfigSource, store driven.ConfigStore) *ConfigResolver {
	return &ConfigResolver{source: source, store: store}
}

// Resolve merges all configuration layers for cwd. It never fails:
// unreadable or malformed sources are treated as absent and the defaults
// always apply underneath.
func (r *ConfigResolver) Resolve(cwd string) domain.Config {
	cfg := domain.DefaultConfig()
	r.applyStore(&cfg)

	if r.source == nil {
		return cfg
	}

	loaded := r.source.Load(cwd)
	if len(loaded) == 0 {
		logger.Debug("config: no project configuration for %s, using defaults", cwd)
		return cfg
	}

	overlay := decodeOverlay(loaded)

	// Loaded keys replace defaults wholesale. mergo handles the scalar
	// and slice fields; the questions map is replaced explicitly because
	// mergo would merge it per entry.
	if err := mergo.Merge(&cfg, overlay, mergo.WithOverride); err != nil {
		logger.Warn("config: merging project configuration: %v", err)
	}
	if overlay.Questions != nil {
		cfg.Questions = overlay.Questions
	}

	// Loaded values can be unusable; fall back to defaults for those.
	if cfg.SubjectMaxLength <= 0 {
		cfg.SubjectMaxLength = domain.DefaultSubjectMaxLength
	}
	if len(cfg.Types) == 0 {
		cfg.Types = domain.DefaultTypes()
	}
	if len(cfg.Emojis) == 0 {
		cfg.Emojis = domain.DefaultEmojis()
	}

	return cfg
}

// applyStore layers user-level settings over the defaults. Project
// configuration still wins over these.
func (r *ConfigResolver) applyStore(cfg *domain.Config) {
	if r.store == nil {
		return
	}
	if v := r.store.GetInt(keySubjectMaxLength); v > 0 {
		cfg.SubjectMaxLength = v
	}
	if v := r.store.GetStringSlice(keySkipQuestions); len(v) > 0 {
		cfg.SkipQuestions = v
	}
	if v := r.store.GetStringSlice(keyScopes); len(v) > 0 {
		cfg.Scopes = v
	}
}

// decodeOverlay converts the raw configuration object into a partial
// Config. Unknown keys are ignored; a shape mismatch yields a zero
// overlay, which leaves the defaults untouched.
func decodeOverlay(raw map[string]any) domain.Config {
	var overlay domain.Config
	data, err := json.Marshal(raw)
	if err != nil {
		logger.Warn("config: encoding loaded configuration: %v", err)
		return overlay
	}
	if err := json.Unmarshal(data, &overlay); err != nil {
		logger.Warn("config: decoding loaded configuration: %v", err)
		return domain.Config{}
	}
	return overlay
}
