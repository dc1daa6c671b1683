package domain

// Question names, used for skip lists and per-question text overrides.
const (
	QuestionType    = "type"
	QuestionScope   = "scope"
	QuestionGitmoji = "gitmoji"
	QuestionSubject = "subject"
	QuestionBody    = "body"
	QuestionIssues  = "issues"
)

// NamespaceKey is the configuration-object key under which commitmoji
// settings are nested inside a host project's configuration file.
const NamespaceKey = "commitmoji"

// Config is the merged configuration for one run. It is constructed once
// by the resolver and read-only thereafter.
type Config struct {
	// Types replaces the commit type catalog wholesale when set.
	Types []CommitType `json:"types"`

	// Emojis replaces the emoji catalog wholesale when set.
	Emojis []EmojiEntry `json:"emojis"`

	// Scopes, when non-empty, turns the scope question into a fixed list.
	Scopes []string `json:"scopes"`

	// SkipQuestions names questions to omit. Only scope, body and issues
	// are skippable; type and subject are always asked.
	SkipQuestions []string `json:"skipQuestions"`

	// Questions maps a question name to override prompt text.
	Questions map[string]string `json:"questions"`

	// SubjectMaxLength bounds the subject input, in characters.
	SubjectMaxLength int `json:"subjectMaxLength"`

	// DefaultFormat is the head-line template used without an emoji.
	DefaultFormat string `json:"defaultFormat"`

	// FormatWithEmoji is the head-line template used when an emoji was
	// chosen.
	FormatWithEmoji string `json:"formatWithEmoji"`
}

// Skips reports whether the named question is configured to be skipped.
// Only scope, body and issues are skippable; type, subject and gitmoji
// are always asked, regardless of configuration.
func (c Config) Skips(name string) bool {
	switch name {
	case QuestionScope, QuestionBody, QuestionIssues:
	default:
		return false
	}
	for _, q := range c.SkipQuestions {
		if q == name {
			return true
		}
	}
	return false
}
