package services

import (
	"fmt"

	"github.com/nisar1406/commitmoji/internal/core/domain"
	"github.com/nisar1406/commitmoji/internal/core/ports/driving"
)

// Ensure QuestionBuilder implements the interface.
var _ driving.QuestionService = (*QuestionBuilder)(nil)

// Default prompt texts, overridable per question via config.
var defaultMessages = map[string]string{
	domain.QuestionType:    "Select the type of change you're committing:",
	domain.QuestionScope:   "Specify a scope:",
	domain.QuestionGitmoji: "Choose a gitmoji:",
	domain.QuestionSubject: "Write a short description:",
	domain.QuestionBody:    "Provide a longer description:",
	domain.QuestionIssues:  "List any issue references (e.g. #123):",
}

// Sentinel labels mapping to an empty answer.
const (
	noneScopeLabel   = "[none]"
	noneGitmojiLabel = "None"
)

// QuestionBuilder produces the ordered prompt sequence for a resolved
// configuration.
type QuestionBuilder struct{}

// NewQuestionBuilder creates a question builder.
func NewQuestionBuilder() *QuestionBuilder {
	return &QuestionBuilder{}
}

// Build returns the question set in fixed order: type, scope, gitmoji,
// subject, body, issues. Questions named in SkipQuestions are omitted;
// type, subject and gitmoji are always present.
func (b *QuestionBuilder) Build(cfg domain.Config) []domain.Question {
	questions := make([]domain.Question, 0, 6)

	questions = append(questions, domain.Question{
		Name:    domain.QuestionType,
		Message: message(cfg, domain.QuestionType),
		Kind:    domain.KindSelect,
		Options: typeOptions(cfg.Types),
	})

	if !cfg.Skips(domain.QuestionScope) {
		questions = append(questions, scopeQuestion(cfg))
	}

	questions = append(questions, domain.Question{
		Name:    domain.QuestionGitmoji,
		Message: message(cfg, domain.QuestionGitmoji),
		Kind:    domain.KindSelect,
		Options: emojiOptions(cfg.Emojis),
	})

	questions = append(questions, domain.Question{
		Name:      domain.QuestionSubject,
		Message:   message(cfg, domain.QuestionSubject),
		Kind:      domain.KindInput,
		MaxLength: cfg.SubjectMaxLength,
	})

	if !cfg.Skips(domain.QuestionBody) {
		questions = append(questions, domain.Question{
			Name:    domain.QuestionBody,
			Message: message(cfg, domain.QuestionBody),
			Kind:    domain.KindMultiline,
		})
	}

	if !cfg.Skips(domain.QuestionIssues) {
		questions = append(questions, domain.Question{
			Name:    domain.QuestionIssues,
			Message: message(cfg, domain.QuestionIssues),
			Kind:    domain.KindInput,
		})
	}

	return questions
}

// message returns the prompt text for a question, replaced verbatim by a
// configured override when present.
func message(cfg domain.Config, name string) string {
	if m, ok := cfg.Questions[name]; ok {
		return m
	}
	return defaultMessages[name]
}

// scopeQuestion builds the scope prompt: a fixed list when scopes are
// configured, free text otherwise.
func scopeQuestion(cfg domain.Config) domain.Question {
	q := domain.Question{
		Name:    domain.QuestionScope,
		Message: message(cfg, domain.QuestionScope),
	}
	if len(cfg.Scopes) == 0 {
		q.Kind = domain.KindInput
		return q
	}

	q.Kind = domain.KindList
	q.Options = make([]domain.Option, 0, len(cfg.Scopes)+1)
	q.Options = append(q.Options, domain.Option{Label: noneScopeLabel, Value: ""})
	for _, s := range cfg.Scopes {
		q.Options = append(q.Options, domain.Option{Label: s, Value: s})
	}
	return q
}

// typeOptions labels each commit type with its name left-padded to the
// longest name in the catalog, followed by its description.
func typeOptions(types []domain.CommitType) []domain.Option {
	width := 0
	for _, t := range types {
		if len(t.Name) > width {
			width = len(t.Name)
		}
	}

	opts := make([]domain.Option, 0, len(types))
	for _, t := range types {
		opts = append(opts, domain.Option{
			Label: fmt.Sprintf("%-*s  %s", width, t.Name, t.Description),
			Value: t.Name,
			Name:  t.Name,
			Extra: t.Code,
		})
	}
	return opts
}

// emojiOptions labels each entry with its code left-padded to the longest
// code, the glyph and the description, preceded by a "None" sentinel.
func emojiOptions(emojis []domain.EmojiEntry) []domain.Option {
	width := 0
	for _, e := range emojis {
		if len(e.Code) > width {
			width = len(e.Code)
		}
	}

	opts := make([]domain.Option, 0, len(emojis)+1)
	opts = append(opts, domain.Option{Label: noneGitmojiLabel, Value: ""})
	for _, e := range emojis {
		opts = append(opts, domain.Option{
			Label: fmt.Sprintf("%-*s  %s  %s", width, e.Code, e.Emoji, e.Description),
			Value: e.Code,
			Name:  e.Name,
			Extra: e.Code,
		})
	}
	return opts
}
