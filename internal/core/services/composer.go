package services

import (
	"regexp"
	"strings"

	"github.com/nisar1406/commitmoji/internal/core/domain"
	"github.com/nisar1406/commitmoji/internal/core/ports/driving"
)

// Ensure Composer implements the interface.
var _ driving.ComposerService = (*Composer)(nil)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	issueRE      = regexp.MustCompile(`#\d+`)
)

// truncationIndicator marks a head line shortened to fit the terminal.
const truncationIndicator = "…"

// Composer renders answers into the final commit message. Format is a
// pure function of its inputs; the terminal width is injected rather
// than read from the environment.
type Composer struct{}

// NewComposer creates a composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Format assembles head, body and footer into one message. Empty
// segments are omitted; segments are separated by blank lines.
func (c *Composer) Format(answers domain.Answers, cfg domain.Config, width int) string {
	segments := make([]string, 0, 3)

	if head := c.head(answers, cfg, width); head != "" {
		segments = append(segments, head)
	}
	if body := wrap(answers.Body, width); body != "" {
		segments = append(segments, body)
	}
	if footer := footer(answers.Issues); footer != "" {
		segments = append(segments, footer)
	}

	return strings.TrimRight(strings.Join(segments, "\n\n"), " \t\n")
}

// head substitutes the answers into the configured template and bounds
// the result to the terminal width.
func (c *Composer) head(answers domain.Answers, cfg domain.Config, width int) string {
	tmpl := cfg.DefaultFormat
	if answers.Gitmoji.Value != "" {
		tmpl = cfg.FormatWithEmoji
	}

	scope := strings.TrimSpace(answers.Scope)
	if scope != "" {
		scope = "(" + scope + ")"
	}

	head := strings.NewReplacer(
		"{type}", answers.Type,
		"{scope}", scope,
		"{emoji}", answers.Gitmoji.Value,
		"{subject}", strings.TrimSpace(answers.Subject),
	).Replace(tmpl)

	// Empty substitutions leave double spaces behind; collapse them.
	head = strings.TrimSpace(whitespaceRE.ReplaceAllString(head, " "))

	return truncate(head, width)
}

// truncate shortens s to at most width characters, ending in the
// truncation indicator when cut. A non-positive width disables
// truncation.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return truncationIndicator
	}
	return string(runes[:width-1]) + truncationIndicator
}

// wrap word-wraps text to the given width, preserving explicit line
// breaks. A non-positive width leaves lines untouched.
func wrap(text string, width int) string {
	text = strings.TrimRight(text, " \t\n")
	if text == "" {
		return ""
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if width <= 0 || len([]rune(line)) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine breaks one line into word-wrapped lines of at most width
// characters. A single word longer than the width stays on its own line.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

// footer extracts issue references like #12 from free text and joins
// them as "Closes #12, closes #7". No references yields an empty footer.
func footer(issues string) string {
	refs := issueRE.FindAllString(issues, -1)
	if len(refs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Closes ")
	b.WriteString(refs[0])
	for _, ref := range refs[1:] {
		b.WriteString(", closes ")
		b.WriteString(ref)
	}
	return b.String()
}
