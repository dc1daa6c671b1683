package domain

// QuestionKind identifies how a question is presented.
type QuestionKind int

const (
	// KindSelect is a single-choice prompt with fuzzy search over the
	// option labels.
	KindSelect QuestionKind = iota
	// KindList is a fixed single-choice prompt without search.
	KindList
	// KindInput is a single-line free-text prompt.
	KindInput
	// KindMultiline is a multi-line free-text prompt.
	KindMultiline
)

// String returns the string representation of the question kind.
func (k QuestionKind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindList:
		return "list"
	case KindInput:
		return "input"
	case KindMultiline:
		return "multiline"
	default:
		return "unknown"
	}
}

// Option is a selectable choice within a select or list question.
type Option struct {
	// Label is the rendered choice text.
	Label string

	// Value is what the answer records when this option is chosen.
	// Sentinel options ("[none]", "None") carry an empty value.
	Value string

	// Name is an auxiliary identifier carried into the answer, used by
	// the gitmoji question to fill Gitmoji.Name.
	Name string

	// Extra holds additional text the fuzzy matcher searches besides the
	// label, e.g. an emoji code.
	Extra string
}

// Question is a single prompt definition produced by the question-set
// builder and consumed by the prompt host.
type Question struct {
	// Name keys the question in answers, skip lists and overrides.
	Name string

	// Message is the displayed prompt text.
	Message string

	// Kind selects the presentation.
	Kind QuestionKind

	// Options holds the choices for select and list questions.
	Options []Option

	// MaxLength bounds input length in characters; zero means unbounded.
	MaxLength int
}
