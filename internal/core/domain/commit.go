package domain

// CommitType is a categorical tag describing the nature of a change,
// e.g. "feature" or "fix".
type CommitType struct {
	// Name is the unique, stable identifier used in the head line.
	Name string `json:"name"`

	// Description is a short human-readable explanation.
	Description string `json:"description"`

	// Code is the display tag shown alongside the name.
	Code string `json:"code"`
}

// EmojiEntry is a single gitmoji catalog entry.
type EmojiEntry struct {
	// Name is the human-readable identifier, e.g. "sparkles".
	Name string `json:"name"`

	// Code is the canonical token substituted into the message,
	// e.g. ":sparkles:".
	Code string `json:"code"`

	// Emoji is the display glyph.
	Emoji string `json:"emoji"`

	// Description explains when to use this emoji.
	Description string `json:"description"`
}

// Gitmoji is the emoji portion of a set of answers. Value holds the
// canonical code (empty when the user picked none) and Name the catalog
// entry's name.
type Gitmoji struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// Answers holds everything the user answered during one questionnaire
// run. It exists only for the duration of one invocation and is consumed
// exactly once by the composer.
type Answers struct {
	// Type is the chosen CommitType name.
	Type string `json:"type"`

	// Scope is the affected area, possibly empty.
	Scope string `json:"scope"`

	// Gitmoji is the chosen emoji, or a zero value when skipped.
	Gitmoji Gitmoji `json:"gitmoji"`

	// Subject is the head-line summary, length-constrained at the prompt.
	Subject string `json:"subject"`

	// Body is the optional long description.
	Body string `json:"body"`

	// Issues is free text later mined for issue references.
	Issues string `json:"issues"`
}
