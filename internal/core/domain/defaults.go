package domain

// Default head-line templates. Placeholders are literal tokens replaced
// by the composer; each may appear at most once.
const (
	DefaultFormat          = "{type}{scope}: {subject}"
	DefaultFormatWithEmoji = "{type}{scope}: {emoji} {subject}"
)

// DefaultSubjectMaxLength bounds the subject prompt when no override is
// configured.
const DefaultSubjectMaxLength = 75

// DefaultConfig returns the built-in configuration every run starts from.
// Loaded sources replace keys wholesale; unspecified keys keep these
// values.
func DefaultConfig() Config {
	return Config{
		Types:            DefaultTypes(),
		Emojis:           DefaultEmojis(),
		SkipQuestions:    nil,
		Questions:        nil,
		SubjectMaxLength: DefaultSubjectMaxLength,
		DefaultFormat:    DefaultFormat,
		FormatWithEmoji:  DefaultFormatWithEmoji,
	}
}

// DefaultTypes returns the built-in conventional-commit-style type
// catalog.
func DefaultTypes() []CommitType {
	return []CommitType{
		{Name: "feature", Description: "Introducing new features", Code: "feat"},
		{Name: "fix", Description: "Fixing a bug", Code: "fix"},
		{Name: "docs", Description: "Writing docs", Code: "docs"},
		{Name: "style", Description: "Improving structure / format of the code", Code: "style"},
		{Name: "refactor", Description: "Refactoring code", Code: "refactor"},
		{Name: "perf", Description: "Improving performance", Code: "perf"},
		{Name: "test", Description: "Adding tests", Code: "test"},
		{Name: "build", Description: "Changing the build system or dependencies", Code: "build"},
		{Name: "ci", Description: "Updating CI configuration", Code: "ci"},
		{Name: "chore", Description: "Routine maintenance work", Code: "chore"},
		{Name: "revert", Description: "Reverting changes", Code: "revert"},
		{Name: "release", Description: "Creating a release", Code: "release"},
	}
}

// DefaultEmojis returns the built-in gitmoji catalog.
func DefaultEmojis() []EmojiEntry {
	return []EmojiEntry{
		{Name: "sparkles", Code: ":sparkles:", Emoji: "✨", Description: "Introduce new features"},
		{Name: "bug", Code: ":bug:", Emoji: "🐛", Description: "Fix a bug"},
		{Name: "memo", Code: ":memo:", Emoji: "📝", Description: "Add or update documentation"},
		{Name: "art", Code: ":art:", Emoji: "🎨", Description: "Improve structure / format of the code"},
		{Name: "recycle", Code: ":recycle:", Emoji: "♻️", Description: "Refactor code"},
		{Name: "zap", Code: ":zap:", Emoji: "⚡️", Description: "Improve performance"},
		{Name: "white-check-mark", Code: ":white_check_mark:", Emoji: "✅", Description: "Add, update, or pass tests"},
		{Name: "fire", Code: ":fire:", Emoji: "🔥", Description: "Remove code or files"},
		{Name: "lock", Code: ":lock:", Emoji: "🔒", Description: "Fix security issues"},
		{Name: "arrow-up", Code: ":arrow_up:", Emoji: "⬆️", Description: "Upgrade dependencies"},
		{Name: "arrow-down", Code: ":arrow_down:", Emoji: "⬇️", Description: "Downgrade dependencies"},
		{Name: "rocket", Code: ":rocket:", Emoji: "🚀", Description: "Deploy stuff"},
		{Name: "tada", Code: ":tada:", Emoji: "🎉", Description: "Begin a project"},
		{Name: "bookmark", Code: ":bookmark:", Emoji: "🔖", Description: "Release / version tags"},
		{Name: "construction", Code: ":construction:", Emoji: "🚧", Description: "Work in progress"},
		{Name: "wrench", Code: ":wrench:", Emoji: "🔧", Description: "Add or update configuration files"},
		{Name: "hammer", Code: ":hammer:", Emoji: "🔨", Description: "Add or update development scripts"},
		{Name: "rewind", Code: ":rewind:", Emoji: "⏪️", Description: "Revert changes"},
		{Name: "twisted-rightwards-arrows", Code: ":twisted_rightwards_arrows:", Emoji: "🔀", Description: "Merge branches"},
		{Name: "truck", Code: ":truck:", Emoji: "🚚", Description: "Move or rename resources"},
		{Name: "star2", Code: ":star2:", Emoji: "🌟", Description: "Add something shiny"},
		{Name: "ambulance", Code: ":ambulance:", Emoji: "🚑️", Description: "Critical hotfix"},
		{Name: "green-heart", Code: ":green_heart:", Emoji: "💚", Description: "Fix CI build"},
		{Name: "see-no-evil", Code: ":see_no_evil:", Emoji: "🙈", Description: "Add or update a .gitignore file"},
	}
}
