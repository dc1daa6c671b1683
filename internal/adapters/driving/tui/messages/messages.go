// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// Answered is sent when a question has been answered.
type Answered struct {
	Name  string
	Value string
}

// WizardCompleted signals all questions have been answered and carries
// the assembled commit message.
type WizardCompleted struct {
	Message string
}

// Action identifies what to do with the assembled message.
type Action int

const (
	// ActionCommit runs the version control tool with the message.
	ActionCommit Action = iota
	// ActionCopy places the message on the system clipboard.
	ActionCopy
	// ActionPrint writes the message to standard output.
	ActionPrint
	// ActionCancel discards the message.
	ActionCancel
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionCommit:
		return "commit"
	case ActionCopy:
		return "copy"
	case ActionPrint:
		return "print"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ActionChosen is sent when the user picks what to do with the message.
type ActionChosen struct {
	Action Action
}

// ActionDone signals that the chosen action has finished.
type ActionDone struct {
	Action Action
	Err    error
}
