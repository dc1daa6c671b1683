package driven

import "context"

// Committer executes a commit with an assembled message. The core only
// produces the message string; running the actual version control tool
// is infrastructure.
type Committer interface {
	// HasStagedChanges reports whether there is anything to commit.
	HasStagedChanges(ctx context.Context) (bool, error)

	// Commit records a commit with the given message.
	Commit(ctx context.Context, message string) error
}
