// Package git provides a Committer implementation that shells out to
// the local git binary.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nisar1406/commitmoji/internal/core/domain"
	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
	"github.com/nisar1406/commitmoji/internal/logger"
)

// Ensure Committer implements the interface.
var _ driven.Committer = (*Committer)(nil)

// Committer runs git commands in a working directory.
type Committer struct {
	dir string
}

// NewCommitter creates a committer operating in dir. An empty dir means
// the process working directory.
func NewCommitter(dir string) *Committer {
	return &Committer{dir: dir}
}

// HasStagedChanges reports whether the index differs from HEAD.
func (c *Committer) HasStagedChanges(ctx context.Context) (bool, error) {
	// Exit status 1 means the index has changes, 0 means it is clean.
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	cmd.Dir = c.dir

	err := cmd.Run()
	if err == nil {
		return false, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("checking staged changes: %w", err)
}

// Commit records a commit with the given message. With nothing staged
// it returns domain.ErrNothingToCommit.
func (c *Committer) Commit(ctx context.Context, message string) error {
	staged, err := c.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		return domain.ErrNothingToCommit
	}

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	cmd.Dir = c.dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git commit failed: %w\noutput: %s", err, strings.TrimSpace(string(output)))
	}
	logger.Debug("git: committed %d bytes of message", len(message))
	return nil
}
