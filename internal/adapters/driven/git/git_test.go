package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisar1406/commitmoji/internal/core/domain"
)

func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	run(t, dir, "init")
	run(t, dir, "config", "user.email", "test@example.com")
	run(t, dir, "config", "user.name", "Test")
	return dir
}

func run(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
}

func stageFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	run(t, dir, "add", name)
}

func TestCommitter_HasStagedChanges(t *testing.T) {
	dir := initRepo(t)
	c := NewCommitter(dir)
	ctx := context.Background()

	staged, err := c.HasStagedChanges(ctx)
	require.NoError(t, err)
	assert.False(t, staged)

	stageFile(t, dir, "a.txt", "hello")

	staged, err = c.HasStagedChanges(ctx)
	require.NoError(t, err)
	assert.True(t, staged)
}

func TestCommitter_Commit(t *testing.T) {
	dir := initRepo(t)
	c := NewCommitter(dir)
	ctx := context.Background()

	stageFile(t, dir, "a.txt", "hello")

	err := c.Commit(ctx, "fix(api): handle nil\n\nCloses #1")
	require.NoError(t, err)

	cmd := exec.Command("git", "log", "-1", "--pretty=%B")
	cmd.Dir = dir
	output, err := cmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "fix(api): handle nil")
	assert.Contains(t, string(output), "Closes #1")
}

func TestCommitter_CommitNothingStaged(t *testing.T) {
	dir := initRepo(t)
	c := NewCommitter(dir)

	err := c.Commit(context.Background(), "fix: x")
	assert.ErrorIs(t, err, domain.ErrNothingToCommit)
}

func TestCommitter_OutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	c := NewCommitter(t.TempDir())

	_, err := c.HasStagedChanges(context.Background())
	assert.Error(t, err)
}
