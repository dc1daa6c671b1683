package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisar1406/commitmoji/internal/core/services"
)

func setTestServices(t *testing.T) {
	t.Helper()
	original := svcs
	SetServices(&Services{
		Config:    services.NewConfigResolver(nil, nil),
		Questions: services.NewQuestionBuilder(),
		Composer:  services.NewComposer(),
	})
	t.Cleanup(func() { svcs = original })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag state survives between executions of package-level commands;
	// reset it so each test starts clean.
	for _, c := range []*cobra.Command{formatCmd, configCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestFormatCmd_Basic(t *testing.T) {
	setTestServices(t)

	out, err := execute(t, "format", "--type", "fix", "--subject", "x", "--width", "80")

	require.NoError(t, err)
	assert.Contains(t, out, "fix: x")
}

func TestFormatCmd_WithScopeAndEmoji(t *testing.T) {
	setTestServices(t)

	out, err := execute(t, "format",
		"--type", "feature",
		"--scope", "auth",
		"--emoji", ":star2:",
		"--subject", "add login",
		"--width", "80",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "feature(auth): :star2: add login")
}

func TestFormatCmd_WithBodyAndIssues(t *testing.T) {
	setTestServices(t)

	out, err := execute(t, "format",
		"--type", "fix",
		"--subject", "x",
		"--body", "details here",
		"--issues", "fixes #12 and #7",
		"--width", "80",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "fix: x\n\ndetails here\n\nCloses #12, closes #7")
}

func TestFormatCmd_RequiresTypeAndSubject(t *testing.T) {
	setTestServices(t)

	_, err := execute(t, "format", "--subject", "x")
	assert.Error(t, err)

	_, err = execute(t, "format", "--type", "fix")
	assert.Error(t, err)
}

func TestFormatCmd_NoServices(t *testing.T) {
	original := svcs
	svcs = nil
	defer func() { svcs = original }()

	_, err := execute(t, "format", "--type", "fix", "--subject", "x")
	assert.ErrorIs(t, err, ErrNoServices)
}
