package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nisar1406/commitmoji/internal/core/domain"
)

var (
	flagType    string
	flagScope   string
	flagEmoji   string
	flagSubject string
	flagBody    string
	flagIssues  string
	flagWidth   int
)

// formatCmd assembles a commit message from flags, without the wizard.
var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Assemble a commit message non-interactively",
	Long: `Assemble a commit message from flags using the resolved configuration,
for scripting or editor integrations:

  commitmoji format --type feature --scope auth --emoji :sparkles: --subject "add login"`,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVar(&flagType, "type", "", "commit type name (required)")
	formatCmd.Flags().StringVar(&flagScope, "scope", "", "scope of the change")
	formatCmd.Flags().StringVar(&flagEmoji, "emoji", "", "gitmoji code, e.g. :sparkles:")
	formatCmd.Flags().StringVar(&flagSubject, "subject", "", "short description (required)")
	formatCmd.Flags().StringVar(&flagBody, "body", "", "longer description")
	formatCmd.Flags().StringVar(&flagIssues, "issues", "", "issue references, e.g. \"fixes #12\"")
	formatCmd.Flags().IntVar(&flagWidth, "width", 0, "line width, 0 for terminal width")
	_ = formatCmd.MarkFlagRequired("type")
	_ = formatCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, _ []string) error {
	if svcs == nil {
		return ErrNoServices
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg := svcs.Config.Resolve(cwd)

	answers := domain.Answers{
		Type:    flagType,
		Scope:   flagScope,
		Gitmoji: domain.Gitmoji{Value: flagEmoji},
		Subject: flagSubject,
		Body:    flagBody,
		Issues:  flagIssues,
	}

	width := flagWidth
	if width <= 0 {
		width = terminalWidth()
	}

	cmd.Println(svcs.Composer.Format(answers, cfg, width))
	return nil
}

// terminalWidth reports the current terminal width, falling back to 80
// when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
