// Package cli provides the command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui"
	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/messages"
	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
	"github.com/nisar1406/commitmoji/internal/core/ports/driving"
	"github.com/nisar1406/commitmoji/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

// Services aggregates everything the CLI drives. It is injected by the
// composition root before Execute is called.
type Services struct {
	Config    driving.ConfigService
	Questions driving.QuestionService
	Composer  driving.ComposerService
	History   driving.ScopeHistoryService
	Committer driven.Committer
}

// svcs holds the injected services.
var svcs *Services

// SetServices injects the services the commands run against.
func SetServices(s *Services) {
	svcs = s
}

// ErrNoServices is returned when a command runs before SetServices.
var ErrNoServices = errors.New("cli: services not configured")

var (
	flagVerbose bool
	flagDryRun  bool
)

// rootCmd is the base command; running it without a subcommand starts
// the interactive commit wizard.
var rootCmd = &cobra.Command{
	Use:   "commitmoji",
	Short: "Compose commit messages with types, scopes and gitmoji",
	Long: `Commitmoji walks you through a short interactive wizard and assembles
a conventional, emoji-annotated commit message:

  feature(auth): :sparkles: add login

Configuration is read from the nearest package.json (config.commitmoji),
a .czrc file, and ~/.commitmoji/config.toml, layered over built-in
defaults.`,
	SilenceUsage: true,
	RunE:         runWizard,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "assemble the message without offering to commit")
}

// Execute runs the root command.
func Execute() error {
	cobra.OnInitialize(func() {
		logger.SetVerbose(flagVerbose)
	})
	return rootCmd.Execute()
}

func runWizard(cmd *cobra.Command, _ []string) error {
	if svcs == nil {
		return ErrNoServices
	}
	logger.SetVerbose(flagVerbose)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg := svcs.Config.Resolve(cwd)

	ports := tui.NewPorts(svcs.Questions, svcs.Composer)
	ports.History = svcs.History
	ports.Committer = svcs.Committer

	app, err := tui.NewApp(ports, cfg)
	if err != nil {
		return err
	}
	app.WithContext(cmd.Context()).WithDryRun(flagDryRun)

	finalModel, err := tea.NewProgram(app).Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	final, ok := finalModel.(*tui.App)
	if !ok {
		return nil
	}
	if final.Cancelled() {
		logger.Debug("wizard cancelled")
		return nil
	}
	if err := final.Err(); err != nil {
		return err
	}
	if final.Action() == messages.ActionPrint {
		cmd.Println(final.Message())
	}
	return nil
}
