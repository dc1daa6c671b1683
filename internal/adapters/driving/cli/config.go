package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagJSON bool

// configCmd prints the configuration resolved for the current directory.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show the configuration that the wizard would run with in the current
directory, after merging built-in defaults, the user configuration file
and any project configuration.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagJSON, "json", false, "print the full configuration as JSON")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if svcs == nil {
		return ErrNoServices
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg := svcs.Config.Resolve(cwd)

	if flagJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("types:             %d\n", len(cfg.Types))
	cmd.Printf("emojis:            %d\n", len(cfg.Emojis))
	if len(cfg.Scopes) > 0 {
		cmd.Printf("scopes:            %s\n", strings.Join(cfg.Scopes, ", "))
	} else {
		cmd.Println("scopes:            (free text)")
	}
	if len(cfg.SkipQuestions) > 0 {
		cmd.Printf("skip questions:    %s\n", strings.Join(cfg.SkipQuestions, ", "))
	} else {
		cmd.Println("skip questions:    (none)")
	}
	cmd.Printf("subject max:       %d\n", cfg.SubjectMaxLength)
	cmd.Printf("format:            %s\n", cfg.DefaultFormat)
	cmd.Printf("format with emoji: %s\n", cfg.FormatWithEmoji)
	return nil
}
