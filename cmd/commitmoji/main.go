// Command commitmoji is an interactive commit message helper.
package main

import (
	"fmt"
	"os"

	"github.com/nisar1406/commitmoji/internal/adapters/driven/config/file"
	"github.com/nisar1406/commitmoji/internal/adapters/driven/git"
	"github.com/nisar1406/commitmoji/internal/adapters/driven/storage/sqlite"
	"github.com/nisar1406/commitmoji/internal/adapters/driving/cli"
	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
	"github.com/nisar1406/commitmoji/internal/core/services"
	"github.com/nisar1406/commitmoji/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cli.SetVersion(version)

	// User-level settings; the wizard still works without them.
	var configStore driven.ConfigStore
	if store, err := file.NewConfigStore(""); err != nil {
		logger.Warn("user configuration unavailable: %v", err)
	} else {
		configStore = store
	}

	// Scope history; optional as well.
	var scopeStore driven.ScopeStore
	if db, err := sqlite.NewStore(""); err != nil {
		logger.Warn("scope history unavailable: %v", err)
	} else {
		defer db.Close()
		scopeStore = db.ScopeStore()
	}

	cli.SetServices(&cli.Services{
		Config:    services.NewConfigResolver(file.NewProjectSource(), configStore),
		Questions: services.NewQuestionBuilder(),
		Composer:  services.NewComposer(),
		History:   services.NewScopeHistory(scopeStore),
		Committer: git.NewCommitter(""),
	})

	return cli.Execute()
}
