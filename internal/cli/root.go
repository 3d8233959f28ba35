// Package cli implements the entrainde command line, a headless view of the
// same task store the desktop app uses.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awsl-project/entrainde/internal/config"
	"github.com/awsl-project/entrainde/internal/repository"
	"github.com/awsl-project/entrainde/internal/repository/cached"
)

var (
	flagDataDir string
	flagDSN     string
)

var rootCmd = &cobra.Command{
	Use:   "entrainde",
	Short: "Track what you worked on today",
	Long: `Entrainde records the tasks you work on during the day. The desktop app
lives in the system tray; this command reads and edits the same store.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "data directory (default: ~/.config/entrainde)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "database DSN, overrides store.dsn")

	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore loads settings and the task store selected by them.
func openStore() (*cached.TaskStore, error) {
	dataDir := config.ResolveDataDir(flagDataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	settings, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	if flagDSN != "" {
		settings.Store.DSN = flagDSN
	}

	repo, err := repository.Open(settings.Store.DSN, settings.TasksPath())
	if err != nil {
		return nil, err
	}
	store := cached.NewTaskStore(repo)
	if err := store.Load(); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
