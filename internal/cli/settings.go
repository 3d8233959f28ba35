package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awsl-project/entrainde/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show or change settings.yaml",
	Args:    cobra.NoArgs,
	RunE:    runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and write settings.yaml.

Keys: store.dsn, tray.click_policy (debounce|toggle),
tray.anchor (auto|top-right|bottom-right|top-left|bottom-left),
window.start_hidden (true|false), log.file.

The desktop app reads settings at startup; restart it to apply changes.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func loadSettingsFile() (*config.Settings, error) {
	dataDir := config.ResolveDataDir(flagDataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return config.LoadFile(dataDir)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettingsFile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range config.Keys {
		value, err := s.Get(key)
		if err != nil {
			return err
		}
		if value == "" {
			value = styleHint.Render("(empty)")
		}
		fmt.Fprintf(out, "%-20s %s\n", styleLabel.Render(key), value)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	s, err := loadSettingsFile()
	if err != nil {
		return err
	}
	if err := s.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", styleSuccess.Render("Saved"), args[0], args[1])
	return nil
}
