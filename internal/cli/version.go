package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/awsl-project/entrainde/internal/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", styleBrand.Render(version.Name), styleVersion.Render(version.Version))
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Commit:"), styleValue.Render(version.Commit))
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Built:"), styleValue.Render(version.BuildTime))
		fmt.Fprintf(out, "  %s %s/%s\n", styleLabel.Render("OS/Arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Go:"), runtime.Version())
	},
}
