package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and where progress is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mltply %s (%s)\n", buildVersion(), runtime.Version())
		fmt.Fprintf(out, "store: %s\n", describeTarget(resolveTarget(cmd)))
		return nil
	},
}

// buildVersion prefers the -ldflags value, then the module version recorded
// by go install.
func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
