package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "quizapp", version)
		if version != "(devel)" && !semver.IsValid(version) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: build version %q is not a semantic version\n", version)
		}
	},
}
