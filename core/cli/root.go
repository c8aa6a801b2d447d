package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level testprune command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testprune",
		Short: "Interactive duplicate-test removal tool",
		Long: "Testprune extracts same-named test functions from two source files, asks which\n" +
			"pairs are behaviorally equivalent, and removes the confirmed duplicates from the\n" +
			"first file without disturbing its formatting.",
	}

	cmd.Version = version

	return cmd
}
