package commands

import (
	"github.com/spf13/cobra"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [root]",
	Short: "Wrap unguarded print statements in #if DEBUG blocks",
	Long:  "Scan the source tree and enclose every unguarded, non-critical print statement in an #if DEBUG / #endif pair. Already-wrapped and exempted statements are left untouched, so the command is safe to re-run.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd.Context(), argRoot(args), false)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Preview which files would change, without writing",
	Long:  "Run the same classification as wrap but write nothing. Reports the files that contain unguarded print statements and how many would be wrapped.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd.Context(), argRoot(args), true)
	},
}
