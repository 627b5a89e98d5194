package commands

import (
	"github.com/spf13/cobra"

	"hush/internal/terminal"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "hush",
	Short:   "Gate debug print statements behind #if DEBUG",
	Long:    "Hush scans a Swift source tree and wraps unguarded print statements in #if DEBUG blocks so production builds stay quiet. Critical messages stay visible, and re-running is always safe.",
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var (
	extFlag   []string
	jobsFlag  int
	quietFlag bool
)

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&extFlag, "ext", nil, "source file extensions to process (default .swift)")
	rootCmd.PersistentFlags().IntVar(&jobsFlag, "jobs", 0, "number of files processed in parallel (default: CPU count)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress per-file output, print only the summary")
	cobra.OnInitialize(func() {
		if quietFlag {
			terminal.SetColor(false)
		}
	})

	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(mcpCmd)
}
