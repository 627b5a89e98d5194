package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hush/internal/config"
	"hush/internal/storage"
	"hush/internal/terminal"
)

var infoCmd = &cobra.Command{
	Use:   "info [root]",
	Short: "Show the effective configuration and recent runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(argRoot(args))
		if err != nil {
			return err
		}

		terminal.Header("Configuration")
		terminal.Detail("Root", cfg.Root)
		terminal.Detail("Extensions", strings.Join(cfg.Extensions, ", "))
		terminal.Detail("Marker", cfg.Rules.Marker)
		terminal.Detail("Guards", cfg.Rules.GuardOpen+" … "+cfg.Rules.GuardClose)
		terminal.Detail("Exemptions", strings.Join(cfg.Rules.Exemptions, ", "))
		terminal.Detail("Window", fmt.Sprintf("%d lines", cfg.Rules.Window))

		printRecentRuns(5)
		return nil
	},
}

func printRecentRuns(n int) {
	dir, err := config.HushDir()
	if err != nil {
		return
	}
	records, err := storage.NewHistoryStore(dir).Recent(n)
	if err != nil || len(records) == 0 {
		return
	}

	terminal.Header("Recent runs")
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		mode := "wrap"
		if rec.DryRun {
			mode = "scan"
		}
		terminal.Detail(
			rec.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%s %s: %d scanned, %d modified, %d failed", mode, rec.Root, rec.Scanned, rec.Modified, rec.Failed),
		)
	}
}
