package commands

import (
	"context"
	"fmt"

	"hush/internal/config"
	"hush/internal/engine"
	"hush/internal/storage"
	"hush/internal/terminal"
)

// loadConfig builds the effective config for root, applying global flags
// on top of .hush.yml and the defaults.
func loadConfig(root string) (*config.Config, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if len(extFlag) > 0 {
		cfg.Extensions = extFlag
	}
	if jobsFlag > 0 {
		cfg.Jobs = jobsFlag
	}
	return cfg, nil
}

// runBatch executes one wrap or scan run and prints the report. Per-file
// I/O failures are reported but never abort the batch; a missing root
// aborts before any file is touched.
func runBatch(ctx context.Context, root string, dryRun bool) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	spinner := terminal.NewSpinner(fmt.Sprintf("Scanning %s", cfg.Root))
	spinner.Start()
	report, err := engine.Run(ctx, cfg.Options(dryRun))
	spinner.Stop()
	if err != nil {
		return err
	}

	printReport(report)
	recordRun(report)
	return nil
}

// printReport writes the per-file confirmation lines and the final
// summary. The summary is always printed, whether or not anything changed.
func printReport(r *engine.Report) {
	if r.Scanned == 0 {
		terminal.Info(fmt.Sprintf("No matching files under %s.", r.Root))
	}

	if !quietFlag {
		for _, path := range r.Modified {
			terminal.Success(path)
		}
		for _, f := range r.Failed {
			terminal.Error(fmt.Sprintf("%s: %v", f.Path, f.Err))
		}
		if len(r.Modified) > 0 || len(r.Failed) > 0 {
			terminal.Divider()
		}
	}

	verb := "Modified"
	if r.DryRun {
		verb = "Would modify"
	}
	summary := fmt.Sprintf("%s %d of %d files (%d unchanged, %d failed)",
		verb, len(r.Modified), r.Scanned, r.Unmodified(), len(r.Failed))
	if len(r.Failed) > 0 {
		terminal.Warning(summary)
	} else {
		terminal.Success(summary)
	}
	if len(r.Modified) > 0 {
		terminal.Detail("Wrapped", fmt.Sprintf("~%d print statements", r.EstimatedWrapped()))
	}
}

// recordRun appends the run to the global history. History is best-effort;
// a failure here never fails the run.
func recordRun(r *engine.Report) {
	dir, err := config.HushDir()
	if err != nil {
		return
	}
	store := storage.NewHistoryStore(dir)
	_ = store.Append(storage.RunRecord{
		Root:     r.Root,
		Scanned:  r.Scanned,
		Modified: len(r.Modified),
		Failed:   len(r.Failed),
		Wrapped:  r.WrappedExact,
		DryRun:   r.DryRun,
	})
}

// argRoot returns the positional root argument, or "" for the default.
func argRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
