package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"hush/internal/config"
	"hush/internal/engine"
)

// wrapTreeInput is the input for the wrap_tree tool.
type wrapTreeInput struct {
	Root       string   `json:"root" jsonschema:"description=Directory to scan. Defaults to the current working directory."`
	Extensions []string `json:"extensions,omitempty" jsonschema:"description=Source file extensions to process e.g. [\".swift\"]. Defaults to the configured extensions."`
	DryRun     bool     `json:"dry_run,omitempty" jsonschema:"description=Report what would change without writing any file."`
}

// scanTreeInput is the input for the scan_tree tool.
type scanTreeInput struct {
	Root       string   `json:"root" jsonschema:"description=Directory to scan. Defaults to the current working directory."`
	Extensions []string `json:"extensions,omitempty" jsonschema:"description=Source file extensions to process e.g. [\".swift\"]."`
}

type textOutput struct {
	Message string `json:"message"`
}

func handleWrapTree(ctx context.Context, req *mcp.CallToolRequest, input wrapTreeInput) (*mcp.CallToolResult, textOutput, error) {
	report, err := runBatch(ctx, input.Root, input.Extensions, input.DryRun)
	if err != nil {
		return nil, textOutput{}, err
	}
	return nil, textOutput{Message: formatReport(report)}, nil
}

func handleScanTree(ctx context.Context, req *mcp.CallToolRequest, input scanTreeInput) (*mcp.CallToolResult, textOutput, error) {
	report, err := runBatch(ctx, input.Root, input.Extensions, true)
	if err != nil {
		return nil, textOutput{}, err
	}
	return nil, textOutput{Message: formatReport(report)}, nil
}

func runBatch(ctx context.Context, root string, exts []string, dryRun bool) (*engine.Report, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if len(exts) > 0 {
		cfg.Extensions = exts
	}
	return engine.Run(ctx, cfg.Options(dryRun))
}

// formatReport renders a batch report as the tool's text result.
func formatReport(r *engine.Report) string {
	var b strings.Builder

	verb := "Modified"
	if r.DryRun {
		verb = "Would modify"
	}

	if len(r.Modified) == 0 {
		fmt.Fprintf(&b, "Scanned %d files under %s. Nothing to wrap.", r.Scanned, r.Root)
	} else {
		fmt.Fprintf(&b, "Scanned %d files under %s. %s %d files (%d print statements wrapped):\n",
			r.Scanned, r.Root, verb, len(r.Modified), r.WrappedExact)
		for _, path := range r.Modified {
			fmt.Fprintf(&b, "  %s\n", path)
		}
	}

	if len(r.Failed) > 0 {
		fmt.Fprintf(&b, "\n%d files failed:\n", len(r.Failed))
		for _, f := range r.Failed {
			fmt.Fprintf(&b, "  %s: %v\n", f.Path, f.Err)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
