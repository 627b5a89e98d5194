package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run starts the hush MCP server over stdio. It blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context, version string) error {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "hush",
			Version: version,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "wrap_tree",
		Description: "Wrap unguarded debug print statements under a source root in #if DEBUG / #endif blocks. Idempotent: already-wrapped and exempted (CRITICAL/FATAL) prints are left untouched. Returns the list of modified files and a summary. Example: wrap_tree(root: \"Sources\")",
	}, handleWrapTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_tree",
		Description: "Report which files under a source root contain unguarded debug print statements, without modifying anything. Use before wrap_tree to preview the change set.",
	}, handleScanTree)

	return server.Run(ctx, &mcp.StdioTransport{})
}
