package commands

import (
	"github.com/spf13/cobra"

	"hush/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run the hush MCP server (used by agent tooling)",
	Long:   "Starts the hush MCP server over stdio, exposing wrap_tree and scan_tree as typed tool calls.",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.Run(cmd.Context(), Version)
	},
}
