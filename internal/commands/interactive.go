package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/reeflective/readline"
	"github.com/spf13/cobra"

	"hush/internal/terminal"
	"hush/internal/update"
)

// sessionCommands is shown by help inside the interactive session.
var sessionCommands = []struct {
	Name string
	Desc string
}{
	{"wrap [root]", "Wrap unguarded print statements"},
	{"scan [root]", "Preview pending changes without writing"},
	{"info", "Show configuration and recent runs"},
	{"help", "Show available commands"},
	{"quit", "Exit session"},
}

// runInteractive starts the read-eval session used when hush is launched
// with no subcommand.
func runInteractive(cmd *cobra.Command) error {
	terminal.Banner(Version)

	// Check for updates in the background (non-blocking)
	updateCh := make(chan *update.Result, 1)
	go func() {
		updateCh <- update.Check("moasq", "hush", Version)
	}()

	select {
	case res := <-updateCh:
		if res.NeedsUpdate() {
			terminal.Warning(fmt.Sprintf("Update available: v%s → v%s", res.Current, res.Latest))
			fmt.Println()
		}
	case <-time.After(3 * time.Second):
		// Don't block startup if the check is slow
	}

	fmt.Printf("  %sType a command, or help to list them. Runs are always safe to repeat.%s\n\n",
		terminal.Dim, terminal.Reset)

	shell := readline.NewShell()
	shell.Prompt.Primary(func() string { return "hush> " })

	for {
		line, err := shell.Readline()
		if err != nil {
			// Ctrl+C / Ctrl+D end the session.
			fmt.Println()
			return nil
		}

		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "wrap":
			if err := runBatch(cmd.Context(), argRoot(fields[1:]), false); err != nil {
				terminal.Error(err.Error())
			}
		case "scan":
			if err := runBatch(cmd.Context(), argRoot(fields[1:]), true); err != nil {
				terminal.Error(err.Error())
			}
		case "info":
			if err := infoCmd.RunE(cmd, fields[1:]); err != nil {
				terminal.Error(err.Error())
			}
		case "help":
			printSessionHelp()
		case "quit", "exit":
			return nil
		default:
			terminal.Warning(fmt.Sprintf("Unknown command %q. Type help to list commands.", fields[0]))
		}
		fmt.Println()
	}
}

func printSessionHelp() {
	terminal.Header("Commands")
	for _, c := range sessionCommands {
		terminal.Detail(c.Name, c.Desc)
	}
}
