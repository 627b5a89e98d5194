package terminal

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Colors for terminal output.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// colorEnabled is false when stdout is not a terminal, so piped output
// stays free of escape codes.
var colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

// SetColor overrides color detection (e.g. for --quiet or tests).
func SetColor(on bool) {
	colorEnabled = on
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + Reset
}

// Success prints a green check line.
func Success(msg string) {
	fmt.Printf("%s %s\n", paint(Bold+Green, "✓"), msg)
}

// Error prints a red cross line.
func Error(msg string) {
	fmt.Printf("%s %s\n", paint(Bold+Red, "✗"), msg)
}

// Info prints a blue info line.
func Info(msg string) {
	fmt.Printf("%s %s\n", paint(Bold+Blue, "i"), msg)
}

// Warning prints a yellow warning line.
func Warning(msg string) {
	fmt.Printf("%s %s\n", paint(Bold+Yellow, "!"), msg)
}

// Header prints a bold header.
func Header(msg string) {
	fmt.Printf("\n%s\n", paint(Bold, msg))
}

// Detail prints an indented label/value line.
func Detail(label, value string) {
	fmt.Printf("  %s %s\n", paint(Dim, label+":"), value)
}

// Divider prints a horizontal line sized to the terminal, capped at 60.
func Divider() {
	width := 60
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}
	fmt.Println(paint(Dim, strings.Repeat("─", width)))
}

// Banner prints the welcome box with the given version.
func Banner(version string) {
	fmt.Println()
	fmt.Println(paint(Dim, "  ╭─────────────────────────────────╮"))
	fmt.Printf("  %s  %s  %s\n", paint(Dim, "│"), paint(Bold, pad("hush v"+version, 29)), paint(Dim, "│"))
	fmt.Printf("  %s  %s  %s\n", paint(Dim, "│"), pad("Debug print guard for Swift", 29), paint(Dim, "│"))
	fmt.Println(paint(Dim, "  ╰─────────────────────────────────╯"))
	fmt.Println()
}

// pad right-pads s with spaces to width (rune-counted).
func pad(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
