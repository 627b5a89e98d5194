package engine

import "strings"

// Class is the per-line classification produced by Classify.
type Class int

const (
	// Plain lines are passed through untouched and never reordered.
	Plain Class = iota
	// Exempt diagnostics match an exemption pattern and must stay visible
	// in production builds.
	Exempt
	// Wrapped diagnostics are already enclosed by a guard pair.
	Wrapped
	// Unwrapped diagnostics need a guard pair inserted around them.
	Unwrapped
)

func (c Class) String() string {
	switch c {
	case Exempt:
		return "exempt"
	case Wrapped:
		return "wrapped"
	case Unwrapped:
		return "unwrapped"
	default:
		return "plain"
	}
}

// Rules holds the immutable classification configuration. Passing it
// explicitly keeps Classify a pure function of its inputs, so distinct
// pattern sets can be tested in isolation.
type Rules struct {
	// Marker is the diagnostic-invocation substring, e.g. "print(".
	Marker string
	// CommentPrefix marks a line-comment; a comment mentioning the marker
	// is Plain, not a diagnostic.
	CommentPrefix string
	// GuardOpen and GuardClose are the conditional-compilation markers
	// that open and close a debug-only block.
	GuardOpen  string
	GuardClose string
	// Exemptions are substrings marking a diagnostic as must-stay-visible.
	Exemptions []string
	// Window bounds the lookback/lookahead scan for existing guards.
	Window int
}

// DefaultWindow is the guard-scan window used when Rules.Window is zero.
const DefaultWindow = 5

func (r Rules) window() int {
	if r.Window > 0 {
		return r.Window
	}
	return DefaultWindow
}

// isDiagnostic reports whether a line is a diagnostic call: it contains the
// marker and, after trimming leading whitespace, does not start as a comment.
func (r Rules) isDiagnostic(line string) bool {
	if !strings.Contains(line, r.Marker) {
		return false
	}
	return !strings.HasPrefix(strings.TrimSpace(line), r.CommentPrefix)
}

// isExempt reports whether a diagnostic line matches any exemption pattern.
func (r Rules) isExempt(line string) bool {
	for _, pat := range r.Exemptions {
		if strings.Contains(line, pat) {
			return true
		}
	}
	return false
}

// Classify decides the class of lines[i] from its bounded local window only.
// It holds no state across invocations, so reprocessing any file is stable
// and independent of the order files are visited in.
func Classify(lines []string, i int, rules Rules) Class {
	line := lines[i]

	if !rules.isDiagnostic(line) {
		return Plain
	}
	if rules.isExempt(line) {
		return Exempt
	}
	if hasGuardBehind(lines, i, rules) && hasGuardAhead(lines, i, rules) {
		return Wrapped
	}
	return Unwrapped
}

// hasGuardBehind scans backward up to the window for an open-guard marker.
// The scan stops at another diagnostic or a close-guard: either means any
// open-guard further back belongs to a different statement.
func hasGuardBehind(lines []string, i int, rules Rules) bool {
	w := rules.window()
	for j := i - 1; j >= 0 && j >= i-w; j-- {
		switch {
		case strings.Contains(lines[j], rules.GuardOpen):
			return true
		case strings.Contains(lines[j], rules.GuardClose):
			return false
		case rules.isDiagnostic(lines[j]):
			return false
		}
	}
	return false
}

// hasGuardAhead scans forward up to the window for a close-guard marker,
// stopping at another diagnostic or an open-guard.
func hasGuardAhead(lines []string, i int, rules Rules) bool {
	w := rules.window()
	for j := i + 1; j < len(lines) && j <= i+w; j++ {
		switch {
		case strings.Contains(lines[j], rules.GuardClose):
			return true
		case strings.Contains(lines[j], rules.GuardOpen):
			return false
		case rules.isDiagnostic(lines[j]):
			return false
		}
	}
	return false
}

// leadingWhitespace returns the run of leading spaces and tabs, copied
// verbatim so inserted guards match the diagnostic's indentation exactly.
func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}
