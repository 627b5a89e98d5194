package engine

// Transform produces a new line sequence with a guard pair inserted around
// every Unwrapped diagnostic. Line content is never mutated, only guard
// lines are inserted, and the relative order of all original lines is
// preserved exactly.
//
// Adjacent diagnostics are wrapped independently; consecutive diagnostics
// are never merged into a single guard pair.
//
// Transform is idempotent: once a diagnostic is enclosed, later runs
// classify it Wrapped and pass it through, so
// Transform(Transform(x)) == Transform(x).
func Transform(lines []string, rules Rules) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if Classify(lines, i, rules) == Unwrapped {
			indent := leadingWhitespace(line)
			out = append(out, indent+rules.GuardOpen, line, indent+rules.GuardClose)
			continue
		}
		out = append(out, line)
	}
	return out
}

// CountUnwrapped returns how many lines Transform would wrap. Used by dry
// runs to report pending work without touching any file.
func CountUnwrapped(lines []string, rules Rules) int {
	n := 0
	for i := range lines {
		if Classify(lines, i, rules) == Unwrapped {
			n++
		}
	}
	return n
}
