package engine

import (
	"fmt"
	"os"
	"strings"
)

// FileResult is the outcome of processing a single file.
type FileResult struct {
	Path     string
	Modified bool
	// Wrapped is the number of guard pairs inserted into this file.
	Wrapped int
}

// ProcessFile runs the full read → classify → transform → write cycle for
// one file. The file is rewritten only when the transformed content differs
// from the original; an unchanged file is never touched.
//
// When dryRun is set no write occurs; Modified reports whether a write
// would have happened.
func ProcessFile(path string, rules Rules, dryRun bool) (FileResult, error) {
	res := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", path, err)
	}

	original := string(data)
	// Split on the file's own line ending so inserted guard lines match it;
	// a CRLF file must not come back with mixed endings.
	newline := "\n"
	if strings.Contains(original, "\r\n") {
		newline = "\r\n"
	}
	lines := strings.Split(original, newline)
	res.Wrapped = CountUnwrapped(lines, rules)
	if res.Wrapped == 0 {
		return res, nil
	}

	transformed := strings.Join(Transform(lines, rules), newline)
	if transformed == original {
		return res, nil
	}

	res.Modified = true
	if dryRun {
		return res, nil
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(transformed), mode); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return res, nil
}
