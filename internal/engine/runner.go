package engine

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FileError records a file that could not be processed. Per-file failures
// are isolated: the batch continues with the remaining files.
type FileError struct {
	Path string
	Err  error
}

// Report aggregates the outcome of a batch run.
type Report struct {
	Root     string
	Scanned  int
	Modified []string    // relative paths of rewritten files, sorted
	Failed   []FileError // files that could not be read or written
	// WrappedExact is the number of guard pairs actually inserted.
	WrappedExact int
	DryRun       bool
}

// Unmodified returns how many scanned files needed no change.
func (r *Report) Unmodified() int {
	return r.Scanned - len(r.Modified) - len(r.Failed)
}

// EstimatedWrapped estimates wrapped statements from the modified-file
// count using an average multiplier, matching the historical report format
// rather than the exact per-file count.
func (r *Report) EstimatedWrapped() int {
	return len(r.Modified) * wrappedPerFileEstimate
}

const wrappedPerFileEstimate = 3

// Options configures a batch run.
type Options struct {
	Root       string
	Extensions []string
	Rules      Rules
	// Jobs bounds the worker pool; 0 means one worker per CPU.
	Jobs   int
	DryRun bool
}

// Run discovers all matching files under opts.Root and processes each one
// through its full read → transform → write cycle. Files are mutually
// independent, so they are handed to a bounded worker pool; each worker
// owns one file exclusively for its whole cycle. A missing root aborts
// before any file is touched; per-file I/O errors are collected in the
// report and never abort the batch.
func Run(ctx context.Context, opts Options) (*Report, error) {
	files, err := Discover(opts.Root, opts.Extensions)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Root:    opts.Root,
		Scanned: len(files),
		DryRun:  opts.DryRun,
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, path := range files {
		path := path
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			res, err := ProcessFile(path, opts.Rules, opts.DryRun)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, FileError{Path: path, Err: err})
				return nil
			}
			if res.Modified {
				report.Modified = append(report.Modified, relPath(opts.Root, path))
				report.WrappedExact += res.Wrapped
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(report.Modified)
	sort.Slice(report.Failed, func(i, j int) bool {
		return report.Failed[i].Path < report.Failed[j].Path
	})
	return report, nil
}

// relPath reports path relative to root for display; falls back to the
// full path when it cannot be made relative.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
