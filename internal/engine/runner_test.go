package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRunBatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Dirty.swift"), "print(\"a\")\n")
	writeFile(t, filepath.Join(root, "Views", "AlsoDirty.swift"), "func f() {\n    print(\"b\")\n}\n")
	writeFile(t, filepath.Join(root, "Clean.swift"), "#if DEBUG\nprint(\"c\")\n#endif\n")
	writeFile(t, filepath.Join(root, "Critical.swift"), "print(\"CRITICAL: keep\")\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "print( in a text file\n")

	report, err := Run(context.Background(), Options{
		Root:       root,
		Extensions: []string{".swift"},
		Rules:      testRules(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Scanned != 4 {
		t.Errorf("Scanned = %d, want 4", report.Scanned)
	}
	wantModified := []string{"Dirty.swift", filepath.Join("Views", "AlsoDirty.swift")}
	if !reflect.DeepEqual(report.Modified, wantModified) {
		t.Errorf("Modified = %q, want %q", report.Modified, wantModified)
	}
	if report.Unmodified() != 2 {
		t.Errorf("Unmodified = %d, want 2", report.Unmodified())
	}
	if len(report.Failed) != 0 {
		t.Errorf("Failed = %v, want none", report.Failed)
	}
	if report.WrappedExact != 2 {
		t.Errorf("WrappedExact = %d, want 2", report.WrappedExact)
	}
	if report.EstimatedWrapped() != 6 {
		t.Errorf("EstimatedWrapped = %d, want 6", report.EstimatedWrapped())
	}

	data, err := os.ReadFile(filepath.Join(root, "Critical.swift"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "print(\"CRITICAL: keep\")\n" {
		t.Errorf("exempt file was touched: %q", data)
	}
}

func TestRunConvergesOnSecondPass(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "App.swift")
	writeFile(t, path, "print(\"a\")\nlet x = 1\nprint(\"b\")\n")

	opts := Options{Root: root, Extensions: []string{".swift"}, Rules: testRules()}

	first, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if len(first.Modified) != 1 {
		t.Fatalf("first run Modified = %q, want one file", first.Modified)
	}

	afterFirst, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	second, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(second.Modified) != 0 {
		t.Errorf("second run Modified = %q, want none", second.Modified)
	}

	afterSecond, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(afterFirst) != string(afterSecond) {
		t.Error("second run changed file content")
	}
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "App.swift")
	content := "print(\"a\")\n"
	writeFile(t, path, content)

	report, err := Run(context.Background(), Options{
		Root:       root,
		Extensions: []string{".swift"},
		Rules:      testRules(),
		DryRun:     true,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Modified) != 1 {
		t.Errorf("dry run should report pending files, got %q", report.Modified)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Error("dry run modified a file")
	}
}

func TestRunMissingRoot(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Root:       filepath.Join(t.TempDir(), "nope"),
		Extensions: []string{".swift"},
		Rules:      testRules(),
	})
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}
}

func TestRunSingleWorker(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.swift", "b.swift", "c.swift"} {
		writeFile(t, filepath.Join(root, name), "print(\"x\")\n")
	}

	report, err := Run(context.Background(), Options{
		Root:       root,
		Extensions: []string{".swift"},
		Rules:      testRules(),
		Jobs:       1,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Modified) != 3 {
		t.Errorf("Modified = %q, want all three files", report.Modified)
	}
}
