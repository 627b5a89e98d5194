package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Root != "." {
		t.Errorf("Root = %q, want .", cfg.Root)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{".swift"}) {
		t.Errorf("Extensions = %q", cfg.Extensions)
	}
	if cfg.Rules.Marker != "print(" {
		t.Errorf("Marker = %q", cfg.Rules.Marker)
	}
	if cfg.Rules.GuardOpen != "#if DEBUG" || cfg.Rules.GuardClose != "#endif" {
		t.Errorf("Guards = %q / %q", cfg.Rules.GuardOpen, cfg.Rules.GuardClose)
	}
	for _, want := range []string{"CRITICAL", "FATAL"} {
		found := false
		for _, pat := range cfg.Rules.Exemptions {
			if pat == want {
				found = true
			}
		}
		if !found {
			t.Errorf("default exemptions missing %q", want)
		}
	}
}

func TestLoadWithoutFile(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != root {
		t.Errorf("Root = %q, want %q", cfg.Root, root)
	}
	if cfg.Rules.Marker != "print(" {
		t.Error("defaults should apply when no config file exists")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	root := t.TempDir()
	yml := `
extensions: [".swift", ".m"]
marker: "NSLog("
guard_open: "#if DEBUG_BUILD"
guard_close: "#endif // DEBUG_BUILD"
exemptions: ["[keep]"]
window: 8
jobs: 2
`
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(cfg.Extensions, []string{".swift", ".m"}) {
		t.Errorf("Extensions = %q", cfg.Extensions)
	}
	if cfg.Rules.Marker != "NSLog(" {
		t.Errorf("Marker = %q", cfg.Rules.Marker)
	}
	if cfg.Rules.GuardOpen != "#if DEBUG_BUILD" {
		t.Errorf("GuardOpen = %q", cfg.Rules.GuardOpen)
	}
	if !reflect.DeepEqual(cfg.Rules.Exemptions, []string{"[keep]"}) {
		t.Errorf("Exemptions = %q", cfg.Rules.Exemptions)
	}
	if cfg.Rules.Window != 8 {
		t.Errorf("Window = %d", cfg.Rules.Window)
	}
	if cfg.Jobs != 2 {
		t.Errorf("Jobs = %d", cfg.Jobs)
	}
	// Comment prefix has no file key and keeps its default.
	if cfg.Rules.CommentPrefix != "//" {
		t.Errorf("CommentPrefix = %q", cfg.Rules.CommentPrefix)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("jobs: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Jobs)
	}
	if cfg.Rules.GuardOpen != "#if DEBUG" {
		t.Error("unset fields should keep defaults")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("extensions: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Root = "Sources"
	cfg.Jobs = 3

	opts := cfg.Options(true)
	if opts.Root != "Sources" || opts.Jobs != 3 || !opts.DryRun {
		t.Errorf("Options = %+v", opts)
	}
	if opts.Rules.Marker != cfg.Rules.Marker {
		t.Error("Options should carry the rules through")
	}
}
