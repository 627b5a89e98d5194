package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hush/internal/engine"
)

// Defaults target Swift projects, matching the tool's origin. Everything
// here can be overridden by a .hush.yml at the scan root or by flags.
const (
	DefaultRoot          = "."
	DefaultMarker        = "print("
	DefaultCommentPrefix = "//"
	DefaultGuardOpen     = "#if DEBUG"
	DefaultGuardClose    = "#endif"
)

// FileName is the optional per-project configuration file, looked up at
// the scan root.
const FileName = ".hush.yml"

// DefaultExtensions is the source suffix filter applied when none is
// configured.
var DefaultExtensions = []string{".swift"}

// DefaultExemptions marks diagnostics that must stay visible in production
// builds. Matching is plain substring containment against the whole line.
var DefaultExemptions = []string{
	"CRITICAL",
	"FATAL",
	"❌ ERROR",
	"App will not function",
}

// Config is the effective tool configuration for one run.
type Config struct {
	Root       string
	Extensions []string
	Rules      engine.Rules
	Jobs       int
}

// fileConfig is the YAML shape of .hush.yml. Empty fields fall back to
// the defaults, so a partial file is fine.
type fileConfig struct {
	Root       string   `yaml:"root"`
	Extensions []string `yaml:"extensions"`
	Marker     string   `yaml:"marker"`
	GuardOpen  string   `yaml:"guard_open"`
	GuardClose string   `yaml:"guard_close"`
	Exemptions []string `yaml:"exemptions"`
	Window     int      `yaml:"window"`
	Jobs       int      `yaml:"jobs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Root:       DefaultRoot,
		Extensions: append([]string(nil), DefaultExtensions...),
		Rules: engine.Rules{
			Marker:        DefaultMarker,
			CommentPrefix: DefaultCommentPrefix,
			GuardOpen:     DefaultGuardOpen,
			GuardClose:    DefaultGuardClose,
			Exemptions:    append([]string(nil), DefaultExemptions...),
			Window:        engine.DefaultWindow,
		},
		Jobs: 0, // one worker per CPU
	}
}

// Load builds the effective configuration for root: defaults, overlaid by
// .hush.yml at the scan root when present. A missing config file is not an
// error; a malformed one is.
func Load(root string) (*Config, error) {
	cfg := Default()
	if root != "" {
		cfg.Root = root
	}

	path := filepath.Join(cfg.Root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.apply(fc)
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.Root != "" {
		c.Root = fc.Root
	}
	if len(fc.Extensions) > 0 {
		c.Extensions = fc.Extensions
	}
	if fc.Marker != "" {
		c.Rules.Marker = fc.Marker
	}
	if fc.GuardOpen != "" {
		c.Rules.GuardOpen = fc.GuardOpen
	}
	if fc.GuardClose != "" {
		c.Rules.GuardClose = fc.GuardClose
	}
	if fc.Exemptions != nil {
		c.Rules.Exemptions = fc.Exemptions
	}
	if fc.Window > 0 {
		c.Rules.Window = fc.Window
	}
	if fc.Jobs > 0 {
		c.Jobs = fc.Jobs
	}
}

// Options converts the configuration into engine run options.
func (c *Config) Options(dryRun bool) engine.Options {
	return engine.Options{
		Root:       c.Root,
		Extensions: c.Extensions,
		Rules:      c.Rules,
		Jobs:       c.Jobs,
		DryRun:     dryRun,
	}
}

// HushDir returns the global state directory (~/.hush), creating it if
// needed. Run history lives here so scanned trees stay clean.
func HushDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".hush")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}
