// Package config loads javalint configuration from files, environment
// variables, and CLI flags. It is decoupled from command wiring so other
// tools can reuse it.
package config

import (
	"strings"

	"github.com/javalint/javalint/pkg/lint"
)

// Config holds all CLI configuration options.
type Config struct {
	// ProjectRoot is the directory all relative paths resolve against.
	// It is inferred at load time and never read from the file itself.
	ProjectRoot string `koanf:"-"`

	SourceDir    string        `koanf:"source_dir"`
	OutputFormat string        `koanf:"output"`
	Verbose      bool          `koanf:"verbose"`
	Workers      int           `koanf:"workers"`
	Checks       *ChecksConfig `koanf:"checks"`
}

// ChecksConfig holds check configuration.
type ChecksConfig struct {
	// Disabled contains check names to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps check name to severity override (error, warning, info)
	Severity map[string]string `koanf:"severity"`

	// Options contains check-specific options
	Options map[string]CheckOptions `koanf:"options"`
}

// CheckOptions holds check-specific configuration options.
type CheckOptions map[string]any

// BuildLintConfig converts the loaded check configuration into the
// form the check registry consumes. Unknown severity names are ignored
// rather than failing the whole run.
func (c *Config) BuildLintConfig() *lint.Config {
	cfg := lint.NewConfig()
	if c == nil || c.Checks == nil {
		return cfg
	}
	for _, name := range c.Checks.Disabled {
		cfg.Disable(strings.TrimSpace(name))
	}
	for name, sev := range c.Checks.Severity {
		if s, ok := lint.ParseSeverity(sev); ok {
			cfg.SetSeverity(name, s)
		}
	}
	for name, opts := range c.Checks.Options {
		for key, val := range opts {
			cfg.SetCheckOption(name, key, val)
		}
	}
	return cfg
}
