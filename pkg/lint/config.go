package lint

// Config controls which checks run, their severity, and their options.
type Config struct {
	// DisabledChecks contains check names to skip.
	DisabledChecks map[string]bool

	// SeverityOverrides changes the default severity of checks.
	SeverityOverrides map[string]Severity

	// CheckOptions holds per-check option maps, keyed by check name.
	CheckOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all checks enabled.
func NewConfig() *Config {
	return &Config{
		DisabledChecks:    make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		CheckOptions:      make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the check should be skipped.
func (c *Config) IsDisabled(name string) bool {
	if c == nil {
		return false
	}
	return c.DisabledChecks[name]
}

// GetSeverity returns the severity for a check, applying any override.
func (c *Config) GetSeverity(name string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[name]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetCheckOptions returns the option map for a check, or nil.
func (c *Config) GetCheckOptions(name string) map[string]any {
	if c == nil {
		return nil
	}
	return c.CheckOptions[name]
}

// Disable disables a check by name.
func (c *Config) Disable(name string) *Config {
	c.DisabledChecks[name] = true
	return c
}

// SetSeverity overrides the severity for a check.
func (c *Config) SetSeverity(name string, severity Severity) *Config {
	c.SeverityOverrides[name] = severity
	return c
}

// SetCheckOption sets one option for a check.
func (c *Config) SetCheckOption(name, key string, value any) *Config {
	opts := c.CheckOptions[name]
	if opts == nil {
		opts = make(map[string]any)
		c.CheckOptions[name] = opts
	}
	opts[key] = value
	return c
}
