package config

// Default configuration values.
const (
	DefaultSourceDir = "src"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=plain text
	DefaultWorkers   = 4
)

// ApplyDefaults fills unset fields of a Config.
func ApplyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.SourceDir == "" {
		c.SourceDir = DefaultSourceDir
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutput
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
}
