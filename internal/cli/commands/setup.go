package commands

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javalint/javalint/internal/cli/output"
	"github.com/javalint/javalint/internal/config"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// environment.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back
// to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	workers := config.DefaultWorkers
	if v, err := strconv.Atoi(os.Getenv("JAVALINT_WORKERS")); err == nil && v > 0 {
		workers = v
	}

	return &config.Config{
		SourceDir:    getEnvOrDefault("JAVALINT_SOURCE_DIR", config.DefaultSourceDir),
		OutputFormat: getEnvOrDefault("JAVALINT_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("JAVALINT_VERBOSE") == "true",
		Workers:      workers,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
