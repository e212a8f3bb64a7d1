// Package engine drives a lint run: it discovers Java sources, parses
// them, walks each syntax tree with the configured checks, and streams
// audit events to listeners.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/javalint/javalint/pkg/lint"
	"github.com/javalint/javalint/pkg/syntax"
)

// Config holds engine configuration.
type Config struct {
	// SourceDir is the directory scanned for .java files.
	SourceDir string

	// Parser produces a syntax tree for each source file.
	Parser syntax.Parser

	// Checks are the instantiated checks to run.
	Checks []lint.Check

	// LintConfig carries severity overrides. May be nil.
	LintConfig *lint.Config

	// Listeners receive audit events for the run.
	Listeners []lint.AuditListener

	// Workers bounds how many files are analyzed concurrently.
	Workers int

	// Logger for diagnostics. Defaults to a discard logger.
	Logger *slog.Logger
}

// Engine runs checks over a source tree.
type Engine struct {
	cfg        Config
	walker     *lint.Walker
	dispatcher *lint.Dispatcher
	logger     *slog.Logger
}

// New creates an engine from the configuration.
func New(cfg Config) (*Engine, error) {
	if cfg.SourceDir == "" {
		return nil, fmt.Errorf("source directory is required")
	}
	if cfg.Parser == nil {
		return nil, fmt.Errorf("parser is required")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		cfg:        cfg,
		walker:     lint.NewWalker(cfg.Checks...),
		dispatcher: lint.NewDispatcher(cfg.Listeners...),
		logger:     logger,
	}, nil
}

// AddListener registers an additional audit listener.
func (e *Engine) AddListener(l lint.AuditListener) {
	e.dispatcher.AddListener(l)
}

// Result summarizes a completed run.
type Result struct {
	RunID        string        `json:"run_id"`
	FilesChecked int           `json:"files_checked"`
	Violations   int           `json:"violations"`
	Errors       int           `json:"errors"`
	Duration     time.Duration `json:"duration"`
}

// fileResult holds the outcome of analyzing a single file.
type fileResult struct {
	violations []lint.Violation
	err        error
}

// Run analyzes every discovered source file and dispatches audit
// events. Files are analyzed concurrently but events are delivered in
// discovery order, with each file's events contiguous. A file that
// cannot be parsed or walked produces an error event; the run
// continues with the remaining files.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	files, err := DiscoverSources(e.cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("discovering sources in %s: %w", e.cfg.SourceDir, err)
	}
	e.logger.Debug("discovered sources", "run_id", runID, "count", len(files))

	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.analyzeFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.dispatcher.AuditStarted(lint.AuditEvent{RunID: runID})

	res := &Result{RunID: runID, FilesChecked: len(files)}
	for i, path := range files {
		e.dispatcher.FileStarted(lint.AuditEvent{RunID: runID, File: path})

		r := results[i]
		if r.err != nil {
			e.logger.Warn("analysis failed", "file", path, "error", r.err)
			e.dispatcher.Error(lint.AuditEvent{RunID: runID, File: path, Err: r.err})
			res.Errors++
		}
		for j := range r.violations {
			e.dispatcher.Violation(lint.AuditEvent{RunID: runID, File: path, Violation: &r.violations[j]})
		}
		res.Violations += len(r.violations)

		e.dispatcher.FileFinished(lint.AuditEvent{RunID: runID, File: path})
	}

	e.dispatcher.AuditFinished(lint.AuditEvent{RunID: runID})

	res.Duration = time.Since(start)
	e.logger.Info("run finished",
		"run_id", runID,
		"files", res.FilesChecked,
		"violations", res.Violations,
		"errors", res.Errors,
		"duration", res.Duration.Round(time.Millisecond),
	)
	return res, nil
}

// analyzeFile parses one source file and walks it with the configured
// checks, applying severity overrides to the resulting violations.
func (e *Engine) analyzeFile(path string) fileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{err: fmt.Errorf("reading %s: %w", path, err)}
	}

	root, err := e.cfg.Parser.Parse(path, src)
	if err != nil {
		return fileResult{err: err}
	}

	file := syntax.NewSourceFile(path, src)
	if err := syntax.ValidatePositions(root, file); err != nil {
		return fileResult{err: fmt.Errorf("invalid syntax tree for %s: %w", path, err)}
	}

	ctx := lint.NewContext(file)
	if err := e.walker.Walk(ctx, root); err != nil {
		return fileResult{err: err}
	}

	violations := ctx.Violations()
	if e.cfg.LintConfig != nil {
		for i := range violations {
			violations[i].Severity = e.cfg.LintConfig.GetSeverity(violations[i].Check, violations[i].Severity)
		}
	}
	return fileResult{violations: violations}
}
