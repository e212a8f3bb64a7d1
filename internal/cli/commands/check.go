package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/javalint/javalint/internal/cli/output"
	"github.com/javalint/javalint/internal/config"
	"github.com/javalint/javalint/internal/engine"
	"github.com/javalint/javalint/pkg/lint"
	_ "github.com/javalint/javalint/pkg/lint/rules/blocks" // register block checks
)

// checkstyleXMLVersion is the version attribute stamped on XML reports.
const checkstyleXMLVersion = "1.0"

// watchDebounce coalesces filesystem event bursts into one re-run.
const watchDebounce = 300 * time.Millisecond

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Path    string   // Source directory override
	Format  string   // Output format: text, json, xml
	Disable []string // Check names to disable
	Checks  []string // Run only specific checks
	Watch   bool     // Re-run on source changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Run style checks on Java sources",
		Long: `Analyze Java source files for style violations.

Walks the source directory, loads the syntax tree sidecar for each
.java file, and reports violations of the configured checks. Checks
can be configured in javalint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - JSON: Machine-readable format
  - XML: Checkstyle-compatible report for CI tooling`,
		Example: `  # Check the configured source directory
  javalint check

  # Check a specific directory
  javalint check ./src/main/java

  # Output a checkstyle XML report
  javalint check --format xml

  # Disable specific checks
  javalint check --disable NeedBraces,AvoidNestedBlocks

  # Re-run automatically on changes
  javalint check --watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, xml")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Check names to disable")
	cmd.Flags().StringSliceVar(&opts.Checks, "check", nil, "Run only specific checks")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run checks when sources change")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	sourceDir := cfg.SourceDir
	if opts.Path != "" {
		sourceDir = opts.Path
	}

	lintCfg := buildCheckConfig(cfg, opts)
	checks, err := lint.Instantiate(lintCfg)
	if err != nil {
		return err
	}
	if len(checks) == 0 {
		return fmt.Errorf("no checks enabled")
	}

	runOnce := func(ctx context.Context) (*engine.Result, *lint.Collector, error) {
		collector := lint.NewCollector()
		eng, err := engine.New(engine.Config{
			SourceDir:  sourceDir,
			Parser:     engine.SidecarParser{},
			Checks:     checks,
			LintConfig: lintCfg,
			Listeners:  []lint.AuditListener{collector},
			Workers:    cfg.Workers,
			Logger:     cmdCtx.Logger,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := eng.Run(ctx)
		if err != nil {
			return nil, nil, err
		}
		return res, collector, nil
	}

	if opts.Watch {
		return watchAndCheck(cmd, r, sourceDir, runOnce)
	}

	res, collector, err := runOnce(cmd.Context())
	if err != nil {
		return err
	}
	renderCheckResults(r, res, collector)

	// Exit with code 1 if issues found
	if res.Violations > 0 || res.Errors > 0 {
		return fmt.Errorf("check violations found")
	}
	return nil
}

// buildCheckConfig layers CLI flags over the project configuration.
func buildCheckConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := cfg.BuildLintConfig()

	// Apply CLI overrides (higher precedence)
	for _, name := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(name))
	}

	// If --check specified, disable all others
	if len(opts.Checks) > 0 {
		enabledSet := make(map[string]bool)
		for _, name := range opts.Checks {
			enabledSet[strings.TrimSpace(name)] = true
		}
		for _, def := range lint.GetAll() {
			if !enabledSet[def.Name] {
				lintCfg.Disable(def.Name)
			}
		}
	}

	return lintCfg
}

// watchAndCheck runs checks once, then re-runs them whenever a source
// or sidecar file changes. It blocks until the context is canceled.
func watchAndCheck(cmd *cobra.Command, r *output.Renderer, sourceDir string, runOnce func(context.Context) (*engine.Result, *lint.Collector, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify watches are not recursive; register every directory.
	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && !strings.HasPrefix(d.Name(), ".") {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", sourceDir, err)
	}

	ctx := cmd.Context()
	rerun := func() {
		res, collector, err := runOnce(ctx)
		if err != nil {
			r.Errorf("check failed: %v\n", err)
			return
		}
		renderCheckResults(r, res, collector)
	}

	rerun()
	r.Println("Watching for changes... (Ctrl+C to stop)")

	var debounce *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantChange(ev) {
				continue
			}
			// New directories need a watch of their own.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = watcher.Add(ev.Name)
				}
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Errorf("watch error: %v\n", err)
		case <-pending:
			rerun()
		}
	}
}

// relevantChange reports whether a filesystem event should trigger a
// re-run.
func relevantChange(ev fsnotify.Event) bool {
	if ev.Op.Has(fsnotify.Chmod) {
		return false
	}
	name := ev.Name
	return strings.HasSuffix(name, ".java") ||
		strings.HasSuffix(name, engine.TreeSuffix) ||
		ev.Op.Has(fsnotify.Create)
}

// renderCheckResults writes the run's results in the renderer's mode.
func renderCheckResults(r *output.Renderer, res *engine.Result, collector *lint.Collector) {
	out := collectOutput(res, collector)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		_ = r.JSON(out)
	case output.ModeXML:
		_ = r.XML(checkstyleReport(collector))
	default:
		renderCheckText(r, res, collector, out.Summary)
	}
}

// collectOutput converts collected events into the JSON report shape.
func collectOutput(res *engine.Result, collector *lint.Collector) output.CheckOutput {
	out := output.CheckOutput{
		Summary: output.CheckSummary{
			FilesChecked: res.FilesChecked,
			Violations:   res.Violations,
			FileErrors:   res.Errors,
		},
	}

	for _, file := range collector.Files() {
		vs := collector.ViolationsFor(file)
		fileErr := collector.ErrorFor(file)
		if len(vs) == 0 && fileErr == nil {
			continue
		}

		fr := output.CheckFileResult{Path: file}
		if fileErr != nil {
			fr.Error = fileErr.Error()
		}
		for _, v := range vs {
			fr.Violations = append(fr.Violations, output.CheckViolation{
				Check:    v.Check,
				Severity: v.Severity.String(),
				Message:  v.Message(),
				Line:     v.Line,
				Column:   v.Column,
			})
			switch v.Severity {
			case lint.SeverityError:
				out.Summary.Errors++
			case lint.SeverityWarning:
				out.Summary.Warnings++
			case lint.SeverityInfo:
				out.Summary.Info++
			}
		}
		out.Files = append(out.Files, fr)
	}
	return out
}

// checkstyleReport converts collected events into the XML report shape.
func checkstyleReport(collector *lint.Collector) output.XMLReport {
	report := output.XMLReport{Version: checkstyleXMLVersion}
	for _, file := range collector.Files() {
		vs := collector.ViolationsFor(file)
		if len(vs) == 0 {
			continue
		}
		xf := output.XMLFile{Name: file}
		for _, v := range vs {
			xf.Errors = append(xf.Errors, output.XMLError{
				Line:     v.Line,
				Column:   v.Column,
				Severity: v.Severity.String(),
				Message:  v.Message(),
				Source:   v.Check,
			})
		}
		report.Files = append(report.Files, xf)
	}
	return report
}

func renderCheckText(r *output.Renderer, res *engine.Result, collector *lint.Collector, summary output.CheckSummary) {
	if res.Violations == 0 && res.Errors == 0 {
		r.Success(fmt.Sprintf("No violations found in %d files", res.FilesChecked))
		return
	}

	styles := r.Styles()
	for _, file := range collector.Files() {
		vs := collector.ViolationsFor(file)
		fileErr := collector.ErrorFor(file)
		if len(vs) == 0 && fileErr == nil {
			continue
		}

		r.Println(styles.FilePath.Render(file))
		if fileErr != nil {
			r.Printf("  %s  %v\n", styles.Error.Render("error"), fileErr)
		}
		for _, v := range vs {
			loc := fmt.Sprintf("%d:%d", v.Line, v.Column)
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityLabel(styles, v.Severity),
				styles.Bold.Render(v.Check),
				v.Message(),
			)
		}
		r.Println("")
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(r.Writer())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Files", "Violations", "Errors", "Warnings", "Info", "File errors"})
	tw.AppendRow(table.Row{
		summary.FilesChecked, summary.Violations,
		summary.Errors, summary.Warnings, summary.Info, summary.FileErrors,
	})
	tw.Render()
}

func severityLabel(styles *output.Styles, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return styles.Error.Render("error  ")
	case lint.SeverityWarning:
		return styles.Warning.Render("warning")
	case lint.SeverityInfo:
		return styles.Info.Render("info   ")
	default:
		return styles.Muted.Render("unknown")
	}
}
