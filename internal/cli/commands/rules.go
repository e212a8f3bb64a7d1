package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/javalint/javalint/internal/cli/output"
	"github.com/javalint/javalint/pkg/lint"
	_ "github.com/javalint/javalint/pkg/lint/rules/blocks" // register block checks
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Format string // Output format: text, json, yaml
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [check-name]",
		Short: "List available checks",
		Long: `List all available checks with their default severity and options.

Pass a check name to see its full description and configuration keys.`,
		Example: `  # List all checks
  javalint rules

  # Show details for a specific check
  javalint rules LeftCurly

  # Output as JSON or YAML
  javalint rules --format json
  javalint rules --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, yaml")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" && opts.Format != "yaml" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	defs := lint.GetAll()

	if opts.Format == "yaml" {
		data, err := yaml.Marshal(defs)
		if err != nil {
			return err
		}
		_, err = r.Writer().Write(data)
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(struct {
			Checks []lint.CheckDef `json:"checks"`
			Count  int             `json:"count"`
		}{Checks: defs, Count: len(defs)})
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Checks (%d)", len(defs))))
	r.Println("")

	tw := table.NewWriter()
	tw.SetOutputMirror(r.Writer())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Name", "Severity", "Options", "Description"})
	for _, def := range defs {
		tw.AppendRow(table.Row{
			def.Name,
			def.Severity.String(),
			strings.Join(def.ConfigKeys, ", "),
			def.Description,
		})
	}
	tw.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'javalint rules <check-name>' for details"))
	return nil
}

func showRule(cmd *cobra.Command, name string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" && opts.Format != "yaml" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	def, ok := lint.GetByName(name)
	if !ok {
		return fmt.Errorf("check %q not found", name)
	}

	switch {
	case opts.Format == "yaml":
		data, err := yaml.Marshal(def)
		if err != nil {
			return err
		}
		_, err = r.Writer().Write(data)
		return err
	case r.EffectiveMode() == output.ModeJSON:
		return r.JSON(def)
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render(def.Name))
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), def.Severity.String())
	if len(def.ConfigKeys) > 0 {
		r.Printf("  %s: %s\n", styles.Bold.Render("Options"), strings.Join(def.ConfigKeys, ", "))
	}
	r.Println("")
	r.Println("  " + def.Description)
	r.Println("")
	return nil
}
