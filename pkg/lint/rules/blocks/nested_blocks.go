package blocks

import (
	"github.com/javalint/javalint/pkg/lint"
	"github.com/javalint/javalint/pkg/syntax"
)

func init() {
	lint.Register(lint.CheckDef{
		Name:        "AvoidNestedBlocks",
		Description: "Finds bare blocks nested directly inside another block.",
		Severity:    lint.SeverityWarning,
		ConfigKeys:  []string{"allowInSwitchCase"},
		New:         NewAvoidNestedBlocks,
	})
}

// AvoidNestedBlocks reports statement lists nested directly inside
// another statement list. Such blocks usually remain from debugging or
// refactoring and hide scoping mistakes.
type AvoidNestedBlocks struct {
	allowInSwitchCase bool
}

// NewAvoidNestedBlocks builds the check. Option allowInSwitchCase
// (default false) tolerates blocks used to scope a switch case's body.
func NewAvoidNestedBlocks(opts map[string]any) (lint.Check, error) {
	return &AvoidNestedBlocks{
		allowInSwitchCase: lint.GetBoolOption(opts, "allowInSwitchCase", false),
	}, nil
}

func (c *AvoidNestedBlocks) Name() string                   { return "AvoidNestedBlocks" }
func (c *AvoidNestedBlocks) DefaultSeverity() lint.Severity { return lint.SeverityWarning }

func (c *AvoidNestedBlocks) DefaultKinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindSlist}
}

func (c *AvoidNestedBlocks) Visit(ctx *lint.Context, node *syntax.Node) error {
	parent := node.Parent()
	if parent == nil || parent.Kind() != syntax.KindSlist {
		return nil
	}
	if c.allowInSwitchCase && parent.Parent() != nil && parent.Parent().Kind() == syntax.KindCaseGroup {
		return nil
	}
	ctx.Report(node.Line(), node.Column(), "block.nested")
	return nil
}
