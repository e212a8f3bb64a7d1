package blocks

import (
	"github.com/javalint/javalint/pkg/lint"
	"github.com/javalint/javalint/pkg/syntax"
)

func init() {
	lint.Register(lint.CheckDef{
		Name:        "NeedBraces",
		Description: "Checks for control-flow bodies written without braces.",
		Severity:    lint.SeverityError,
		New:         NewNeedBraces,
	})
}

// NeedBraces reports control-flow constructs whose body is a bare
// statement rather than a statement list.
type NeedBraces struct{}

// NewNeedBraces builds the check. It takes no options.
func NewNeedBraces(map[string]any) (lint.Check, error) {
	return &NeedBraces{}, nil
}

func (c *NeedBraces) Name() string                   { return "NeedBraces" }
func (c *NeedBraces) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (c *NeedBraces) DefaultKinds() []syntax.Kind {
	return []syntax.Kind{
		syntax.KindDo,
		syntax.KindElse,
		syntax.KindIf,
		syntax.KindFor,
		syntax.KindWhile,
	}
}

func (c *NeedBraces) Visit(ctx *lint.Context, node *syntax.Node) error {
	if node.FirstChildOfKind(syntax.KindSlist) != nil {
		return nil
	}
	// An "else if" has no statement list of its own; the chained if is
	// checked when it is visited.
	if node.Kind() == syntax.KindElse {
		if first := node.FirstChild(); first != nil && first.Kind() == syntax.KindIf {
			return nil
		}
	}
	ctx.Report(node.Line(), node.Column(), "needBraces", keywordFor(node))
	return nil
}

// keywordFor returns the construct's source keyword for violation
// messages, falling back to the node's token text.
func keywordFor(node *syntax.Node) string {
	switch node.Kind() {
	case syntax.KindDo:
		return "do"
	case syntax.KindElse:
		return "else"
	case syntax.KindIf:
		return "if"
	case syntax.KindFor:
		return "for"
	case syntax.KindWhile:
		return "while"
	default:
		return node.Text()
	}
}
