package blocks

import (
	"fmt"

	"github.com/javalint/javalint/pkg/lint"
	"github.com/javalint/javalint/pkg/syntax"
)

func init() {
	lint.Register(lint.CheckDef{
		Name:        "LeftCurly",
		Description: "Checks the placement of opening braces on types, methods and other blocks.",
		Severity:    lint.SeverityError,
		ConfigKeys:  []string{"option", "maxLineLength", "ignoreEnums"},
		New:         NewLeftCurly,
	})
}

const defaultMaxLineLength = 80

// LeftCurly verifies opening brace placement against one of three
// policies. Configuration is fixed at construction and read-only during
// traversal, so one instance may serve multiple files.
type LeftCurly struct {
	policy        Policy
	maxLineLength int
	ignoreEnums   bool
}

// NewLeftCurly builds the check from its option map. Defaults: policy
// eol, maxLineLength 80, ignoreEnums true.
func NewLeftCurly(opts map[string]any) (lint.Check, error) {
	policy, err := ParsePolicy(lint.GetStringOption(opts, "option", "eol"))
	if err != nil {
		return nil, err
	}
	maxLen := lint.GetIntOption(opts, "maxLineLength", defaultMaxLineLength)
	if maxLen <= 0 {
		return nil, fmt.Errorf("maxLineLength must be positive, got %d", maxLen)
	}
	return &LeftCurly{
		policy:        policy,
		maxLineLength: maxLen,
		ignoreEnums:   lint.GetBoolOption(opts, "ignoreEnums", true),
	}, nil
}

func (c *LeftCurly) Name() string                   { return "LeftCurly" }
func (c *LeftCurly) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (c *LeftCurly) DefaultKinds() []syntax.Kind {
	return []syntax.Kind{
		syntax.KindInterfaceDef,
		syntax.KindClassDef,
		syntax.KindAnnotationDef,
		syntax.KindEnumDef,
		syntax.KindCtorDef,
		syntax.KindMethodDef,
		syntax.KindEnumConstantDef,
		syntax.KindWhile,
		syntax.KindTry,
		syntax.KindCatch,
		syntax.KindFinally,
		syntax.KindSynchronized,
		syntax.KindSwitch,
		syntax.KindDo,
		syntax.KindIf,
		syntax.KindElse,
		syntax.KindFor,
	}
}

// Visit locates the (start token, candidate brace) pair for the
// construct and verifies placement. Constructs without a brace
// candidate (bodiless methods, braceless if, else-if chains) are
// skipped silently.
func (c *LeftCurly) Visit(ctx *lint.Context, node *syntax.Node) error {
	var startToken, brace *syntax.Node
	var err error

	switch node.Kind() {
	case syntax.KindCtorDef, syntax.KindMethodDef:
		startToken, err = skipAnnotationOnlyLines(node)
		if err != nil {
			return err
		}
		brace = node.FirstChildOfKind(syntax.KindSlist)

	case syntax.KindInterfaceDef, syntax.KindClassDef, syntax.KindAnnotationDef,
		syntax.KindEnumDef, syntax.KindEnumConstantDef:
		startToken, err = skipAnnotationOnlyLines(node)
		if err != nil {
			return err
		}
		if objBlock := node.FirstChildOfKind(syntax.KindObjBlock); objBlock != nil {
			brace = objBlock.FirstChild()
		}

	case syntax.KindWhile, syntax.KindCatch, syntax.KindSynchronized,
		syntax.KindFor, syntax.KindTry, syntax.KindFinally,
		syntax.KindDo, syntax.KindIf:
		startToken = node
		brace = node.FirstChildOfKind(syntax.KindSlist)

	case syntax.KindElse:
		startToken = node
		candidate := node.FirstChild()
		if candidate == nil {
			return fmt.Errorf("else at %d:%d has no body", node.Line(), node.Column())
		}
		// An "else if" chains to another construct, not a brace.
		if candidate.Kind() == syntax.KindSlist {
			brace = candidate
		}

	case syntax.KindSwitch:
		startToken = node
		brace = node.FirstChildOfKind(syntax.KindLCurly)
	}

	if brace == nil || startToken == nil {
		return nil
	}
	return c.verifyBrace(ctx, brace, startToken)
}

// verifyBrace applies the configured policy to one (brace, startToken)
// pair and reports at most one placement violation plus, under the eol
// policy, one line-break violation.
func (c *LeftCurly) verifyBrace(ctx *lint.Context, brace, startToken *syntax.Node) error {
	braceLine := ctx.File().Line(brace.Line())

	// Previous line length without trailing whitespace. A brace on
	// line 1 has no previous line; substitute maxLineLength so the
	// "could have fit on the previous line" test never fires.
	prevLineLen := c.maxLineLength
	if brace.Line() > 1 {
		prevLineLen = syntax.VisibleLength(ctx.File().Line(brace.Line() - 1))
	}

	// 0-based index of the brace character on its line.
	idx := brace.Column() - 1

	// Empty '{}' bodies are exempt from every policy.
	if idx+1 < len(braceLine) && braceLine[idx+1] == '}' {
		return nil
	}

	switch c.policy {
	case PolicyNextLine:
		if !whitespaceBefore(idx, braceLine) {
			ctx.Report(brace.Line(), brace.Column(), "line.new", "{")
		}

	case PolicyEndOfLine:
		if whitespaceBefore(idx, braceLine) && prevLineLen+2 <= c.maxLineLength {
			ctx.Report(brace.Line(), brace.Column(), "line.previous", "{")
		}
		if !c.hasLineBreakAfter(brace) {
			ctx.Report(brace.Line(), brace.Column(), "line.break.after")
		}

	case PolicyNextLineIfWrapped:
		switch {
		case startToken.Line() == brace.Line():
			// Same line as the construct start is always acceptable.
		case startToken.Line()+1 == brace.Line():
			if !whitespaceBefore(idx, braceLine) {
				ctx.Report(brace.Line(), brace.Column(), "line.new", "{")
			} else if prevLineLen+2 <= c.maxLineLength {
				ctx.Report(brace.Line(), brace.Column(), "line.previous", "{")
			}
		case !whitespaceBefore(idx, braceLine):
			// Separated from its construct by blank or comment lines:
			// the brace must still be alone on its line.
			ctx.Report(brace.Line(), brace.Column(), "line.new", "{")
		}
	}
	return nil
}

// hasLineBreakAfter reports whether the token that should follow the
// brace starts on a later line. For a statement-list brace that token
// is its first child; for a type/enum brace it is the next sibling, but
// only when the brace belongs to an enum body and enums are not
// ignored. In every other case the question does not apply and the
// brace passes.
func (c *LeftCurly) hasLineBreakAfter(brace *syntax.Node) bool {
	var next *syntax.Node
	if brace.Kind() == syntax.KindSlist {
		next = brace.FirstChild()
	} else if p := brace.Parent(); p != nil && p.Parent() != nil &&
		p.Parent().Kind() == syntax.KindEnumDef && !c.ignoreEnums {
		next = brace.NextSibling()
	}
	if next != nil && next.Kind() != syntax.KindRCurly && brace.Line() == next.Line() {
		return false
	}
	return true
}

// skipAnnotationOnlyLines computes the effective start token for a
// definition whose modifiers carry annotations. If the token after the
// last annotation sits on a later line, the annotations occupy their own
// line(s) and that following token is the effective start. Otherwise the
// earliest annotation sharing the last annotation's line is used, which
// handles several annotations packed on the line immediately before the
// declaration.
func skipAnnotationOnlyLines(node *syntax.Node) (*syntax.Node, error) {
	modifiers := node.FirstChildOfKind(syntax.KindModifiers)
	if modifiers == nil {
		return node, nil
	}
	lastAnnot := findLastAnnotation(modifiers)
	if lastAnnot == nil {
		return node, nil
	}
	tokenAfterLast := lastAnnot.NextSibling()
	if tokenAfterLast == nil {
		tokenAfterLast = modifiers.NextSibling()
	}
	if tokenAfterLast == nil {
		return nil, fmt.Errorf("no token follows the annotations of the definition at %d:%d",
			node.Line(), node.Column())
	}
	if tokenAfterLast.Line() > lastAnnot.Line() {
		return tokenAfterLast, nil
	}
	lastAnnotLine := lastAnnot.Line()
	for lastAnnot.PreviousSibling() != nil && lastAnnot.PreviousSibling().Line() == lastAnnotLine {
		lastAnnot = lastAnnot.PreviousSibling()
	}
	return lastAnnot, nil
}

// findLastAnnotation returns the last annotation in an unbroken run of
// annotations at the start of the modifiers, or nil if there are none.
func findLastAnnotation(modifiers *syntax.Node) *syntax.Node {
	annot := modifiers.FirstChildOfKind(syntax.KindAnnotation)
	for annot != nil && annot.NextSibling() != nil && annot.NextSibling().Kind() == syntax.KindAnnotation {
		annot = annot.NextSibling()
	}
	return annot
}
