package lint

import (
	"fmt"

	"github.com/javalint/javalint/pkg/syntax"
)

// Walker drives a single pre-order traversal of a syntax tree,
// dispatching each visited node to every check interested in that
// node's kind. The walker holds no rule knowledge; all policy lives in
// the checks.
type Walker struct {
	byKind map[syntax.Kind][]Check
}

// NewWalker builds the kind-to-checks dispatch index once, from each
// check's declared interest set. Checks are invoked in the order they
// were passed here.
func NewWalker(checks ...Check) *Walker {
	byKind := make(map[syntax.Kind][]Check)
	for _, check := range checks {
		for _, kind := range check.DefaultKinds() {
			byKind[kind] = append(byKind[kind], check)
		}
	}
	return &Walker{byKind: byKind}
}

// Walk traverses the tree rooted at root in pre-order: a node is
// dispatched before its children, and children are visited in their
// stored sibling order, so checks see nodes in source document order.
//
// Errors from checks are not suppressed; the first error aborts the
// walk and propagates to the caller as a fatal failure for the file.
// The context's violation list is not guaranteed consistent after such
// a failure.
func (w *Walker) Walk(ctx *Context, root *syntax.Node) error {
	if root == nil {
		return nil
	}
	for _, check := range w.byKind[root.Kind()] {
		ctx.checkName = check.Name()
		ctx.checkSeverity = check.DefaultSeverity()
		if err := check.Visit(ctx, root); err != nil {
			return fmt.Errorf("check %s at %d:%d: %w", check.Name(), root.Line(), root.Column(), err)
		}
	}
	for _, child := range root.Children() {
		if err := w.Walk(ctx, child); err != nil {
			return err
		}
	}
	return nil
}
