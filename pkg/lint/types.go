package lint

import (
	"fmt"

	"github.com/javalint/javalint/pkg/syntax"
)

// =============================================================================
// Violations
// =============================================================================

// Violation is one reported rule breach. Violations are produced by
// checks through Context.Report and never mutated afterwards; their
// order within a file follows traversal (and hence source) order.
//
// MessageKey and Args are the stable contract downstream reporters rely
// on; renaming a key is a breaking change.
type Violation struct {
	Check      string   `json:"check"`
	Severity   Severity `json:"severity"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	MessageKey string   `json:"message_key"`
	Args       []any    `json:"args,omitempty"`
}

// Message renders the violation's human-readable text from the message
// catalog. Unknown keys fall back to the key itself so a missing catalog
// entry never hides a violation.
func (v Violation) Message() string {
	format, ok := messages[v.MessageKey]
	if !ok {
		return v.MessageKey
	}
	return fmt.Sprintf(format, v.Args...)
}

// =============================================================================
// Check contract
// =============================================================================

// Check is the interface every rule module implements. A check declares
// a fixed set of node kinds it wants to visit; the walker queries the
// set once before traversal and invokes Visit for every matching node in
// traversal order. A check may hold configuration set at construction
// time and read-only during traversal; it must not mutate the tree and
// must not retain mutable state across Visit calls.
type Check interface {
	// Name returns the check's registry name, e.g. "LeftCurly".
	Name() string

	// DefaultSeverity returns the severity violations carry unless
	// overridden by configuration.
	DefaultSeverity() Severity

	// DefaultKinds returns the node kinds this check wants visited.
	DefaultKinds() []syntax.Kind

	// Visit is called once per matching node. A returned error is a
	// fatal defect in the check and aborts the file's walk.
	Visit(ctx *Context, node *syntax.Node) error
}

// =============================================================================
// Context (violation sink + source access)
// =============================================================================

// Context carries the per-file state a check may consult during a walk:
// the source lines and the violation sink. One Context serves exactly
// one file's traversal.
type Context struct {
	file       *syntax.SourceFile
	violations []Violation

	// Set by the walker around each Visit call.
	checkName     string
	checkSeverity Severity
}

// NewContext creates a context for one file's traversal.
func NewContext(file *syntax.SourceFile) *Context {
	return &Context{file: file}
}

// File returns the source line accessor for the file being walked.
func (c *Context) File() *syntax.SourceFile { return c.file }

// Report emits one violation at the given 1-based position.
// The check identity and severity are those of the check currently
// being visited.
func (c *Context) Report(line, column int, messageKey string, args ...any) {
	c.violations = append(c.violations, Violation{
		Check:      c.checkName,
		Severity:   c.checkSeverity,
		Line:       line,
		Column:     column,
		MessageKey: messageKey,
		Args:       args,
	})
}

// Violations returns all violations reported so far, in emission order.
func (c *Context) Violations() []Violation { return c.violations }
