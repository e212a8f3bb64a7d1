package syntax

import (
	"fmt"
	"strings"
)

// SourceFile is a read-only view over a file's text lines, addressable
// by 1-based line number. The lint engine never opens files itself; the
// driver reads the bytes and hands them over once per file.
type SourceFile struct {
	name  string
	lines []string
}

// NewSourceFile splits src into lines. Line terminators are not part of
// the stored lines; a trailing carriage return is kept so that
// VisibleLength can strip it along with other trailing whitespace.
func NewSourceFile(name string, src []byte) *SourceFile {
	lines := strings.Split(string(src), "\n")
	// A trailing newline produces one empty pseudo-line; drop it so
	// LineCount matches what an editor shows.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &SourceFile{name: name, lines: lines}
}

// Name returns the file name the source was read from.
func (f *SourceFile) Name() string { return f.name }

// LineCount returns the number of lines in the file.
func (f *SourceFile) LineCount() int { return len(f.lines) }

// Line returns the raw text of the 1-based line n.
// Requesting a line outside the file's bounds is a programming error in
// the caller and panics; checks that need a "line before line 1" value
// must substitute it themselves rather than querying line 0.
func (f *SourceFile) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		panic(fmt.Sprintf("syntax: line %d out of range [1, %d] in %s", n, len(f.lines), f.name))
	}
	return f.lines[n-1]
}

// ValidatePositions checks every node in the tree against the file's
// line range. Trees arrive from an external parser, so a node can
// address a line the file does not have; walking such a tree would
// panic in Line. Drivers validate once, before walking.
func ValidatePositions(root *Node, f *SourceFile) error {
	if root == nil {
		return nil
	}
	if root.pos.Line < 1 || root.pos.Line > len(f.lines) {
		return fmt.Errorf("node %s at %s is outside the %d-line file %s",
			root.kind, root.pos, len(f.lines), f.name)
	}
	for _, child := range root.children {
		if err := ValidatePositions(child, f); err != nil {
			return err
		}
	}
	return nil
}

// VisibleLength returns the character count of s after stripping
// trailing whitespace.
func VisibleLength(s string) int {
	return len(strings.TrimRight(s, " \t\r\f"))
}
