package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javalint/javalint/pkg/lint"
	"github.com/javalint/javalint/pkg/lint/rules/blocks"
	"github.com/javalint/javalint/pkg/syntax"
)

// node builds a syntax node with its children in source order.
func node(kind syntax.Kind, line, col int, text string, children ...*syntax.Node) *syntax.Node {
	n := syntax.New(kind, line, col, text)
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// runLeftCurly walks root with a LeftCurly built from opts and returns
// the violations.
func runLeftCurly(t *testing.T, opts map[string]any, src string, root *syntax.Node) []lint.Violation {
	t.Helper()
	check, err := blocks.NewLeftCurly(opts)
	require.NoError(t, err)

	ctx := lint.NewContext(syntax.NewSourceFile("T.java", []byte(src)))
	require.NoError(t, lint.NewWalker(check).Walk(ctx, root))
	return ctx.Violations()
}

func keys(vs []lint.Violation) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.MessageKey)
	}
	return out
}

func TestLeftCurlyEndOfLineCorrectPlacement(t *testing.T) {
	// if (x) {        <- brace at end of a short line: fine
	src := "if (x) {\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 1, 8, "{",
				node(syntax.KindExprStmt, 2, 5, ""),
				node(syntax.KindRCurly, 3, 1, "}"),
			),
		),
	)
	assert.Empty(t, runLeftCurly(t, nil, src, root))
}

func TestLeftCurlyEndOfLineBraceOnOwnLine(t *testing.T) {
	src := "if (x)\n{\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 2, 1, "{",
				node(syntax.KindExprStmt, 3, 5, ""),
				node(syntax.KindRCurly, 4, 1, "}"),
			),
		),
	)

	vs := runLeftCurly(t, nil, src, root)
	require.Len(t, vs, 1)
	assert.Equal(t, "line.previous", vs[0].MessageKey)
	assert.Equal(t, 2, vs[0].Line)
	assert.Equal(t, 1, vs[0].Column)
	assert.Equal(t, []any{"{"}, vs[0].Args)
}

func TestLeftCurlyNextLinePolicy(t *testing.T) {
	src := "if (x) {\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 1, 8, "{",
				node(syntax.KindExprStmt, 2, 5, ""),
				node(syntax.KindRCurly, 3, 1, "}"),
			),
		),
	)

	vs := runLeftCurly(t, map[string]any{"option": "nl"}, src, root)
	require.Len(t, vs, 1)
	assert.Equal(t, "line.new", vs[0].MessageKey)
	assert.Equal(t, 1, vs[0].Line)
	assert.Equal(t, 8, vs[0].Column)
}

func TestLeftCurlyLineBreakAfterBrace(t *testing.T) {
	// void m() { return; }   <- statement on the brace's line
	src := "void m() { return; }"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindMethodDef, 1, 1, "",
			node(syntax.KindModifiers, 1, 1, ""),
			node(syntax.KindType, 1, 1, "void"),
			node(syntax.KindIdent, 1, 6, "m"),
			node(syntax.KindSlist, 1, 10, "{",
				node(syntax.KindReturn, 1, 12, "return"),
				node(syntax.KindRCurly, 1, 20, "}"),
			),
		),
	)

	vs := runLeftCurly(t, nil, src, root)
	require.Equal(t, []string{"line.break.after"}, keys(vs))
	assert.Equal(t, 10, vs[0].Column)
}

func TestLeftCurlyEmptyBodyExempt(t *testing.T) {
	src := "void m() {}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindMethodDef, 1, 1, "",
			node(syntax.KindModifiers, 1, 1, ""),
			node(syntax.KindType, 1, 1, "void"),
			node(syntax.KindIdent, 1, 6, "m"),
			node(syntax.KindSlist, 1, 10, "{",
				node(syntax.KindRCurly, 1, 11, "}"),
			),
		),
	)

	for _, option := range []string{"eol", "nl", "nlow"} {
		t.Run(option, func(t *testing.T) {
			assert.Empty(t, runLeftCurly(t, map[string]any{"option": option}, src, root))
		})
	}
}

func TestLeftCurlyAnnotationOnOwnLine(t *testing.T) {
	// Placement is evaluated against the signature line, not the
	// annotation line.
	src := "@Override\nvoid m() {\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindMethodDef, 1, 1, "",
			node(syntax.KindModifiers, 1, 1, "",
				node(syntax.KindAnnotation, 1, 1, "@Override"),
			),
			node(syntax.KindType, 2, 1, "void"),
			node(syntax.KindIdent, 2, 6, "m"),
			node(syntax.KindSlist, 2, 10, "{",
				node(syntax.KindExprStmt, 3, 5, ""),
				node(syntax.KindRCurly, 4, 1, "}"),
			),
		),
	)

	for _, option := range []string{"eol", "nlow"} {
		t.Run(option, func(t *testing.T) {
			assert.Empty(t, runLeftCurly(t, map[string]any{"option": option}, src, root))
		})
	}
}

func TestLeftCurlyAnnotationsPackedOnDeclarationLine(t *testing.T) {
	// Several annotations share the declaration's first line; the
	// earliest of them is the effective start token.
	src := "@A @B void m()\n{\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindMethodDef, 1, 1, "",
			node(syntax.KindModifiers, 1, 1, "",
				node(syntax.KindAnnotation, 1, 1, "@A"),
				node(syntax.KindAnnotation, 1, 4, "@B"),
			),
			node(syntax.KindType, 1, 7, "void"),
			node(syntax.KindIdent, 1, 12, "m"),
			node(syntax.KindSlist, 2, 1, "{",
				node(syntax.KindExprStmt, 3, 5, ""),
				node(syntax.KindRCurly, 4, 1, "}"),
			),
		),
	)

	// nlow: brace exactly one line below the start, whitespace-preceded,
	// and it would have fit on the previous line.
	vs := runLeftCurly(t, map[string]any{"option": "nlow"}, src, root)
	require.Equal(t, []string{"line.previous"}, keys(vs))
}

func TestLeftCurlySwitch(t *testing.T) {
	src := "switch (x) {\ncase 1:\n    break;\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindSwitch, 1, 1, "switch",
			node(syntax.KindExpr, 1, 9, "x"),
			node(syntax.KindLCurly, 1, 12, "{"),
			node(syntax.KindCaseGroup, 2, 1, ""),
			node(syntax.KindRCurly, 4, 1, "}"),
		),
	)

	assert.Empty(t, runLeftCurly(t, nil, src, root))

	vs := runLeftCurly(t, map[string]any{"option": "nl"}, src, root)
	require.Equal(t, []string{"line.new"}, keys(vs))
	assert.Equal(t, 12, vs[0].Column)
}

func TestLeftCurlyEnumBraces(t *testing.T) {
	src := "enum E { A, B }"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindEnumDef, 1, 1, "enum",
			node(syntax.KindModifiers, 1, 1, ""),
			node(syntax.KindIdent, 1, 6, "E"),
			node(syntax.KindObjBlock, 1, 8, "",
				node(syntax.KindLCurly, 1, 8, "{"),
				node(syntax.KindEnumConstantDef, 1, 10, "A"),
				node(syntax.KindEnumConstantDef, 1, 13, "B"),
				node(syntax.KindRCurly, 1, 15, "}"),
			),
		),
	)

	t.Run("ignored by default", func(t *testing.T) {
		assert.Empty(t, runLeftCurly(t, nil, src, root))
	})

	t.Run("checked when ignoreEnums is false", func(t *testing.T) {
		vs := runLeftCurly(t, map[string]any{"ignoreEnums": false}, src, root)
		require.Equal(t, []string{"line.break.after"}, keys(vs))
		assert.Equal(t, 8, vs[0].Column)
	})
}

func TestLeftCurlyBraceOnFirstLineUsesSentinel(t *testing.T) {
	// A brace on line 1 has no previous line; maxLineLength is
	// substituted so line.previous can never fire.
	src := "{\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindDo, 1, 1, "do",
			node(syntax.KindSlist, 1, 1, "{",
				node(syntax.KindExprStmt, 2, 5, ""),
				node(syntax.KindRCurly, 3, 1, "}"),
			),
		),
	)
	assert.Empty(t, runLeftCurly(t, nil, src, root))
}

func TestLeftCurlyMaxLineLengthBound(t *testing.T) {
	src := "if (verylng)\n{\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 2, 1, "{",
				node(syntax.KindExprStmt, 3, 5, ""),
				node(syntax.KindRCurly, 4, 1, "}"),
			),
		),
	)

	// Previous line is 12 characters; with the limit at 12 the brace
	// could not have fit there, so the placement is accepted.
	assert.Empty(t, runLeftCurly(t, map[string]any{"maxLineLength": 12}, src, root))

	vs := runLeftCurly(t, map[string]any{"maxLineLength": 14}, src, root)
	require.Equal(t, []string{"line.previous"}, keys(vs))
}

func TestLeftCurlyNextLineIfWrapped(t *testing.T) {
	t.Run("same line always accepted", func(t *testing.T) {
		src := "if (x) {\n    y();\n}"
		root := node(syntax.KindCompilationUnit, 1, 1, "",
			node(syntax.KindIf, 1, 1, "if",
				node(syntax.KindSlist, 1, 8, "{",
					node(syntax.KindExprStmt, 2, 5, ""),
					node(syntax.KindRCurly, 3, 1, "}"),
				),
			),
		)
		assert.Empty(t, runLeftCurly(t, map[string]any{"option": "nlow"}, src, root))
	})

	t.Run("next line with leading code", func(t *testing.T) {
		src := "if (x)\ny(); {\n}"
		root := node(syntax.KindCompilationUnit, 1, 1, "",
			node(syntax.KindIf, 1, 1, "if",
				node(syntax.KindSlist, 2, 6, "{",
					node(syntax.KindExprStmt, 2, 1, ""),
					node(syntax.KindRCurly, 3, 1, "}"),
				),
			),
		)
		vs := runLeftCurly(t, map[string]any{"option": "nlow"}, src, root)
		require.Equal(t, []string{"line.new"}, keys(vs))
	})

	t.Run("separated by blank line must be alone", func(t *testing.T) {
		src := "if (x)\n\ny(); {\n}"
		root := node(syntax.KindCompilationUnit, 1, 1, "",
			node(syntax.KindIf, 1, 1, "if",
				node(syntax.KindSlist, 3, 6, "{",
					node(syntax.KindExprStmt, 3, 1, ""),
					node(syntax.KindRCurly, 4, 1, "}"),
				),
			),
		)
		vs := runLeftCurly(t, map[string]any{"option": "nlow"}, src, root)
		require.Equal(t, []string{"line.new"}, keys(vs))
	})

	t.Run("separated by blank line and alone is accepted", func(t *testing.T) {
		src := "if (x)\n\n    {\n}"
		root := node(syntax.KindCompilationUnit, 1, 1, "",
			node(syntax.KindIf, 1, 1, "if",
				node(syntax.KindSlist, 3, 5, "{",
					node(syntax.KindExprStmt, 4, 1, ""),
					node(syntax.KindRCurly, 4, 1, "}"),
				),
			),
		)
		assert.Empty(t, runLeftCurly(t, map[string]any{"option": "nlow"}, src, root))
	})
}

func TestLeftCurlySkipsConstructsWithoutBrace(t *testing.T) {
	src := "abstract void m();\nif (x) y();"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindMethodDef, 1, 1, "",
			node(syntax.KindModifiers, 1, 1, "",
				node(syntax.KindModifier, 1, 1, "abstract"),
			),
			node(syntax.KindType, 1, 10, "void"),
			node(syntax.KindIdent, 1, 15, "m"),
		),
		node(syntax.KindIf, 2, 1, "if",
			node(syntax.KindExpr, 2, 5, "x"),
			node(syntax.KindExprStmt, 2, 8, ""),
		),
	)
	assert.Empty(t, runLeftCurly(t, nil, src, root))
}

func TestLeftCurlyElseIfChainIgnored(t *testing.T) {
	src := "if (x) {\n} else if (y) {\n}"
	inner := node(syntax.KindIf, 2, 8, "if",
		node(syntax.KindSlist, 2, 15, "{",
			node(syntax.KindRCurly, 3, 1, "}"),
		),
	)
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 1, 8, "{",
				node(syntax.KindRCurly, 2, 1, "}"),
			),
			node(syntax.KindElse, 2, 3, "else", inner),
		),
	)

	// The else chains to another if: no brace of its own, silently
	// ignored. The chained if's brace is still checked (and passes).
	assert.Empty(t, runLeftCurly(t, nil, src, root))
}

func TestLeftCurlyElseWithoutBodyIsStructuralDefect(t *testing.T) {
	src := "else"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindElse, 1, 1, "else"),
	)

	check, err := blocks.NewLeftCurly(nil)
	require.NoError(t, err)
	ctx := lint.NewContext(syntax.NewSourceFile("T.java", []byte(src)))
	err = lint.NewWalker(check).Walk(ctx, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no body")
}

func TestLeftCurlyIdempotence(t *testing.T) {
	src := "if (x)\n{\n    y();\n}"
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 2, 1, "{",
				node(syntax.KindExprStmt, 3, 5, ""),
				node(syntax.KindRCurly, 4, 1, "}"),
			),
		),
	)

	first := runLeftCurly(t, nil, src, root)
	second := runLeftCurly(t, nil, src, root)
	assert.Equal(t, first, second)
}

func TestLeftCurlyConfigurationErrors(t *testing.T) {
	_, err := blocks.NewLeftCurly(map[string]any{"option": "banana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "banana")

	_, err = blocks.NewLeftCurly(map[string]any{"maxLineLength": 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxLineLength")
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]blocks.Policy{
		"eol":  blocks.PolicyEndOfLine,
		"nl":   blocks.PolicyNextLine,
		"nlow": blocks.PolicyNextLineIfWrapped,
	} {
		p, err := blocks.ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, want, p)
		assert.Equal(t, name, p.String())
	}

	_, err := blocks.ParsePolicy("end-of-line")
	assert.Error(t, err)
}
