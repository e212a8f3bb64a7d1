package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javalint/javalint/pkg/lint"
	"github.com/javalint/javalint/pkg/lint/rules/blocks"
	"github.com/javalint/javalint/pkg/syntax"
)

func runNeedBraces(t *testing.T, root *syntax.Node) []lint.Violation {
	t.Helper()
	check, err := blocks.NewNeedBraces(nil)
	require.NoError(t, err)

	ctx := lint.NewContext(syntax.NewSourceFile("T.java", nil))
	require.NoError(t, lint.NewWalker(check).Walk(ctx, root))
	return ctx.Violations()
}

func TestNeedBracesBareBody(t *testing.T) {
	tests := []struct {
		name    string
		kind    syntax.Kind
		keyword string
	}{
		{"if", syntax.KindIf, "if"},
		{"else", syntax.KindElse, "else"},
		{"for", syntax.KindFor, "for"},
		{"while", syntax.KindWhile, "while"},
		{"do", syntax.KindDo, "do"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := node(syntax.KindCompilationUnit, 1, 1, "",
				node(tt.kind, 2, 5, tt.keyword,
					node(syntax.KindExprStmt, 2, 12, ""),
				),
			)

			vs := runNeedBraces(t, root)
			require.Len(t, vs, 1)
			assert.Equal(t, "needBraces", vs[0].MessageKey)
			assert.Equal(t, 2, vs[0].Line)
			assert.Equal(t, 5, vs[0].Column)
			assert.Equal(t, []any{tt.keyword}, vs[0].Args)
		})
	}
}

func TestNeedBracesBracedBodyAccepted(t *testing.T) {
	root := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 2, 5, "if",
			node(syntax.KindExpr, 2, 9, "x"),
			node(syntax.KindSlist, 2, 12, "{",
				node(syntax.KindRCurly, 3, 5, "}"),
			),
		),
	)
	assert.Empty(t, runNeedBraces(t, root))
}

func TestNeedBracesElseIfChain(t *testing.T) {
	// else if: the else has no block of its own, only the chained if is
	// held to the rule.
	braced := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 1, 8, "{"),
			node(syntax.KindElse, 2, 3, "else",
				node(syntax.KindIf, 2, 8, "if",
					node(syntax.KindSlist, 2, 15, "{"),
				),
			),
		),
	)
	assert.Empty(t, runNeedBraces(t, braced))

	bare := node(syntax.KindCompilationUnit, 1, 1, "",
		node(syntax.KindIf, 1, 1, "if",
			node(syntax.KindSlist, 1, 8, "{"),
			node(syntax.KindElse, 2, 3, "else",
				node(syntax.KindIf, 2, 8, "if",
					node(syntax.KindExprStmt, 2, 15, ""),
				),
			),
		),
	)
	vs := runNeedBraces(t, bare)
	require.Len(t, vs, 1)
	assert.Equal(t, []any{"if"}, vs[0].Args)
	assert.Equal(t, 8, vs[0].Column)
}
