package syntax

// Parser produces a syntax tree for one source file. Parsing is owned by
// an external collaborator; the lint engine only consumes the tree.
type Parser interface {
	// Parse returns the tree root for the given file contents.
	Parse(filename string, src []byte) (*Node, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(filename string, src []byte) (*Node, error)

// Parse implements Parser.
func (f ParserFunc) Parse(filename string, src []byte) (*Node, error) {
	return f(filename, src)
}
