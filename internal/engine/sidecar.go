package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/javalint/javalint/pkg/syntax"
)

// TreeSuffix is appended to a source file's path to locate its
// serialized syntax tree.
const TreeSuffix = ".tree.json"

// SidecarParser loads syntax trees produced by an external Java
// frontend and stored next to each source file as <name>.java.tree.json.
type SidecarParser struct{}

// Parse reads and decodes the sidecar tree for filename. The source
// bytes are unused; positions in the tree refer back to them.
func (SidecarParser) Parse(filename string, _ []byte) (*syntax.Node, error) {
	data, err := os.ReadFile(filename + TreeSuffix)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no syntax tree for %s: expected %s", filename, filename+TreeSuffix)
		}
		return nil, err
	}
	root, err := syntax.UnmarshalTree(data)
	if err != nil {
		return nil, fmt.Errorf("decoding syntax tree for %s: %w", filename, err)
	}
	return root, nil
}
