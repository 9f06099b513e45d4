package document

import (
	"strings"

	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

// Render encodes a normalized tree as indentation-coded text. The root
// node itself is not printed; its children start at depth 0. Every
// directory whose subtree produced at least one line gets a fold span over
// those lines with priority 100 minus its depth. The document starts fully
// expanded.
func Render(rootDir string, root *tree.Node, isDir DirChecker) *Document {
	d := &Document{
		Root:      normalize(rootDir),
		spans:     make(map[string]Span),
		collapsed: make(map[string]bool),
		isDir:     isDir,
	}
	for _, child := range root.Children {
		d.render(child, 0, d.Root)
	}
	return d
}

func (d *Document) render(n *tree.Node, depth int, parentPath string) {
	path := parentPath + Separator + n.Name
	line := strings.Repeat(Indent, depth) + n.Name
	if n.IsDir {
		line += Separator
	}
	d.Lines = append(d.Lines, line)

	if !n.IsDir {
		return
	}
	own := len(d.Lines) - 1
	for _, child := range n.Children {
		d.render(child, depth+1, path)
	}
	if len(d.Lines) > own+1 {
		d.spans[path] = Span{
			Start:    own + 1,
			End:      len(d.Lines),
			Priority: 100 - depth,
		}
	}
}

// Text joins every line, folded or not, into the full expanded rendering.
func (d *Document) Text() string {
	return strings.Join(d.Lines, "\n")
}
