package collect

import (
	"path/filepath"

	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

// Walker is the synchronous collection strategy: a depth-first recursive
// walk that builds the tree directly, with no flat-list intermediate.
type Walker struct {
	FS     Filesystem
	Filter *Filter
}

func NewWalker(fs Filesystem, filter *Filter) *Walker {
	return &Walker{FS: fs, Filter: filter}
}

// Collect walks rootDir depth-first. Unreadable directories contribute an
// empty child list.
func (w *Walker) Collect(rootDir string) (*tree.Node, error) {
	root := tree.NewDir(filepath.Base(rootDir))
	root.Children = w.walk(rootDir)
	return root, nil
}

func (w *Walker) walk(dir string) []*tree.Node {
	var children []*tree.Node
	for _, e := range w.FS.ListEntries(dir) {
		if !w.Filter.Keep(e.Name) {
			continue
		}
		if e.IsDir {
			child := tree.NewDir(e.Name)
			child.Children = w.walk(filepath.Join(dir, e.Name))
			children = append(children, child)
		} else {
			children = append(children, tree.NewFile(e.Name))
		}
	}
	return children
}
