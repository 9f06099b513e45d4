package tree

// Node is one element of a directory tree: either a directory with an
// ordered child list, or a file. Names are unique within one child list and
// contain no path separator, except for compressed directory labels which
// carry the joined segments of a single-child chain.
type Node struct {
	Name     string
	IsDir    bool
	Children []*Node
}

// NewDir creates a directory node with the given children.
func NewDir(name string, children ...*Node) *Node {
	return &Node{Name: name, IsDir: true, Children: children}
}

// NewFile creates a file node.
func NewFile(name string) *Node {
	return &Node{Name: name, IsDir: false}
}

// Child returns the child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Count returns the total number of nodes in the subtree, excluding n itself.
func (n *Node) Count() int {
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Count()
	}
	return total
}
