package tree

import "sort"

// Sort orders every child list in the subtree with directories before
// files, and ascending code-point order by name within each group. Names
// are unique within a list, so the order is total.
func Sort(n *Node) {
	if len(n.Children) == 0 {
		return
	}
	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, c := range n.Children {
		Sort(c)
	}
}

// Compress merges chains of single-child directories into one node whose
// name joins the chain's segments, so deeply nested package-style paths
// occupy one display line. Directories with zero children and files are
// returned unchanged. The root itself is never merged into its child.
func Compress(n *Node) {
	for i, c := range n.Children {
		n.Children[i] = compress(c)
	}
}

func compress(n *Node) *Node {
	if !n.IsDir {
		return n
	}
	for len(n.Children) == 1 && n.Children[0].IsDir {
		child := n.Children[0]
		n = &Node{
			Name:     n.Name + "/" + child.Name,
			IsDir:    true,
			Children: child.Children,
		}
	}
	for i, c := range n.Children {
		n.Children[i] = compress(c)
	}
	return n
}
