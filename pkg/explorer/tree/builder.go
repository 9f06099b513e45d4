package tree

import (
	"path"
	"strings"
)

// Entry is one row of a flat directory listing: a slash-separated path
// relative to the collection root, tagged as directory or file. Collector
// output marks directories with a trailing separator; ParseEntry recovers
// the tag from that marker.
type Entry struct {
	Path  string
	IsDir bool
}

// ParseEntry converts one raw listing line into an Entry. A trailing slash
// tags the entry as a directory and is stripped from the stored path.
// Leading "./" prefixes, as produced by find-style listings, are stripped
// too. Empty lines and the "." entry yield ok=false.
func ParseEntry(line string) (Entry, bool) {
	isDir := strings.HasSuffix(line, "/")
	p := strings.TrimSuffix(line, "/")
	p = strings.TrimPrefix(p, "./")
	p = path.Clean(p)
	if p == "" || p == "." || p == "/" {
		return Entry{}, false
	}
	return Entry{Path: p, IsDir: isDir}, true
}

// FromEntries builds a tree from a flat list of tagged paths. For each entry
// the accumulator is descended segment by segment, matching an existing
// child by name or inserting a new one; interior segments always become
// directories. The finished root carries rootName.
func FromEntries(entries []Entry, rootName string) *Node {
	root := NewDir("")
	for _, e := range entries {
		insert(root, strings.Split(e.Path, "/"), e.IsDir)
	}
	root.Name = rootName
	return root
}

func insert(dir *Node, segments []string, isDir bool) {
	if len(segments) == 0 {
		return
	}
	name := segments[0]
	if name == "" {
		insert(dir, segments[1:], isDir)
		return
	}
	child := dir.Child(name)
	if child == nil {
		if len(segments) > 1 || isDir {
			child = NewDir(name)
		} else {
			child = NewFile(name)
		}
		dir.Children = append(dir.Children, child)
	}
	insert(child, segments[1:], isDir)
}
