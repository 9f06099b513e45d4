// Package fold remembers which directories a user has drilled into and
// replays that depth across local folding operations and full tree
// rebuilds.
package fold

import (
	"path"
	"sort"
	"strings"
)

// Set holds the most specific directory paths the user has opened. It is
// not the set of current folds: documents track those themselves. Entries
// are absolute paths without trailing separator.
type Set struct {
	paths map[string]bool
}

func NewSet() *Set {
	return &Set{paths: make(map[string]bool)}
}

// isAncestor reports whether a is a strict path-prefix ancestor of p.
func isAncestor(a, p string) bool {
	return a != p && strings.HasPrefix(p, a+"/")
}

func clean(p string) string {
	if p == "/" {
		return p
	}
	return strings.TrimSuffix(p, "/")
}

// Open records p as opened. Every remembered ancestor of p is dropped: p
// is more specific and implies them. Deeper remembered entries are left
// alone, even when p is their ancestor; only opening a deeper path prunes
// a shallower one, never the reverse.
func (s *Set) Open(p string) {
	p = clean(p)
	for e := range s.paths {
		if isAncestor(e, p) {
			delete(s.paths, e)
		}
	}
	s.paths[p] = true
}

// Close forgets p and everything remembered beneath it, returning the
// removed strict descendants so a caller can re-collapse them when p is
// reopened later. When p's immediate parent is left with nothing
// remembered beneath it, the parent is reinserted: it was open, and that
// fact must survive p being collapsed.
func (s *Set) Close(p string) []string {
	p = clean(p)
	var reopened []string
	for e := range s.paths {
		if e == p {
			delete(s.paths, e)
		} else if isAncestor(p, e) {
			delete(s.paths, e)
			reopened = append(reopened, e)
		}
	}
	sort.Strings(reopened)

	parent := path.Dir(p)
	if parent != p && parent != "/" && parent != "." {
		remembered := false
		for e := range s.paths {
			if isAncestor(parent, e) {
				remembered = true
				break
			}
		}
		if !remembered {
			s.paths[parent] = true
		}
	}
	return reopened
}

// Contains reports whether p itself is remembered.
func (s *Set) Contains(p string) bool {
	return s.paths[clean(p)]
}

// Paths returns the remembered paths in sorted order.
func (s *Set) Paths() []string {
	out := make([]string, 0, len(s.paths))
	for e := range s.paths {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of remembered paths.
func (s *Set) Len() int {
	return len(s.paths)
}

// Clear empties the set. Switching to an unrelated root leaves no depth
// worth replaying.
func (s *Set) Clear() {
	s.paths = make(map[string]bool)
}
