// Package document is the bidirectional codec between a directory tree and
// its indentation-coded text rendering. The text is the source of truth for
// ancestry: no parent pointers are kept, and position→path resolution works
// purely from line depth and a backward scan.
package document

import (
	"sort"
	"strings"
)

// Indent is the per-depth indentation marker. Depth is recovered from a
// line by counting leading repetitions of it.
const Indent = "  "

// Separator terminates directory lines and joins path segments.
const Separator = "/"

// Span is a fold range over the document covering a directory's rendered
// children, [Start, End). Priority is 100 minus the directory's depth, so
// an outer fold dominates an inner one at an overlapping boundary.
type Span struct {
	Start    int
	End      int
	Priority int
}

// Contains reports whether line falls inside the span.
func (s Span) Contains(line int) bool {
	return line >= s.Start && line < s.End
}

// DirChecker answers whether an absolute path is a live directory. Used
// only to decide the trailing separator of resolved paths.
type DirChecker func(path string) bool

// Document is one rendered view of a tree: the lines, the fold spans every
// non-leaf directory could collapse to, and the set of directories that
// currently are collapsed. Collapsing hides text; it never removes it.
type Document struct {
	// Root is the absolute collection root. It is not itself rendered.
	Root string

	// Lines holds the rendered text, one node per line. Directory lines
	// end with Separator.
	Lines []string

	spans     map[string]Span
	collapsed map[string]bool
	isDir     DirChecker
}

// Span returns the fold span for a directory path, if it has one. Leaf
// directories and files have none.
func (d *Document) Span(path string) (Span, bool) {
	s, ok := d.spans[normalize(path)]
	return s, ok
}

// IsCollapsed reports whether path is currently collapsed.
func (d *Document) IsCollapsed(path string) bool {
	return d.collapsed[normalize(path)]
}

// Collapse activates the fold span of path. It reports false when path has
// no span or is already collapsed.
func (d *Document) Collapse(path string) bool {
	key := normalize(path)
	if _, ok := d.spans[key]; !ok || d.collapsed[key] {
		return false
	}
	d.collapsed[key] = true
	return true
}

// CollapseAll activates every span in the document.
func (d *Document) CollapseAll() {
	for key := range d.spans {
		d.collapsed[key] = true
	}
}

// ExpandAll deactivates every span in the document.
func (d *Document) ExpandAll() {
	d.collapsed = make(map[string]bool)
}

// Expand deactivates the fold span of path. With recursive set, every
// collapsed span nested inside it is deactivated too. It reports false
// when path has no span.
func (d *Document) Expand(path string, recursive bool) bool {
	key := normalize(path)
	span, ok := d.spans[key]
	if !ok {
		return false
	}
	delete(d.collapsed, key)
	if recursive {
		for other := range d.collapsed {
			inner := d.spans[other]
			if inner.Start >= span.Start && inner.End <= span.End {
				delete(d.collapsed, other)
			}
		}
	}
	return true
}

// Reveal deactivates every collapsed span containing line, exposing the
// line without touching anything below it. This is the non-recording
// reveal used when replaying remembered paths after a rebuild.
func (d *Document) Reveal(line int) {
	for key := range d.collapsed {
		if d.spans[key].Contains(line) {
			delete(d.collapsed, key)
		}
	}
}

// CollapsedPaths returns the collapsed directory paths in span order.
func (d *Document) CollapsedPaths() []string {
	paths := make([]string, 0, len(d.collapsed))
	for key := range d.collapsed {
		paths = append(paths, key)
	}
	sort.Slice(paths, func(i, j int) bool {
		return d.spans[paths[i]].Start < d.spans[paths[j]].Start
	})
	return paths
}

// VisibleLine is one displayable line: its index into Lines, its text, and
// whether it is the header of a collapsed directory.
type VisibleLine struct {
	Index  int
	Text   string
	Folded bool
}

// VisibleLines returns the lines not hidden by any collapsed span. The
// header line above a collapsed span is marked Folded so the display can
// attach a placeholder. When collapsed spans overlap at a boundary, the
// highest-priority (outermost) span decides visibility first, which its
// priority ordering makes equivalent to the plain union.
func (d *Document) VisibleLines() []VisibleLine {
	hidden := make([]bool, len(d.Lines))
	folded := make(map[int]bool)

	active := d.CollapsedPaths()
	sort.SliceStable(active, func(i, j int) bool {
		return d.spans[active[i]].Priority > d.spans[active[j]].Priority
	})
	for _, key := range active {
		span := d.spans[key]
		for i := span.Start; i < span.End; i++ {
			hidden[i] = true
		}
		folded[span.Start-1] = true
	}

	var out []VisibleLine
	for i, text := range d.Lines {
		if hidden[i] {
			continue
		}
		out = append(out, VisibleLine{Index: i, Text: text, Folded: folded[i]})
	}
	return out
}

// normalize strips the trailing separator so resolved directory paths and
// bare paths key the same span.
func normalize(path string) string {
	if path == Separator {
		return path
	}
	return strings.TrimSuffix(path, Separator)
}

// depthOf counts leading indent markers.
func depthOf(line string) int {
	depth := 0
	for strings.HasPrefix(line, Indent) {
		depth++
		line = line[len(Indent):]
	}
	return depth
}

// nameOf strips indentation and the directory separator suffix, leaving
// the node's local label.
func nameOf(line string) string {
	return strings.TrimSuffix(strings.TrimLeft(line, " "), Separator)
}

// isDirLine reports whether the line renders a directory.
func isDirLine(line string) bool {
	return strings.HasSuffix(line, Separator)
}
