package document

import "strings"

// Result is the outcome of a path→position lookup. Pos is valid only when
// Found is set. Best is the deepest header or leaf line the search matched
// on the way down, valid when BestOK is set, so callers can fall back to
// the closest ancestor of a path that no longer exists.
type Result struct {
	Pos    int
	Found  bool
	Best   int
	BestOK bool
}

// Navigate locates path in the document, starting the search from cursor.
// The lookup walks the path's segments at increasing depth; at each step it
// first checks whether the cursor already sits on the wanted header at the
// right depth, and otherwise searches forward, bounded by the end of the
// enclosing subtree so a same-named descendant of a sibling can never
// match. Compressed directory labels consume the longest matching run of
// remaining segments. The search does not descend into a collapsed
// directory; that directory's header becomes the best match instead.
// Failing to match even the first segment returns a zero Result: not
// found, no best match, cursor untouched by the caller.
func (d *Document) Navigate(cursor int, path string) Result {
	return d.navigate(cursor, path, false)
}

// Locate is Navigate without the fold barrier: collapsed directories are
// searched through. Fold bookkeeping uses it to find remembered paths whose
// text is currently hidden.
func (d *Document) Locate(path string) Result {
	return d.navigate(0, path, true)
}

func (d *Document) navigate(cursor int, path string, throughFolds bool) Result {
	rel, ok := d.relativize(path)
	if !ok {
		return Result{}
	}
	remaining := strings.Split(rel, Separator)

	var res Result
	depth := 0
	start, end := 0, len(d.Lines)
	for len(remaining) > 0 {
		line, consumed := d.matchSegment(cursor, start, end, depth, remaining)
		if line < 0 {
			return res
		}
		res.Best, res.BestOK = line, true
		remaining = remaining[consumed:]
		if len(remaining) == 0 {
			res.Pos, res.Found = line, true
			return res
		}
		if !isDirLine(d.Lines[line]) {
			return res
		}
		if !throughFolds {
			if p, err := d.PathAt(line); err == nil && d.IsCollapsed(p) {
				return res
			}
		}
		depth = depthOf(d.Lines[line]) + 1
		start, end = line+1, d.subtreeEnd(line)
	}
	return res
}

// matchSegment finds a line in [start,end) at exactly depth whose label
// matches the longest possible joined run of the remaining segments. It
// returns the line and how many segments the match consumed, or -1.
func (d *Document) matchSegment(cursor, start, end, depth int, remaining []string) (int, int) {
	for take := len(remaining); take >= 1; take-- {
		label := strings.Join(remaining[:take], Separator)
		// Directories deeper in the path must render as directory lines;
		// only the final segment may be a file.
		mustBeDir := take < len(remaining)
		if cursor >= start && cursor < end && d.lineMatches(cursor, depth, label, mustBeDir) {
			return cursor, take
		}
		for i := start; i < end; i++ {
			if d.lineMatches(i, depth, label, mustBeDir) {
				return i, take
			}
		}
	}
	return -1, 0
}

func (d *Document) lineMatches(line, depth int, label string, mustBeDir bool) bool {
	text := d.Lines[line]
	if depthOf(text) != depth || nameOf(text) != label {
		return false
	}
	return !mustBeDir || isDirLine(text)
}

// subtreeEnd returns the index one past the last descendant line of the
// node at line: the first following line at the same or shallower depth.
func (d *Document) subtreeEnd(line int) int {
	depth := depthOf(d.Lines[line])
	end := line + 1
	for end < len(d.Lines) && depthOf(d.Lines[end]) > depth {
		end++
	}
	return end
}

// relativize turns an absolute or root-relative path into the
// slash-joined segment list under the document root. The root itself has
// no line and cannot be navigated to.
func (d *Document) relativize(path string) (string, bool) {
	p := normalize(strings.TrimSpace(path))
	if p == "" || p == d.Root {
		return "", false
	}
	if strings.HasPrefix(p, d.Root+Separator) {
		p = strings.TrimPrefix(p, d.Root+Separator)
	}
	if p == "" || strings.HasPrefix(p, Separator) {
		return "", false
	}
	return p, true
}
