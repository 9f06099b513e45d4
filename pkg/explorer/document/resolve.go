package document

import (
	"fmt"
	"strings"
)

// PathAt reconstructs the absolute path of the node on the given line.
// Ancestry is recovered from the text alone: starting at the line, the
// nearest preceding line whose depth is exactly one less supplies the next
// ancestor label, repeated until depth zero. The resolved path carries a
// trailing separator exactly when the live filesystem says it is a
// directory, so callers can always tell directory from file.
func (d *Document) PathAt(line int) (string, error) {
	if line < 0 || line >= len(d.Lines) {
		return "", fmt.Errorf("line %d out of range [0,%d)", line, len(d.Lines))
	}

	segments := []string{nameOf(d.Lines[line])}
	depth := depthOf(d.Lines[line])
	for i := line - 1; i >= 0 && depth > 0; i-- {
		if depthOf(d.Lines[i]) != depth-1 {
			continue
		}
		segments = append([]string{nameOf(d.Lines[i])}, segments...)
		depth--
	}

	path := d.Root + Separator + strings.Join(segments, Separator)
	if len(path) > 0 && d.isDir != nil && d.isDir(path) {
		path += Separator
	}
	return path, nil
}
