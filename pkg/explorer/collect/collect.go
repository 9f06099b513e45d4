// Package collect enumerates a directory subtree into a tree.Node, via one
// of three interchangeable strategies: a synchronous recursive walk, a
// one-shot external listing process, and a cooperative incremental walk that
// is time-sliced across idle intervals.
package collect

import (
	"regexp"
	"strings"

	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

// DefaultOmitPattern skips dotfiles, lockfiles and editor backups.
const DefaultOmitPattern = `^\.|^#|~$`

// Filter decides which entries a collection keeps. The pattern is matched
// against base names only; a matching directory is skipped with its whole
// subtree. A nil Filter keeps everything except "." and "..".
type Filter struct {
	omit *regexp.Regexp
}

// NewFilter compiles pattern into a Filter. An empty pattern omits nothing.
func NewFilter(pattern string) (*Filter, error) {
	if pattern == "" {
		return &Filter{}, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Filter{omit: re}, nil
}

// Keep reports whether an entry with the given base name survives.
func (f *Filter) Keep(name string) bool {
	if name == "." || name == ".." || name == "" {
		return false
	}
	if f == nil || f.omit == nil {
		return true
	}
	return !f.omit.MatchString(name)
}

// KeepPath applies Keep to every segment of a slash path, so entries under
// an omitted directory are dropped even when a flat listing surfaces them
// individually.
func (f *Filter) KeepPath(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if !f.Keep(seg) {
			return false
		}
	}
	return true
}

// Collector enumerates rootDir into an unnormalized tree whose root node
// carries rootDir's base name.
type Collector interface {
	Collect(rootDir string) (*tree.Node, error)
}

// AsyncCollector delivers its result through a completion callback instead
// of a return value. done receives either a tree or an error, never both.
type AsyncCollector interface {
	CollectAsync(rootDir string, done func(*tree.Node, error))
}
