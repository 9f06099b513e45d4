package fold

import (
	"strings"

	"github.com/Archenoth/project-explorer/pkg/explorer/document"
)

// Manager applies fold operations to the current document while keeping
// the remembered-open Set consistent. One Manager belongs to one logical
// view; it survives document rebuilds of the same root and is reset when
// the view switches to a different root.
type Manager struct {
	set *Set
	doc *document.Document
}

func NewManager() *Manager {
	return &Manager{set: NewSet()}
}

// SetDocument points the manager at a freshly rendered document. With
// sameRoot the remembered set is kept for replay; otherwise it is cleared.
func (m *Manager) SetDocument(doc *document.Document, sameRoot bool) {
	m.doc = doc
	if !sameRoot {
		m.set.Clear()
	}
}

// OpenPaths exposes the remembered set, mostly for inspection and tests.
func (m *Manager) OpenPaths() []string {
	return m.set.Paths()
}

// IsFolded reports whether path is currently collapsed in the document.
func (m *Manager) IsFolded(path string) bool {
	return m.doc != nil && m.doc.IsCollapsed(path)
}

// Fold collapses path's children. Leaf directories, files, and
// already-collapsed directories are silent no-ops. Descendant paths the
// user had drilled into are forgotten by the set but re-collapsed inside
// the hidden span, so unfolding path later restores the same drill
// boundary instead of flattening the subtree open.
func (m *Manager) Fold(path string) bool {
	if m.doc == nil {
		return false
	}
	if _, ok := m.doc.Span(path); !ok {
		return false
	}
	if m.doc.IsCollapsed(path) {
		return false
	}

	reopened := m.set.Close(path)
	m.doc.Collapse(path)
	for _, p := range reopened {
		if res := m.doc.Locate(p); res.Found {
			if key, err := m.doc.PathAt(res.Pos); err == nil {
				m.doc.Collapse(strings.TrimSuffix(key, document.Separator))
			}
		}
	}
	return true
}

// Unfold expands path's children and records path as opened. With
// recursive set, every fold nested inside path's span is expanded too.
func (m *Manager) Unfold(path string, recursive bool) bool {
	if m.doc == nil {
		return false
	}
	if !m.doc.Expand(path, recursive) {
		return false
	}
	m.set.Open(strings.TrimSuffix(path, document.Separator))
	return true
}

// FoldAll collapses every directory in the document without touching the
// remembered set, the usual state right after a rebuild and before
// RestoreAfterRebuild replays the remembered depth.
func (m *Manager) FoldAll() {
	if m.doc != nil {
		m.doc.CollapseAll()
	}
}

// RestoreAfterRebuild re-reveals every remembered path in the current
// document: folds are removed along the whole chain from the remembered
// node up to the root, the node's own fold included, so its children are
// visible again. The replay is non-recording (the set is not mutated)
// and remembered paths missing from the rebuilt tree are skipped silently.
func (m *Manager) RestoreAfterRebuild() {
	if m.doc == nil {
		return
	}
	for _, p := range m.set.Paths() {
		res := m.doc.Locate(p)
		if !res.Found {
			continue
		}
		m.doc.Reveal(res.Pos)
		if key, err := m.doc.PathAt(res.Pos); err == nil {
			m.doc.Expand(strings.TrimSuffix(key, document.Separator), false)
		}
	}
}
