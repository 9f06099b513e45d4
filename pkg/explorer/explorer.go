// Package explorer ties the collection, normalization, rendering, and fold
// layers into one per-view state: a root directory, the current rendered
// document, the remembered open paths, and a cursor. Everything runs on a
// single logical thread; the only coordination state is the rebuild
// reentrancy guard.
package explorer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Archenoth/project-explorer/pkg/explorer/collect"
	"github.com/Archenoth/project-explorer/pkg/explorer/document"
	"github.com/Archenoth/project-explorer/pkg/explorer/fold"
	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

var (
	// ErrRebuildInProgress rejects a rebuild requested while one is still
	// in flight. The in-flight build is neither queued behind nor canceled.
	ErrRebuildInProgress = errors.New("rebuild already in progress")
	// ErrCollectFailed wraps collection errors. The reentrancy guard is
	// already cleared when it surfaces, so the view stays rebuildable.
	ErrCollectFailed = errors.New("collection failed")
	// ErrNotFound reports a navigation target absent from the document.
	ErrNotFound = errors.New("path not found")
	// ErrNoDocument reports an operation before the first build.
	ErrNoDocument = errors.New("no document built")
)

// Explorer is one logical view over a directory subtree.
type Explorer struct {
	cfg    Config
	fs     collect.Filesystem
	sched  collect.Scheduler
	logger *log.Logger

	root       string
	doc        *document.Document
	folds      *fold.Manager
	cursor     int
	rebuilding bool
	generation int
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithFilesystem substitutes the filesystem capability, mainly for tests.
func WithFilesystem(fs collect.Filesystem) Option {
	return func(e *Explorer) { e.fs = fs }
}

// WithScheduler substitutes the incremental strategy's scheduler.
func WithScheduler(s collect.Scheduler) Option {
	return func(e *Explorer) { e.sched = s }
}

// WithLogger attaches a logger; the explorer logs at debug level only.
func WithLogger(l *log.Logger) Option {
	return func(e *Explorer) { e.logger = l }
}

// New validates cfg and creates an empty view. Nothing is collected until
// Build.
func New(cfg Config, opts ...Option) (*Explorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Explorer{
		cfg:    cfg,
		fs:     collect.OSFilesystem{},
		folds:  fold.NewManager(),
		logger: log.New(io.Discard),
	}
	e.sched = collect.IdleScheduler{Interval: cfg.IdleInterval}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Root returns the current collection root, empty before the first Build.
func (e *Explorer) Root() string { return e.root }

// Document returns the current rendered document, nil before the first
// Build.
func (e *Explorer) Document() *document.Document { return e.doc }

// Cursor returns the cursor's line index into the document.
func (e *Explorer) Cursor() int { return e.cursor }

// SetCursor moves the cursor, clamped to the document.
func (e *Explorer) SetCursor(line int) {
	if e.doc == nil || line < 0 {
		e.cursor = 0
		return
	}
	if max := len(e.doc.Lines) - 1; line > max {
		line = max
	}
	e.cursor = line
}

// Build collects rootDir and installs its document. Building a different
// root drops the remembered open paths; building the same root is a
// rebuild and replays them.
func (e *Explorer) Build(rootDir string) error {
	if e.rebuilding {
		return ErrRebuildInProgress
	}
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}
	sameRoot := abs == e.root && e.doc != nil
	if !sameRoot {
		e.generation++ // abandon continuations of the previous root
	}
	e.root = abs
	return e.rebuild(sameRoot)
}

// Rebuild re-collects the current root, preserving fold memory.
func (e *Explorer) Rebuild() error {
	if e.root == "" {
		return ErrNoDocument
	}
	if e.rebuilding {
		return ErrRebuildInProgress
	}
	return e.rebuild(true)
}

func (e *Explorer) rebuild(sameRoot bool) error {
	e.rebuilding = true
	start := time.Now()
	node, err := e.collectTree()
	if err != nil {
		e.rebuilding = false
		return fmt.Errorf("%w: %v", ErrCollectFailed, err)
	}
	e.install(node, sameRoot)
	e.rebuilding = false
	e.logger.Debug("built document",
		"root", e.root, "strategy", e.cfg.Strategy,
		"lines", len(e.doc.Lines), "elapsed", time.Since(start))
	return nil
}

// BuildAsync is Build through the collection strategy's own callback
// path: the document is installed and done invoked when collection
// completes. A build already in flight is rejected through done with
// ErrRebuildInProgress.
func (e *Explorer) BuildAsync(rootDir string, done func(error)) {
	if e.rebuilding {
		e.logger.Debug("rebuild rejected, one already in flight", "root", e.root)
		done(ErrRebuildInProgress)
		return
	}
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		done(fmt.Errorf("resolving root: %w", err))
		return
	}
	sameRoot := abs == e.root && e.doc != nil
	if !sameRoot {
		e.generation++
	}
	e.root = abs
	e.rebuildAsync(sameRoot, done)
}

// RebuildAsync is Rebuild through the collection strategy's own callback
// path. done fires exactly once unless the view is closed or switched
// mid-build, in which case the build is abandoned silently.
func (e *Explorer) RebuildAsync(done func(error)) {
	if e.root == "" {
		done(ErrNoDocument)
		return
	}
	if e.rebuilding {
		e.logger.Debug("rebuild rejected, one already in flight", "root", e.root)
		done(ErrRebuildInProgress)
		return
	}
	e.rebuildAsync(true, done)
}

func (e *Explorer) rebuildAsync(sameRoot bool, done func(error)) {
	e.rebuilding = true
	gen := e.generation
	e.collectAsync(func(node *tree.Node, err error) {
		if gen != e.generation {
			return
		}
		if err != nil {
			e.rebuilding = false
			done(fmt.Errorf("%w: %v", ErrCollectFailed, err))
			return
		}
		e.install(node, sameRoot)
		e.rebuilding = false
		done(nil)
	})
}

// Close invalidates the view. In-flight incremental continuations see the
// generation change and abandon themselves.
func (e *Explorer) Close() {
	e.generation++
	e.rebuilding = false
	e.doc = nil
}

func (e *Explorer) filter() (*collect.Filter, error) {
	return collect.NewFilter(e.cfg.OmitPattern)
}

func (e *Explorer) collectTree() (*tree.Node, error) {
	filter, err := e.filter()
	if err != nil {
		return nil, err
	}
	switch e.cfg.Strategy {
	case StrategyProcess:
		return collect.NewProcessCollector(e.cfg.ListCommand, filter).Collect(e.root)
	case StrategyIncremental:
		inc := collect.NewIncremental(e.fs, filter, e.sched)
		gen := e.generation
		inc.Alive = func() bool { return gen == e.generation }
		return inc.Collect(e.root)
	default:
		return collect.NewWalker(e.fs, filter).Collect(e.root)
	}
}

func (e *Explorer) collectAsync(done func(*tree.Node, error)) {
	filter, err := e.filter()
	if err != nil {
		done(nil, err)
		return
	}
	switch e.cfg.Strategy {
	case StrategyProcess:
		collect.NewProcessCollector(e.cfg.ListCommand, filter).CollectAsync(e.root, done)
	case StrategyIncremental:
		inc := collect.NewIncremental(e.fs, filter, e.sched)
		gen := e.generation
		inc.Alive = func() bool { return gen == e.generation }
		inc.CollectAsync(e.root, done)
	default:
		node, err := collect.NewWalker(e.fs, filter).Collect(e.root)
		done(node, err)
	}
}

// install normalizes the collected tree, renders it, replays fold state,
// and re-seats the cursor at its previous path or the nearest ancestor
// still present.
func (e *Explorer) install(node *tree.Node, sameRoot bool) {
	var cursorPath string
	if sameRoot && e.doc != nil {
		cursorPath, _ = e.doc.PathAt(e.cursor)
	}

	tree.Sort(node)
	if e.cfg.Compress {
		tree.Compress(node)
	}
	doc := document.Render(e.root, node, e.fs.IsDir)
	e.folds.SetDocument(doc, sameRoot)
	if e.cfg.StartFolded {
		e.folds.FoldAll()
	}
	e.folds.RestoreAfterRebuild()
	e.doc = doc

	e.cursor = 0
	if cursorPath != "" {
		res := doc.Navigate(0, cursorPath)
		switch {
		case res.Found:
			e.cursor = res.Pos
		case res.BestOK:
			e.cursor = res.Best
		}
	}
}

// ResolvePath reconstructs the absolute path of the node at line,
// trailing-separator-tagged when it is a live directory.
func (e *Explorer) ResolvePath(line int) (string, error) {
	if e.doc == nil {
		return "", ErrNoDocument
	}
	return e.doc.PathAt(line)
}

// NavigateTo seeks the cursor to path. On a full match the cursor lands on
// the path's line; when only an ancestor prefix matched (the rest renamed,
// deleted, or hidden behind a fold) the cursor lands on that best match
// and the result says so. When not even the first segment matched the
// cursor stays put and ErrNotFound is returned.
func (e *Explorer) NavigateTo(path string) (document.Result, error) {
	if e.doc == nil {
		return document.Result{}, ErrNoDocument
	}
	res := e.doc.Navigate(e.cursor, path)
	switch {
	case res.Found:
		e.cursor = res.Pos
	case res.BestOK:
		e.cursor = res.Best
	default:
		return res, ErrNotFound
	}
	return res, nil
}

// Fold collapses path's children. Leaves, files, unknown paths, and
// already-collapsed directories are silent no-ops.
func (e *Explorer) Fold(path string) bool {
	return e.folds.Fold(path)
}

// Unfold expands path's children, recursively when asked, and remembers
// path as opened.
func (e *Explorer) Unfold(path string, recursive bool) bool {
	return e.folds.Unfold(path, recursive)
}

// Toggle folds path when expanded and unfolds it (non-recursively) when
// collapsed.
func (e *Explorer) Toggle(path string) bool {
	if e.IsFolded(path) {
		return e.Unfold(path, false)
	}
	return e.Fold(path)
}

// IsFolded reports whether path is currently collapsed.
func (e *Explorer) IsFolded(path string) bool {
	return e.folds.IsFolded(path)
}

// FoldAll collapses every directory without recording anything in the
// remembered set.
func (e *Explorer) FoldAll() {
	e.folds.FoldAll()
}

// UnfoldAll expands every directory without recording anything in the
// remembered set.
func (e *Explorer) UnfoldAll() {
	if e.doc != nil {
		e.doc.ExpandAll()
	}
}

// OpenPaths exposes the remembered drill-in paths.
func (e *Explorer) OpenPaths() []string {
	return e.folds.OpenPaths()
}

// VisibleLines returns the document's currently displayable lines.
func (e *Explorer) VisibleLines() []document.VisibleLine {
	if e.doc == nil {
		return nil
	}
	return e.doc.VisibleLines()
}
