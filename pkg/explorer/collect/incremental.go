package collect

import (
	"path/filepath"

	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

// Incremental is the cooperative collection strategy. Each directory level
// is listed in one slice of work; subdirectories become placeholder child
// slots plus queued continuations, and exactly one continuation runs per
// idle interval. The build therefore spreads across as many intervals as
// there are directories with subdirectories, plus one for completion, and
// never blocks the session longer than a single level listing.
type Incremental struct {
	FS     Filesystem
	Filter *Filter
	Sched  Scheduler
	// Alive is checked at every resumption point. Once it reports false the
	// build is abandoned silently: no patching, no further scheduling, no
	// completion callback. A nil Alive never cancels.
	Alive func() bool
}

func NewIncremental(fs Filesystem, filter *Filter, sched Scheduler) *Incremental {
	return &Incremental{FS: fs, Filter: filter, Sched: sched}
}

// pendingWork is one deferred continuation: build the tree level for dir
// and patch the result into parent.Children[slot].
type pendingWork struct {
	dir    string
	parent *tree.Node
	slot   int
}

type incrementalBuild struct {
	c     *Incremental
	root  *tree.Node
	queue []pendingWork // FIFO; enqueue order is the scheduling order
	done  func(*tree.Node, error)
}

// CollectAsync builds rootDir level by level. The top level is listed
// immediately; everything deeper runs on the scheduler. done fires after
// the final continuation, itself deferred by one interval.
func (c *Incremental) CollectAsync(rootDir string, done func(*tree.Node, error)) {
	b := &incrementalBuild{
		c:    c,
		root: tree.NewDir(filepath.Base(rootDir)),
		done: done,
	}
	b.buildLevel(rootDir, b.root)
	b.scheduleNext()
}

// Collect runs the incremental build to completion, blocking the caller.
// It only makes sense with a scheduler that runs work on its own (such as
// IdleScheduler); use CollectAsync with a ManualScheduler to drive steps
// yourself.
func (c *Incremental) Collect(rootDir string) (*tree.Node, error) {
	type result struct {
		node *tree.Node
		err  error
	}
	ch := make(chan result, 1)
	c.CollectAsync(rootDir, func(n *tree.Node, err error) {
		ch <- result{n, err}
	})
	r := <-ch
	return r.node, r.err
}

func (c *Incremental) alive() bool {
	return c.Alive == nil || c.Alive()
}

// buildLevel lists dir's immediate entries into node. File entries are
// complete; directory entries become empty placeholder nodes whose slots
// are patched later by their queued continuation.
func (b *incrementalBuild) buildLevel(dir string, node *tree.Node) {
	for _, e := range b.c.FS.ListEntries(dir) {
		if !b.c.Filter.Keep(e.Name) {
			continue
		}
		if e.IsDir {
			node.Children = append(node.Children, tree.NewDir(e.Name))
			b.queue = append(b.queue, pendingWork{
				dir:    filepath.Join(dir, e.Name),
				parent: node,
				slot:   len(node.Children) - 1,
			})
		} else {
			node.Children = append(node.Children, tree.NewFile(e.Name))
		}
	}
}

// scheduleNext schedules the head continuation, or the completion callback
// once the queue has drained. Both run after one idle interval.
func (b *incrementalBuild) scheduleNext() {
	if len(b.queue) == 0 {
		b.c.Sched.Schedule(func() {
			if !b.c.alive() {
				return
			}
			b.done(b.root, nil)
		})
		return
	}
	work := b.queue[0]
	b.queue = b.queue[1:]
	b.c.Sched.Schedule(func() { b.run(work) })
}

func (b *incrementalBuild) run(work pendingWork) {
	if !b.c.alive() {
		return
	}
	sub := tree.NewDir(filepath.Base(work.dir))
	b.buildLevel(work.dir, sub)
	work.parent.Children[work.slot] = sub
	b.scheduleNext()
}
