package collect

import (
	"reflect"
	"testing"

	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

func twoSubdirFS() fakeFS {
	return fakeFS{dirs: map[string][]DirEntry{
		"/r":   {{Name: "a", IsDir: true}, {Name: "b", IsDir: true}},
		"/r/a": {{Name: "one.txt"}},
		"/r/b": {{Name: "two.txt"}},
	}}
}

func TestIncrementalMatchesSynchronousWalk(t *testing.T) {
	fs := twoSubdirFS()
	sched := &ManualScheduler{}

	var built *tree.Node
	inc := NewIncremental(fs, nil, sched)
	inc.CollectAsync("/r", func(n *tree.Node, err error) {
		if err != nil {
			t.Fatalf("incremental collect: %v", err)
		}
		built = n
	})
	sched.Drain()

	if built == nil {
		t.Fatal("completion callback never ran")
	}

	want, err := NewWalker(fs, nil).Collect("/r")
	if err != nil {
		t.Fatalf("walker collect: %v", err)
	}
	if !reflect.DeepEqual(built, want) {
		t.Errorf("incremental tree differs from synchronous walk:\n got %+v\nwant %+v", built, want)
	}
}

func TestIncrementalStepCount(t *testing.T) {
	// Two subdirectories, one file each: one scheduled step per
	// subdirectory continuation plus one for completion.
	sched := &ManualScheduler{}
	inc := NewIncremental(twoSubdirFS(), nil, sched)

	completed := false
	inc.CollectAsync("/r", func(n *tree.Node, err error) { completed = true })
	steps := sched.Drain()

	if steps != 3 {
		t.Errorf("build took %d scheduled steps, want 3", steps)
	}
	if !completed {
		t.Error("completion callback never ran")
	}
}

// recordingFS wraps fakeFS and records the order directories are listed.
type recordingFS struct {
	fakeFS
	listed []string
}

func (r *recordingFS) ListEntries(dir string) []DirEntry {
	r.listed = append(r.listed, dir)
	return r.fakeFS.ListEntries(dir)
}

func TestIncrementalFIFOAcrossLevels(t *testing.T) {
	// Continuations run in enqueue order: both top-level directories are
	// listed before either of their subdirectories, giving breadth-first
	// time-slicing.
	fs := &recordingFS{fakeFS: fakeFS{dirs: map[string][]DirEntry{
		"/r":        {{Name: "a", IsDir: true}, {Name: "b", IsDir: true}},
		"/r/a":      {{Name: "deep", IsDir: true}},
		"/r/a/deep": {{Name: "f.txt"}},
		"/r/b":      {{Name: "g.txt"}},
	}}}
	sched := &ManualScheduler{}
	inc := NewIncremental(fs, nil, sched)

	var built *tree.Node
	inc.CollectAsync("/r", func(n *tree.Node, err error) { built = n })
	sched.Drain()

	if built == nil {
		t.Fatal("completion callback never ran")
	}
	wantOrder := []string{"/r", "/r/a", "/r/b", "/r/a/deep"}
	if !reflect.DeepEqual(fs.listed, wantOrder) {
		t.Errorf("listing order = %v, want %v", fs.listed, wantOrder)
	}
	deep := built.Child("a").Child("deep")
	if deep == nil || deep.Child("f.txt") == nil {
		t.Error("deep subdirectory was not patched in")
	}
	if built.Child("b").Child("g.txt") == nil {
		t.Error("sibling subdirectory was not patched in")
	}
}

func TestIncrementalAbandonedWhenViewDies(t *testing.T) {
	sched := &ManualScheduler{}
	inc := NewIncremental(twoSubdirFS(), nil, sched)

	alive := true
	inc.Alive = func() bool { return alive }

	completed := false
	inc.CollectAsync("/r", func(n *tree.Node, err error) { completed = true })

	sched.Step() // first continuation runs while alive
	alive = false
	sched.Drain()

	if completed {
		t.Error("dead view still received the completion callback")
	}
	// The abandoned continuation must not schedule further work.
	if sched.Step() {
		t.Error("work remained queued after abandonment")
	}
}
