package document

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

// sampleTree mirrors a small project:
//
//	src/
//	  lib/
//	    a.go
//	    b.go
//	  main.go
//	docs/
//	README.md
func sampleTree() *tree.Node {
	return tree.NewDir("project",
		tree.NewDir("src",
			tree.NewDir("lib",
				tree.NewFile("a.go"),
				tree.NewFile("b.go"),
			),
			tree.NewFile("main.go"),
		),
		tree.NewDir("docs"),
		tree.NewFile("README.md"),
	)
}

// treeDirs marks every rendered directory line as a live directory so
// resolved paths get their trailing separator without touching the disk.
func treeDirs(d *Document) DirChecker {
	return func(path string) bool {
		res := d.Locate(path)
		if !res.Found {
			return false
		}
		return isDirLine(d.Lines[res.Pos])
	}
}

func renderSample() *Document {
	d := Render("/project", sampleTree(), nil)
	d.isDir = treeDirs(d)
	return d
}

func TestRenderLines(t *testing.T) {
	d := renderSample()
	want := []string{
		"src/",
		"  lib/",
		"    a.go",
		"    b.go",
		"  main.go",
		"docs/",
		"README.md",
	}
	if !reflect.DeepEqual(d.Lines, want) {
		t.Errorf("rendered lines:\n%s\nwant:\n%s", d.Text(), strings.Join(want, "\n"))
	}
}

func TestRenderSpans(t *testing.T) {
	d := renderSample()

	src, ok := d.Span("/project/src")
	if !ok {
		t.Fatal("src has no span")
	}
	if src.Start != 1 || src.End != 5 {
		t.Errorf("src span = [%d,%d), want [1,5)", src.Start, src.End)
	}
	if src.Priority != 100 {
		t.Errorf("src priority = %d, want 100", src.Priority)
	}

	lib, ok := d.Span("/project/src/lib")
	if !ok {
		t.Fatal("lib has no span")
	}
	if lib.Start != 2 || lib.End != 4 {
		t.Errorf("lib span = [%d,%d), want [2,4)", lib.Start, lib.End)
	}
	if lib.Priority != 99 {
		t.Errorf("lib priority = %d, want 99", lib.Priority)
	}

	// Leaf directories get no span.
	if _, ok := d.Span("/project/docs"); ok {
		t.Error("empty docs directory should have no span")
	}
}

func TestPathAt(t *testing.T) {
	d := renderSample()
	cases := []struct {
		line int
		want string
	}{
		{0, "/project/src/"},
		{1, "/project/src/lib/"},
		{2, "/project/src/lib/a.go"},
		{3, "/project/src/lib/b.go"},
		{4, "/project/src/main.go"},
		{5, "/project/docs/"},
		{6, "/project/README.md"},
	}
	for _, c := range cases {
		got, err := d.PathAt(c.line)
		if err != nil {
			t.Errorf("PathAt(%d): %v", c.line, err)
			continue
		}
		if got != c.want {
			t.Errorf("PathAt(%d) = %q, want %q", c.line, got, c.want)
		}
	}

	if _, err := d.PathAt(len(d.Lines)); err == nil {
		t.Error("expected an error past the last line")
	}
	if _, err := d.PathAt(-1); err == nil {
		t.Error("expected an error for a negative line")
	}
}

func TestPathAtSkipsDeeperSiblingSubtrees(t *testing.T) {
	// b.go's parent is lib even though a.go sits between them, and
	// main.go's parent is src even though the whole lib subtree sits
	// between them.
	d := renderSample()
	got, err := d.PathAt(4)
	if err != nil {
		t.Fatalf("PathAt: %v", err)
	}
	if got != "/project/src/main.go" {
		t.Errorf("PathAt(4) = %q, want /project/src/main.go", got)
	}
}

func TestNavigateRoundTrip(t *testing.T) {
	// PathAt(Navigate(p)) is the identity for every rendered node.
	d := renderSample()
	for i := range d.Lines {
		p, err := d.PathAt(i)
		if err != nil {
			t.Fatalf("PathAt(%d): %v", i, err)
		}
		res := d.Navigate(0, p)
		if !res.Found {
			t.Errorf("Navigate(%q) not found", p)
			continue
		}
		if res.Pos != i {
			t.Errorf("Navigate(%q) = line %d, want %d", p, res.Pos, i)
		}
	}
}

func TestNavigateRelativePath(t *testing.T) {
	d := renderSample()
	res := d.Navigate(0, "src/lib/b.go")
	if !res.Found || res.Pos != 3 {
		t.Errorf("Navigate(src/lib/b.go) = %+v, want line 3", res)
	}
}

func TestNavigateNotFound(t *testing.T) {
	d := renderSample()

	res := d.Navigate(0, "/project/nope")
	if res.Found || res.BestOK {
		t.Errorf("expected clean miss, got %+v", res)
	}

	// A partial match reports the deepest matched line as best.
	res = d.Navigate(0, "/project/src/lib/missing.go")
	if res.Found {
		t.Error("missing file reported as found")
	}
	if !res.BestOK || res.Best != 1 {
		t.Errorf("best match = %+v, want line 1 (src/lib/)", res)
	}
}

func TestNavigateSameNamedSiblingDescendant(t *testing.T) {
	// a/x must not match the x inside b's subtree: the forward search is
	// bounded by a's own subtree, so /r/a/x is a clean miss below a.
	root := tree.NewDir("r",
		tree.NewDir("a",
			tree.NewFile("only.txt"),
		),
		tree.NewDir("b",
			tree.NewFile("x"),
		),
	)
	d := Render("/r", root, nil)
	res := d.Navigate(0, "/r/a/x")
	if res.Found {
		t.Errorf("matched a sibling's descendant: %+v", res)
	}
	if !res.BestOK || res.Best != 0 {
		t.Errorf("best match = %+v, want line 0 (a/)", res)
	}
}

func TestNavigateStopsAtCollapsedDirectory(t *testing.T) {
	d := renderSample()
	d.Collapse("/project/src/lib")

	res := d.Navigate(0, "/project/src/lib/a.go")
	if res.Found {
		t.Error("navigation descended into a collapsed directory")
	}
	if !res.BestOK || res.Best != 1 {
		t.Errorf("best match = %+v, want the collapsed header line 1", res)
	}

	// Locate ignores the fold barrier.
	loc := d.Locate("/project/src/lib/a.go")
	if !loc.Found || loc.Pos != 2 {
		t.Errorf("Locate = %+v, want line 2", loc)
	}
}

func TestNavigateRootItselfNotFound(t *testing.T) {
	d := renderSample()
	if res := d.Navigate(0, "/project"); res.Found || res.BestOK {
		t.Errorf("root has no line, got %+v", res)
	}
}

func TestCollapseExpand(t *testing.T) {
	d := renderSample()

	if d.IsCollapsed("/project/src") {
		t.Fatal("documents start fully expanded")
	}
	if !d.Collapse("/project/src") {
		t.Fatal("Collapse(src) failed")
	}
	if d.Collapse("/project/src") {
		t.Error("collapsing twice should be a no-op")
	}
	if d.Collapse("/project/docs") {
		t.Error("leaf directory collapsed")
	}
	if !d.IsCollapsed("/project/src/") {
		t.Error("trailing separator should key the same span")
	}
	if !d.Expand("/project/src", false) {
		t.Error("Expand(src) failed")
	}
	if d.IsCollapsed("/project/src") {
		t.Error("still collapsed after Expand")
	}
}

func TestExpandRecursive(t *testing.T) {
	d := renderSample()
	d.Collapse("/project/src/lib")
	d.Collapse("/project/src")

	d.Expand("/project/src", false)
	if !d.IsCollapsed("/project/src/lib") {
		t.Error("non-recursive expand removed the nested fold")
	}

	d.Collapse("/project/src")
	d.Expand("/project/src", true)
	if d.IsCollapsed("/project/src/lib") {
		t.Error("recursive expand left the nested fold")
	}
}

func TestVisibleLines(t *testing.T) {
	d := renderSample()
	d.Collapse("/project/src/lib")

	var got []string
	var foldedAt []int
	for _, vl := range d.VisibleLines() {
		got = append(got, vl.Text)
		if vl.Folded {
			foldedAt = append(foldedAt, vl.Index)
		}
	}
	want := []string{"src/", "  lib/", "  main.go", "docs/", "README.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible lines = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(foldedAt, []int{1}) {
		t.Errorf("folded headers at %v, want [1]", foldedAt)
	}
}

func TestVisibleLinesOuterFoldHidesInnerHeader(t *testing.T) {
	d := renderSample()
	d.Collapse("/project/src/lib")
	d.Collapse("/project/src")

	var got []string
	for _, vl := range d.VisibleLines() {
		got = append(got, vl.Text)
	}
	want := []string{"src/", "docs/", "README.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible lines = %v, want %v", got, want)
	}
}

func TestRevealExposesAncestorsOnly(t *testing.T) {
	d := renderSample()
	d.CollapseAll()

	// Reveal lib's header: src must open, lib itself stays collapsed.
	loc := d.Locate("/project/src/lib")
	if !loc.Found {
		t.Fatal("Locate(lib) failed")
	}
	d.Reveal(loc.Pos)

	if d.IsCollapsed("/project/src") {
		t.Error("ancestor fold still active after Reveal")
	}
	if !d.IsCollapsed("/project/src/lib") {
		t.Error("Reveal opened the node's own fold")
	}
}
