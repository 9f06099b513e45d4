package tree

import (
	"reflect"
	"testing"
)

func childNames(n *Node) []string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	return names
}

func TestSortDirectoriesBeforeFiles(t *testing.T) {
	root := NewDir("r",
		NewFile("zz.txt"),
		NewDir("beta"),
		NewFile("alpha.txt"),
		NewDir("alpha"),
	)
	Sort(root)

	want := []string{"alpha", "beta", "alpha.txt", "zz.txt"}
	if got := childNames(root); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted children = %v, want %v", got, want)
	}
}

func TestSortRecursesAndIsIdempotent(t *testing.T) {
	root := NewDir("r",
		NewDir("d",
			NewFile("b"),
			NewDir("c"),
			NewFile("a"),
		),
	)
	Sort(root)
	want := []string{"c", "a", "b"}
	if got := childNames(root.Child("d")); !reflect.DeepEqual(got, want) {
		t.Errorf("nested sorted children = %v, want %v", got, want)
	}

	Sort(root)
	if got := childNames(root.Child("d")); !reflect.DeepEqual(got, want) {
		t.Errorf("second Sort changed order: %v, want %v", got, want)
	}
}

func TestCompressChain(t *testing.T) {
	// A chain of N single-child directories collapses to one node whose
	// name joins all N segments.
	root := NewDir("r",
		NewDir("a",
			NewDir("b",
				NewDir("c",
					NewFile("leaf.go"),
				),
			),
		),
	)
	Compress(root)

	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child after compression, got %d", len(root.Children))
	}
	merged := root.Children[0]
	if merged.Name != "a/b/c" {
		t.Errorf("merged name = %q, want %q", merged.Name, "a/b/c")
	}
	if len(merged.Children) != 1 || merged.Children[0].Name != "leaf.go" {
		t.Errorf("merged children = %v", childNames(merged))
	}
}

func TestCompressStopsAtBranchesAndFiles(t *testing.T) {
	root := NewDir("r",
		NewDir("a",
			NewDir("b",
				NewDir("x"),
				NewDir("y"),
			),
		),
		NewDir("only",
			NewFile("f.txt"),
		),
		NewFile("top.txt"),
	)
	Compress(root)

	merged := root.Child("a/b")
	if merged == nil {
		t.Fatalf("expected a/b merge, children = %v", childNames(root))
	}
	if !reflect.DeepEqual(childNames(merged), []string{"x", "y"}) {
		t.Errorf("a/b children = %v", childNames(merged))
	}
	// A directory whose single child is a file is left alone.
	if root.Child("only") == nil {
		t.Errorf("directory with single file child was merged: %v", childNames(root))
	}
	if root.Child("top.txt") == nil {
		t.Error("file child disappeared")
	}
}

func TestCompressEmptyDirUnchanged(t *testing.T) {
	root := NewDir("r", NewDir("empty"))
	Compress(root)
	if root.Child("empty") == nil || len(root.Child("empty").Children) != 0 {
		t.Errorf("empty directory changed: %v", childNames(root))
	}
}

func TestCompressIdempotent(t *testing.T) {
	build := func() *Node {
		return NewDir("r",
			NewDir("a",
				NewDir("b",
					NewFile("f"),
				),
			),
			NewDir("c",
				NewDir("d"),
				NewFile("g"),
			),
		)
	}
	once := build()
	Compress(once)
	twice := build()
	Compress(twice)
	Compress(twice)
	if !reflect.DeepEqual(once, twice) {
		t.Error("Compress is not idempotent")
	}
}
