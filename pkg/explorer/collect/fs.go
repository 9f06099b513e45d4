package collect

import "os"

// DirEntry is one immediate member of a directory.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Filesystem is the access capability collectors work against. Production
// code uses OSFilesystem; tests substitute an in-memory implementation.
type Filesystem interface {
	// ListEntries returns the immediate entries of dir. A directory that
	// cannot be read (vanished mid-walk, permission loss) yields an empty
	// list, not an error.
	ListEntries(dir string) []DirEntry
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
}

// OSFilesystem implements Filesystem against the real filesystem.
type OSFilesystem struct{}

func (OSFilesystem) ListEntries(dir string) []DirEntry {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	out := make([]DirEntry, 0, len(ents))
	for _, e := range ents {
		out = append(out, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out
}

func (OSFilesystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
