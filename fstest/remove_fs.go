package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestRemove tests deletion of files and directories.
// Uses POSIXTestConfig() by default.
func TestRemove(t *testing.T, backend core.Backend, root string) {
	TestRemoveWithConfig(t, backend, root, POSIXTestConfig())
}

// TestRemoveWithConfig tests deletion with behavior configuration.
func TestRemoveWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	t.Run("RemoveSingleFile", func(t *testing.T) {
		name := join(root, "testfile.txt")
		writeFile(t, backend, name, []byte("test file content"))

		if err := backend.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		assertNotExist(t, backend, name)
	})

	t.Run("RemoveEmptyDirectory", func(t *testing.T) {
		name := join(root, "emptydir")
		mkdir(t, backend, name)

		if err := backend.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		assertNotExist(t, backend, name)
	})

	t.Run("RemoveNonEmptyDirectory", func(t *testing.T) {
		dir := join(root, "full")
		mkdir(t, backend, dir)
		writeFile(t, backend, join(dir, "child.txt"), []byte("x"))

		err := backend.Remove(dir)
		if !errors.Is(err, core.ErrNotEmpty) {
			t.Errorf("Remove(%q): got error %v, want core.ErrNotEmpty", dir, err)
		}
		assertDir(t, backend, dir)
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		err := backend.Remove(join(root, "nonexistent.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(nonexistent.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveTwice", func(t *testing.T) {
		name := join(root, "once.txt")
		writeFile(t, backend, name, []byte("x"))
		if err := backend.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		if err := backend.Remove(name); err == nil {
			t.Errorf("Remove(%q) second call: got nil error, want failure", name)
		}
	})
}
