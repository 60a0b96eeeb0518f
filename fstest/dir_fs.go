package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestMkdir tests single-level directory creation.
// Uses POSIXTestConfig() by default.
func TestMkdir(t *testing.T, backend core.Backend, root string) {
	TestMkdirWithConfig(t, backend, root, POSIXTestConfig())
}

// TestMkdirWithConfig tests single-level directory creation with behavior
// configuration.
func TestMkdirWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	t.Run("Create", func(t *testing.T) {
		name := join(root, "one")
		if err := backend.Mkdir(name, 0o755); err != nil {
			t.Fatalf("Mkdir(%q): got error %v, want nil", name, err)
		}
		assertDir(t, backend, name)
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		name := join(root, "twice")
		mkdir(t, backend, name)
		if err := backend.Mkdir(name, 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%q) twice: got error %v, want fs.ErrExist", name, err)
		}
	})

	t.Run("ExistingFile", func(t *testing.T) {
		name := join(root, "file.txt")
		writeFile(t, backend, name, []byte("data"))
		if err := backend.Mkdir(name, 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%q) over file: got error %v, want fs.ErrExist", name, err)
		}
	})

	t.Run("MissingParent", func(t *testing.T) {
		name := join(root, "no", "parent")
		if err := backend.Mkdir(name, 0o755); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(%q): got error %v, want fs.ErrNotExist", name, err)
		}
		assertNotExist(t, backend, join(root, "no"))
	})
}

// TestMkdirAll tests recursive directory creation.
// Uses POSIXTestConfig() by default.
func TestMkdirAll(t *testing.T, backend core.Backend, root string) {
	TestMkdirAllWithConfig(t, backend, root, POSIXTestConfig())
}

// TestMkdirAllWithConfig tests recursive directory creation with behavior
// configuration.
func TestMkdirAllWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	t.Run("Nested", func(t *testing.T) {
		name := join(root, "a", "b", "c")
		if err := backend.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", name, err)
		}
		assertDir(t, backend, join(root, "a"))
		assertDir(t, backend, join(root, "a", "b"))
		assertDir(t, backend, name)
	})

	t.Run("Idempotent", func(t *testing.T) {
		name := join(root, "again", "and", "again")
		for i := 0; i < 2; i++ {
			if err := backend.MkdirAll(name, 0o755); err != nil {
				t.Fatalf("MkdirAll(%q) call %d: got error %v, want nil", name, i+1, err)
			}
		}
	})

	t.Run("ExistingFile", func(t *testing.T) {
		name := join(root, "blocker")
		writeFile(t, backend, name, []byte("x"))
		if err := backend.MkdirAll(name, 0o755); err == nil {
			t.Errorf("MkdirAll(%q) over file: got nil error, want failure", name)
		}
	})

	t.Run("FileInPath", func(t *testing.T) {
		file := join(root, "stop")
		writeFile(t, backend, file, []byte("x"))
		name := join(file, "sub", "dir")
		if err := backend.MkdirAll(name, 0o755); err == nil {
			t.Errorf("MkdirAll(%q) through file: got nil error, want failure", name)
		}
	})
}
