package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestOpenFile tests OpenFile flag handling.
// Uses POSIXTestConfig() by default.
func TestOpenFile(t *testing.T, backend core.Backend, root string) {
	TestOpenFileWithConfig(t, backend, root, POSIXTestConfig())
}

// TestOpenFileWithConfig tests OpenFile flag handling with behavior configuration.
func TestOpenFileWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	t.Run("CreateNew", func(t *testing.T) {
		testOpenFileCreate(t, backend, root)
	})
	t.Run("CreateInMissingDir", func(t *testing.T) {
		testOpenFileNoImplicitParents(t, backend, root)
	})
	t.Run("CreateUnderFile", func(t *testing.T) {
		testOpenFileUnderFile(t, backend, root)
	})
	t.Run("ReadMissing", func(t *testing.T) {
		_, err := backend.OpenFile(join(root, "missing.txt"), os.O_RDONLY, 0)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(missing.txt, O_RDONLY): got error %v, want fs.ErrNotExist", err)
		}
	})
	t.Run("Exclusive", func(t *testing.T) {
		testOpenFileExclusive(t, backend, root)
	})
	t.Run("Truncate", func(t *testing.T) {
		testOpenFileTruncate(t, backend, root)
	})
	t.Run("Append", func(t *testing.T) {
		testOpenFileAppend(t, backend, root)
	})
	t.Run("Name", func(t *testing.T) {
		name := join(root, "named.txt")
		f, err := backend.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()
		if f.Name() != name {
			t.Errorf("Name(): got %q, want %q", f.Name(), name)
		}
	})
}

// testOpenFileCreate tests O_CREATE on a missing file in an existing directory.
func testOpenFileCreate(t *testing.T, backend core.Backend, root string) {
	name := join(root, "created.txt")
	f, err := backend.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_CREATE): got error %v, want nil", name, err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}

	info, err := backend.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", name, err)
	}
	if info.Size() != 0 {
		t.Errorf("Stat(%q): Size() = %d, want 0", name, info.Size())
	}
}

// testOpenFileNoImplicitParents tests that O_CREATE never creates parents.
func testOpenFileNoImplicitParents(t *testing.T, backend core.Backend, root string) {
	name := join(root, "a", "b", "c.txt")
	_, err := backend.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o644)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(%q, O_CREATE): got error %v, want fs.ErrNotExist", name, err)
	}
	assertNotExist(t, backend, join(root, "a"))
}

// testOpenFileUnderFile tests that a regular file cannot act as a parent.
func testOpenFileUnderFile(t *testing.T, backend core.Backend, root string) {
	parent := join(root, "plain.txt")
	writeFile(t, backend, parent, []byte("x"))

	name := join(parent, "child.txt")
	if _, err := backend.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		t.Errorf("OpenFile(%q, O_CREATE): got nil error, want failure", name)
	}
}

// testOpenFileExclusive tests O_EXCL against an existing file.
func testOpenFileExclusive(t *testing.T, backend core.Backend, root string) {
	name := join(root, "excl.txt")
	writeFile(t, backend, name, []byte("keep"))

	_, err := backend.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("OpenFile(%q, O_EXCL): got error %v, want fs.ErrExist", name, err)
	}
	if got := readFile(t, backend, name); !bytes.Equal(got, []byte("keep")) {
		t.Errorf("contents after failed O_EXCL: got %q, want %q", got, "keep")
	}
}

// testOpenFileTruncate tests O_TRUNC discards existing contents.
func testOpenFileTruncate(t *testing.T, backend core.Backend, root string) {
	name := join(root, "trunc.txt")
	writeFile(t, backend, name, []byte("long original content"))
	writeFile(t, backend, name, []byte("short"))

	if got := readFile(t, backend, name); !bytes.Equal(got, []byte("short")) {
		t.Errorf("contents after O_TRUNC: got %q, want %q", got, "short")
	}
}

// testOpenFileAppend tests O_APPEND writes land at the end.
func testOpenFileAppend(t *testing.T, backend core.Backend, root string) {
	name := join(root, "append.txt")
	writeFile(t, backend, name, []byte("first"))

	f, err := backend.OpenFile(name, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_APPEND): got error %v, want nil", name, err)
	}
	if _, err := io.WriteString(f, "+second"); err != nil {
		t.Errorf("Write(): got error %v", err)
	}
	_ = f.Close()

	if got := readFile(t, backend, name); !bytes.Equal(got, []byte("first+second")) {
		t.Errorf("contents after O_APPEND: got %q, want %q", got, "first+second")
	}
}
