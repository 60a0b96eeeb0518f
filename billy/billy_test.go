package billy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
	"github.com/jmgilman/go/hostfs/fstest"
)

// TestLocalFS_Suite runs the backend conformance suite against the local
// filesystem inside a temporary directory.
func TestLocalFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.Backend, string) {
		return NewLocal(), t.TempDir()
	})
}

// TestMemoryFS_Suite runs the backend conformance suite against memfs.
func TestMemoryFS_Suite(t *testing.T) {
	cfg := fstest.POSIXTestConfig()
	cfg.ChmodUnsupported = true
	fstest.TestSuiteWithConfig(t, func(t *testing.T) (core.Backend, string) {
		return NewMemory(), "/work"
	}, cfg)
}

// TestFS_Type verifies constructors report their backend type.
func TestFS_Type(t *testing.T) {
	if got := NewLocal().Type(); got != core.FSTypeLocal {
		t.Errorf("NewLocal().Type() = %s, want %s", got, core.FSTypeLocal)
	}
	if got := NewMemory().Type(); got != core.FSTypeMemory {
		t.Errorf("NewMemory().Type() = %s, want %s", got, core.FSTypeMemory)
	}
}

// TestLocalFS_RelativePaths verifies relative paths resolve against the
// working directory rather than the filesystem root.
func TestLocalFS_RelativePaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	local := NewLocal()
	if err := local.MkdirAll("a/b/c", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	f, err := local.OpenFile("a/x", os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if _, err := f.Write([]byte("hi")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if info, err := os.Stat(filepath.Join(dir, "a", "b", "c")); err != nil || !info.IsDir() {
		t.Errorf("a/b/c was not created under the working directory: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "a", "x"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hi" {
		t.Errorf("contents = %q, want %q", data, "hi")
	}
}

// TestFS_Unwrap verifies Unwrap exposes a usable billy.Filesystem.
func TestFS_Unwrap(t *testing.T) {
	mem := NewMemory()
	bfs := mem.Unwrap()
	if bfs == nil {
		t.Fatal("Unwrap() returned nil")
	}

	f, err := bfs.Create("direct.txt")
	if err != nil {
		t.Fatalf("Create() on unwrapped filesystem: %v", err)
	}
	_ = f.Close()

	if _, err := mem.Stat("direct.txt"); err != nil {
		t.Errorf("Stat(direct.txt) through adapter: %v", err)
	}
}

// TestFS_WithFilesystem verifies the option replaces the wrapped filesystem.
func TestFS_WithFilesystem(t *testing.T) {
	shared := NewMemory().Unwrap()
	a := NewMemory(WithFilesystem(shared))
	b := NewMemory(WithFilesystem(shared))

	if err := a.Mkdir("shared", 0o755); err != nil {
		t.Fatalf("Mkdir(shared): %v", err)
	}
	info, err := b.Stat("shared")
	if err != nil {
		t.Fatalf("Stat(shared) on second adapter: %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(shared).IsDir() = false, want true")
	}
}

// TestMemoryFS_NoImplicitParents verifies the adapter does not inherit memfs
// parent creation.
func TestMemoryFS_NoImplicitParents(t *testing.T) {
	mem := NewMemory()

	_, err := mem.OpenFile("a/b/c.txt", os.O_CREATE|os.O_WRONLY, 0o644)
	if !errors.Is(err, core.ErrNotExist) {
		t.Fatalf("OpenFile(a/b/c.txt) error = %v, want ErrNotExist", err)
	}
	if _, err := mem.Stat("a"); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Stat(a) error = %v, want ErrNotExist", err)
	}

	if err := mem.Mkdir("x/y", 0o755); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Mkdir(x/y) error = %v, want ErrNotExist", err)
	}
}

// TestMemoryFS_MkdirAllThroughFile verifies a regular file blocks MkdirAll.
func TestMemoryFS_MkdirAllThroughFile(t *testing.T) {
	mem := NewMemory()
	f, err := mem.OpenFile("file", os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(file): %v", err)
	}
	_ = f.Close()

	if err := mem.MkdirAll("file/sub/dir", 0o755); !errors.Is(err, core.ErrNotDir) {
		t.Errorf("MkdirAll(file/sub/dir) error = %v, want ErrNotDir", err)
	}
	if err := mem.MkdirAll("file", 0o755); !errors.Is(err, core.ErrNotDir) {
		t.Errorf("MkdirAll(file) error = %v, want ErrNotDir", err)
	}
}

// TestMemoryFS_Chmod verifies Chmod reports the missing capability.
func TestMemoryFS_Chmod(t *testing.T) {
	mem := NewMemory()
	if err := mem.Mkdir("dir", 0o700); err != nil {
		t.Fatalf("Mkdir(dir): %v", err)
	}
	if err := mem.Chmod("dir", 0o755); !errors.Is(err, core.ErrUnsupported) {
		t.Errorf("Chmod(dir) error = %v, want ErrUnsupported", err)
	}

	info, err := mem.Stat("dir")
	if err != nil {
		t.Fatalf("Stat(dir): %v", err)
	}
	if got := info.Mode().Perm(); got != 0o700 {
		t.Errorf("Mkdir(dir, 0700) mode = %o, want 700", got)
	}
}

// TestMemoryFS_RealPath verifies RealPath is left to the caller in memory.
func TestMemoryFS_RealPath(t *testing.T) {
	if _, err := NewMemory().RealPath("/"); !errors.Is(err, core.ErrUnsupported) {
		t.Errorf("RealPath(/) error = %v, want ErrUnsupported", err)
	}
}

// TestLocalFS_RealPath verifies symlinks are resolved by the OS.
func TestLocalFS_RealPath(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks(TempDir): %v", err)
	}
	local := NewLocal()

	target := filepath.Join(root, "target")
	if err := local.Mkdir(target, 0o755); err != nil {
		t.Fatalf("Mkdir(target): %v", err)
	}
	link := filepath.Join(root, "link")
	if err := local.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := local.RealPath(filepath.Join(link, "..", "link"))
	if err != nil {
		t.Fatalf("RealPath(): %v", err)
	}
	if got != target {
		t.Errorf("RealPath() = %q, want %q", got, target)
	}

	if _, err := local.RealPath(filepath.Join(root, "missing")); err == nil {
		t.Error("RealPath(missing) error = nil, want error")
	}
}

// TestLocalFS_Chmod verifies Chmod changes permission bits on disk.
func TestLocalFS_Chmod(t *testing.T) {
	if os.PathSeparator == '\\' {
		t.Skip("permission bits are not tracked on Windows")
	}
	dir := filepath.Join(t.TempDir(), "dir")
	local := NewLocal()
	if err := local.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Mkdir(dir): %v", err)
	}
	if err := local.Chmod(dir, 0o700); err != nil {
		t.Fatalf("Chmod(dir): %v", err)
	}

	info, err := local.Stat(dir)
	if err != nil {
		t.Fatalf("Stat(dir): %v", err)
	}
	if !info.IsDir() {
		t.Error("Chmod() changed the entry type")
	}
	if got := info.Mode().Perm(); got != 0o700 {
		t.Errorf("mode after Chmod = %o, want 700", got)
	}
}
