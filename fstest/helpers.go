package fstest

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// join builds a path below root using the host separator.
func join(root string, elem ...string) string {
	return filepath.Join(append([]string{root}, elem...)...)
}

// writeFile creates or truncates name and writes data to it.
func writeFile(t *testing.T, backend core.Backend, name string, data []byte) {
	t.Helper()
	f, err := backend.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): setup failed: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		t.Fatalf("Write(%q): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%q): setup failed: %v", name, err)
	}
}

// readFile returns the full contents of name.
func readFile(t *testing.T, backend core.Backend, name string) []byte {
	t.Helper()
	f, err := backend.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(%q): got error %v, want nil", name, err)
	}
	return data
}

// mkdir creates a single directory as test setup.
func mkdir(t *testing.T, backend core.Backend, name string) {
	t.Helper()
	if err := backend.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%q): setup failed: %v", name, err)
	}
}

// assertNotExist fails the test unless name is absent.
func assertNotExist(t *testing.T, backend core.Backend, name string) {
	t.Helper()
	if _, err := backend.Stat(name); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", name, err)
	}
}

// assertDir fails the test unless name is an existing directory.
func assertDir(t *testing.T, backend core.Backend, name string) {
	t.Helper()
	info, err := backend.Stat(name)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", name, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", name)
	}
}
