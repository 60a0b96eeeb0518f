package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestStat tests Stat on files, directories and missing entries.
// Uses POSIXTestConfig() by default.
func TestStat(t *testing.T, backend core.Backend, root string) {
	TestStatWithConfig(t, backend, root, POSIXTestConfig())
}

// TestStatWithConfig tests Stat with behavior configuration.
func TestStatWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	t.Run("File", func(t *testing.T) {
		name := join(root, "stat.txt")
		writeFile(t, backend, name, []byte("12345"))

		info, err := backend.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", name, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", name)
		}
		if info.Size() != 5 {
			t.Errorf("Stat(%q): Size() = %d, want 5", name, info.Size())
		}
		if info.Name() != "stat.txt" {
			t.Errorf("Stat(%q): Name() = %q, want %q", name, info.Name(), "stat.txt")
		}
	})

	t.Run("Directory", func(t *testing.T) {
		name := join(root, "stat-dir")
		mkdir(t, backend, name)
		assertDir(t, backend, name)
	})

	t.Run("NotExist", func(t *testing.T) {
		_, err := backend.Stat(join(root, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Type", func(t *testing.T) {
		if backend.Type() == core.FSTypeUnknown {
			t.Errorf("Type(): got %s, want a known backend type", backend.Type())
		}
	})
}
