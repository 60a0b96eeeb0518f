package fstest

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestMetadataFS tests metadata operations (Lstat, Chmod).
// Uses type assertion - skips if the backend doesn't implement core.MetadataFS.
// Uses POSIXTestConfig() by default.
func TestMetadataFS(t *testing.T, backend core.Backend, root string) {
	TestMetadataFSWithConfig(t, backend, root, POSIXTestConfig())
}

// TestMetadataFSWithConfig tests metadata operations with behavior configuration.
func TestMetadataFSWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	mfs, ok := backend.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
		return
	}

	t.Run("Lstat", func(t *testing.T) {
		testMetadataFSLstat(t, backend, mfs, root)
	})
	t.Run("Chmod", func(t *testing.T) {
		testMetadataFSChmod(t, backend, mfs, root, config)
	})
}

// testMetadataFSLstat tests Lstat() on files and directories.
func testMetadataFSLstat(t *testing.T, backend core.Backend, mfs core.MetadataFS, root string) {
	name := join(root, "lstat-test.txt")
	writeFile(t, backend, name, []byte("test file for Lstat"))

	info, err := mfs.Lstat(name)
	if err != nil {
		t.Fatalf("Lstat(%q): got error %v, want nil", name, err)
	}
	if info.IsDir() {
		t.Errorf("Lstat(%q): IsDir() = true, want false", name)
	}

	dir := join(root, "lstat-dir")
	mkdir(t, backend, dir)
	dirInfo, err := mfs.Lstat(dir)
	if err != nil {
		t.Fatalf("Lstat(%q): got error %v, want nil", dir, err)
	}
	if !dirInfo.IsDir() {
		t.Errorf("Lstat(%q): IsDir() = false, want true", dir)
	}
}

// testMetadataFSChmod tests Chmod() changes permission bits only.
func testMetadataFSChmod(t *testing.T, backend core.Backend, mfs core.MetadataFS, root string, config FSTestConfig) {
	dir := join(root, "chmod-dir")
	mkdir(t, backend, dir)

	err := mfs.Chmod(dir, 0o700)
	if config.ChmodUnsupported {
		if !errors.Is(err, core.ErrUnsupported) {
			t.Errorf("Chmod(%q): got error %v, want core.ErrUnsupported", dir, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Chmod(%q): got error %v, want nil", dir, err)
	}

	info, err := backend.Stat(dir)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q) after Chmod: IsDir() = false, want true", dir)
	}
	if got := info.Mode().Perm(); got != 0o700 {
		t.Errorf("Stat(%q) after Chmod: Perm() = %o, want 700", dir, got)
	}
}
