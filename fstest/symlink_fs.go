package fstest

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestSymlinkFS tests symlink operations (Symlink, Readlink, Lstat).
// Uses type assertion - skips if the backend doesn't implement core.SymlinkFS.
// Uses POSIXTestConfig() by default.
func TestSymlinkFS(t *testing.T, backend core.Backend, root string) {
	TestSymlinkFSWithConfig(t, backend, root, POSIXTestConfig())
}

// TestSymlinkFSWithConfig tests symlink operations with behavior configuration.
func TestSymlinkFSWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	sfs, ok := backend.(core.SymlinkFS)
	if !ok || config.NoSymlinks {
		t.Skip("SymlinkFS not supported")
		return
	}

	t.Run("SymlinkCreate", func(t *testing.T) {
		testSymlinkFSCreate(t, backend, sfs, root)
	})
	t.Run("SymlinkToDirectory", func(t *testing.T) {
		testSymlinkFSDirectory(t, backend, sfs, root)
	})
}

// testSymlinkFSCreate tests Symlink() creation and reading through the link.
func testSymlinkFSCreate(t *testing.T, backend core.Backend, sfs core.SymlinkFS, root string) {
	target := join(root, "target.txt")
	link := join(root, "link.txt")
	content := []byte("target file content")
	writeFile(t, backend, target, content)

	if err := sfs.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%q, %q): got error %v, want nil", target, link, err)
	}

	got, err := sfs.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%q): got error %v, want nil", link, err)
	}
	if got != target {
		t.Errorf("Readlink(%q): got %q, want %q", link, got, target)
	}

	info, err := sfs.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%q): got error %v, want nil", link, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%q): mode %v lacks ModeSymlink", link, info.Mode())
	}

	if data := readFile(t, backend, link); !bytes.Equal(data, content) {
		t.Errorf("read through symlink: got %q, want %q", data, content)
	}
}

// testSymlinkFSDirectory tests Stat follows a symlink to a directory.
func testSymlinkFSDirectory(t *testing.T, backend core.Backend, sfs core.SymlinkFS, root string) {
	target := join(root, "target-dir")
	link := join(root, "dir-link")
	mkdir(t, backend, target)

	if err := sfs.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%q, %q): got error %v, want nil", target, link, err)
	}
	assertDir(t, backend, link)
}
