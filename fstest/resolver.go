package fstest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestResolver tests native path canonicalization.
// Skips if the backend doesn't implement core.Resolver or reports
// core.ErrUnsupported.
func TestResolver(t *testing.T, backend core.Backend, root string) {
	TestResolverWithConfig(t, backend, root, POSIXTestConfig())
}

// TestResolverWithConfig tests native path canonicalization with behavior
// configuration.
func TestResolverWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	r, ok := backend.(core.Resolver)
	if !ok {
		t.Skip("Resolver not supported")
		return
	}
	if _, err := r.RealPath(root); errors.Is(err, core.ErrUnsupported) {
		t.Skip("Resolver not supported")
		return
	}

	dir := join(root, "real")
	mkdir(t, backend, dir)
	want, err := r.RealPath(dir)
	if err != nil {
		t.Fatalf("RealPath(%q): got error %v, want nil", dir, err)
	}

	t.Run("Absolute", func(t *testing.T) {
		if !filepath.IsAbs(want) {
			t.Errorf("RealPath(%q): got %q, want an absolute path", dir, want)
		}
	})

	t.Run("DotSegments", func(t *testing.T) {
		name := dir + string(filepath.Separator) + "." + string(filepath.Separator) + ".." + string(filepath.Separator) + "real"
		got, err := r.RealPath(name)
		if err != nil || got != want {
			t.Errorf("RealPath(%q): got (%q, %v), want (%q, nil)", name, got, err, want)
		}
	})

	t.Run("Symlink", func(t *testing.T) {
		sfs, ok := backend.(core.SymlinkFS)
		if !ok || config.NoSymlinks {
			t.Skip("SymlinkFS not supported")
			return
		}
		link := join(root, "alias")
		if err := sfs.Symlink(dir, link); err != nil {
			t.Fatalf("Symlink(%q, %q): setup failed: %v", dir, link, err)
		}
		got, err := r.RealPath(link)
		if err != nil || got != want {
			t.Errorf("RealPath(%q): got (%q, %v), want (%q, nil)", link, got, err, want)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := r.RealPath(join(root, "missing")); err == nil {
			t.Error("RealPath(missing): got nil error, want failure")
		}
	})
}
