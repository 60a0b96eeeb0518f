package hostfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/billy"
)

func TestRealPath_Local(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("creating symbolic links requires privileges on Windows")
	}
	p := newLocalPOSIX(t)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	target := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "f.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	assert.Equal(t, filepath.Join(target, "f.txt"), p.RealPath(filepath.Join(dir, "link", "f.txt")))
	assert.Equal(t, target, p.RealPath(dir+"/real/./../real/"))
	assert.Empty(t, p.RealPath(filepath.Join(dir, "missing")))
	assert.Empty(t, p.RealPath(""))
}

func TestRealPath_MemoryWalk(t *testing.T) {
	bfs := billy.NewMemory()
	p := newMemoryPOSIX(t, WithBackend(bfs))

	require.True(t, p.Mkdirs("/data/real/sub", 0o755))
	require.NoError(t, WriteContents(p, "/data/real/f.txt", "w", []byte("x")))
	require.NoError(t, bfs.Symlink("/data/real", "/data/abs"))
	require.NoError(t, bfs.Symlink("real/sub", "/data/rel"))

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain", path: "/data/real/f.txt", want: "/data/real/f.txt"},
		{name: "relative to root", path: "data/real", want: "/data/real"},
		{name: "dot segments", path: "/data/./real/sub/../f.txt", want: "/data/real/f.txt"},
		{name: "dot dot above root", path: "/../../data", want: "/data"},
		{name: "doubled separators", path: "//data//real/", want: "/data/real"},
		{name: "absolute link", path: "/data/abs/f.txt", want: "/data/real/f.txt"},
		{name: "relative link", path: "/data/rel", want: "/data/real/sub"},
		{name: "link then dot dot", path: "/data/rel/../f.txt", want: "/data/real/f.txt"},
		{name: "root", path: "/", want: "/"},
		{name: "missing", path: "/data/missing", want: ""},
		{name: "through a file", path: "/data/real/f.txt/more", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.RealPath(tt.path))
		})
	}
}

func TestRealPath_SymlinkLoop(t *testing.T) {
	bfs := billy.NewMemory()
	p := newMemoryPOSIX(t, WithBackend(bfs))

	require.True(t, p.Mkdirs("/loop", 0o755))
	require.NoError(t, bfs.Symlink("/loop/b", "/loop/a"))
	require.NoError(t, bfs.Symlink("/loop/a", "/loop/b"))

	assert.Empty(t, p.RealPath("/loop/a"))

	_, err := p.walkRealPath("/loop/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, errTooManyLinks)
}

func TestRealPath_WindowsMemory(t *testing.T) {
	p := newMemoryWindows(t)
	require.True(t, p.Mkdirs("C:/Users/me", 0o755))

	assert.Equal(t, "C:/Users/me", p.RealPath("C:/Users/./me"))
	assert.Equal(t, "C:/Users", p.RealPath("C:/Users/me/.."))
	assert.Empty(t, p.RealPath("C:/Users/nobody"))
}

func TestRealPath_NoSymlinkSupport(t *testing.T) {
	backend := new(mockBackend)
	backend.On("Stat", "/a").Return(fakeInfo{name: "a", dir: true}, nil)
	backend.On("Stat", "/a/b").Return(fakeInfo{name: "b"}, nil)
	backend.On("Stat", "/a/c").Return(nil, fs.ErrNotExist)

	p, err := NewPOSIX(WithBackend(backend), WithLookupEnv(emptyEnv))
	require.NoError(t, err)

	assert.Equal(t, "/a/b", p.RealPath("/a/b"))
	assert.Empty(t, p.RealPath("/a/c"))
}
