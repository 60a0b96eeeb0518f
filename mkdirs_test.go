package hostfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMkdirs_CreatesEveryLevel(t *testing.T) {
	tests := []struct {
		name   string
		p      Platform
		path   string
		levels []string
	}{
		{
			name:   "posix relative",
			p:      newMemoryPOSIX(t),
			path:   "a/b/c",
			levels: []string{"a", "a/b", "a/b/c"},
		},
		{
			name:   "posix absolute",
			p:      newMemoryPOSIX(t),
			path:   "/srv/data/cache",
			levels: []string{"/srv", "/srv/data", "/srv/data/cache"},
		},
		{
			name:   "windows drive",
			p:      newMemoryWindows(t),
			path:   "C:/Users/me/cache",
			levels: []string{"C:/Users", "C:/Users/me", "C:/Users/me/cache"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.p.Mkdirs(tt.path, 0o755))
			for _, level := range tt.levels {
				assert.True(t, tt.p.IsDirectory(level), level)
			}
			assert.True(t, tt.p.Mkdirs(tt.path, 0o755), "second call must succeed")
		})
	}
}

func TestMkdirs_EmptyPath(t *testing.T) {
	assert.False(t, newMemoryPOSIX(t).Mkdirs("", 0o755))
	assert.False(t, newMemoryWindows(t).Mkdirs("", 0o755))
}

func TestMkdirs_ExistingFile(t *testing.T) {
	p := newMemoryPOSIX(t)
	require.NoError(t, WriteContents(p, "/blocker", "w", []byte("x")))

	assert.False(t, p.Mkdirs("/blocker", 0o755))
	assert.False(t, p.Mkdirs("/blocker/sub/dir", 0o755))
	assert.False(t, p.Exists("/blocker/sub"))
}

func TestMkdirs_AppliesModeOnPOSIX(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}
	p := newLocalPOSIX(t)
	dir := filepath.Join(t.TempDir(), "x", "y")

	require.True(t, p.Mkdirs(dir, 0o700))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o700), info.Mode().Perm())
}

func TestMkdirs_FallbackWalk(t *testing.T) {
	t.Run("creates missing levels", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("MkdirAll", "a/b/c", fs.FileMode(0o755)).Return(errors.New("recursive create unsupported"))
		backend.On("Stat", "a/b/c").Return(nil, fs.ErrNotExist)
		backend.On("Stat", "a").Return(fakeInfo{name: "a", dir: true}, nil)
		backend.On("Stat", "a/b").Return(nil, fs.ErrNotExist)
		backend.On("Mkdir", "a/b", fs.FileMode(0o755)).Return(nil)
		backend.On("Mkdir", "a/b/c", fs.FileMode(0o755)).Return(nil)

		p, err := NewPOSIX(WithBackend(backend), WithLookupEnv(emptyEnv))
		require.NoError(t, err)

		assert.True(t, p.Mkdirs("a/b/c", 0o755))
		backend.AssertExpectations(t)
		backend.AssertNotCalled(t, "Mkdir", "a", mock.Anything)
	})

	t.Run("existing file fails", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("MkdirAll", "a/b/c", fs.FileMode(0o755)).Return(errors.New("not a directory"))
		backend.On("Stat", "a/b/c").Return(nil, fs.ErrNotExist)
		backend.On("Stat", "a").Return(fakeInfo{name: "a"}, nil)

		p, err := NewPOSIX(WithBackend(backend), WithLookupEnv(emptyEnv))
		require.NoError(t, err)

		assert.False(t, p.Mkdirs("a/b/c", 0o755))
		backend.AssertNotCalled(t, "Mkdir", mock.Anything, mock.Anything)
	})

	t.Run("creation failure stops the walk", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("MkdirAll", "/x/y", fs.FileMode(0o755)).Return(fs.ErrPermission)
		backend.On("Stat", "/x/y").Return(nil, fs.ErrNotExist)
		backend.On("Stat", "/x").Return(nil, fs.ErrNotExist)
		backend.On("Mkdir", "/x", fs.FileMode(0o755)).Return(fs.ErrPermission)

		p, err := NewPOSIX(WithBackend(backend), WithLookupEnv(emptyEnv))
		require.NoError(t, err)

		assert.False(t, p.Mkdirs("/x/y", 0o755))
		backend.AssertNotCalled(t, "Mkdir", "/x/y", mock.Anything)
	})

	t.Run("existing directory after failure", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("MkdirAll", "done", fs.FileMode(0o755)).Return(errors.New("race"))
		backend.On("Stat", "done").Return(fakeInfo{name: "done", dir: true}, nil)

		p, err := NewPOSIX(WithBackend(backend), WithLookupEnv(emptyEnv))
		require.NoError(t, err)

		assert.True(t, p.Mkdirs("done", 0o755))
		backend.AssertNotCalled(t, "Mkdir", mock.Anything, mock.Anything)
	})

	t.Run("windows skips unc share", func(t *testing.T) {
		const path = `\\server\share\a\b`
		backend := new(mockBackend)
		backend.On("MkdirAll", path, fs.FileMode(0o755)).Return(errors.New("recursive create unsupported"))
		backend.On("Stat", path).Return(nil, fs.ErrNotExist)
		backend.On("Stat", `\\server\share\a`).Return(nil, fs.ErrNotExist)
		backend.On("Mkdir", `\\server\share\a`, fs.FileMode(0o755)).Return(nil)
		backend.On("Mkdir", path, fs.FileMode(0o755)).Return(nil)

		p, err := NewWindows(WithBackend(backend), WithLookupEnv(emptyEnv))
		require.NoError(t, err)

		assert.True(t, p.Mkdirs(path, 0o755))
		backend.AssertExpectations(t)
		backend.AssertNotCalled(t, "Stat", `\\server`)
		backend.AssertNotCalled(t, "Stat", `\\server\share`)
		backend.AssertNotCalled(t, "Mkdir", `\\server\share`, mock.Anything)
	})

	t.Run("windows skips drive letter", func(t *testing.T) {
		const path = `C:\a`
		backend := new(mockBackend)
		backend.On("MkdirAll", path, fs.FileMode(0o755)).Return(errors.New("recursive create unsupported"))
		backend.On("Stat", path).Return(nil, fs.ErrNotExist)
		backend.On("Mkdir", path, fs.FileMode(0o755)).Return(nil)

		p, err := NewWindows(WithBackend(backend), WithLookupEnv(emptyEnv))
		require.NoError(t, err)

		assert.True(t, p.Mkdirs(path, 0o755))
		backend.AssertNotCalled(t, "Stat", `C:`)
		backend.AssertNotCalled(t, "Stat", `C:\`)
	})

	t.Run("windows incomplete unc prefix", func(t *testing.T) {
		const path = `\\server`
		backend := new(mockBackend)
		backend.On("MkdirAll", path, fs.FileMode(0o755)).Return(errors.New("bad network path"))
		backend.On("Stat", path).Return(nil, fs.ErrNotExist)

		p, err := NewWindows(WithBackend(backend), WithLookupEnv(emptyEnv))
		require.NoError(t, err)

		assert.False(t, p.Mkdirs(path, 0o755))
		backend.AssertNotCalled(t, "Mkdir", mock.Anything, mock.Anything)
	})
}
