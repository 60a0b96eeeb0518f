package hostfs

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/billy"
	"github.com/jmgilman/go/hostfs/core"
	"github.com/jmgilman/go/hostfs/env"
)

// emptyEnv isolates tests from the live process environment.
var emptyEnv = env.FromMap(nil)

func newMemoryPOSIX(t *testing.T, opts ...Option) *POSIX {
	t.Helper()
	opts = append([]Option{WithBackend(billy.NewMemory()), WithLookupEnv(emptyEnv)}, opts...)
	p, err := NewPOSIX(opts...)
	require.NoError(t, err)
	return p
}

func newMemoryWindows(t *testing.T, opts ...Option) *Windows {
	t.Helper()
	opts = append([]Option{
		WithBackend(billy.NewMemory()),
		WithLookupEnv(emptyEnv),
		WithSystemTempDir(func() string { return `C:\Windows\Temp\` }),
	}, opts...)
	p, err := NewWindows(opts...)
	require.NoError(t, err)
	return p
}

func newLocalPOSIX(t *testing.T, opts ...Option) *POSIX {
	t.Helper()
	opts = append([]Option{WithBackend(billy.NewLocal()), WithLookupEnv(emptyEnv)}, opts...)
	p, err := NewPOSIX(opts...)
	require.NoError(t, err)
	return p
}

// mockBackend is a core.Backend whose calls are scripted with testify/mock.
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *mockBackend) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	args := m.Called(name, flag, perm)
	f, _ := args.Get(0).(core.File)
	return f, args.Error(1)
}

func (m *mockBackend) Mkdir(name string, perm fs.FileMode) error {
	return m.Called(name, perm).Error(0)
}

func (m *mockBackend) MkdirAll(path string, perm fs.FileMode) error {
	return m.Called(path, perm).Error(0)
}

func (m *mockBackend) Remove(name string) error {
	return m.Called(name).Error(0)
}

func (m *mockBackend) Type() core.FSType {
	return core.FSTypeUnknown
}

// fakeInfo is a minimal fs.FileInfo for scripted Stat results.
type fakeInfo struct {
	name string
	dir  bool
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

func (i fakeInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
