package billy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/hostfs/core"
)

// FS adapts a billy.Filesystem to core.Backend.
//
// go-billy creates missing parents on OpenFile and MkdirAll and is lenient
// about removing non-empty directories in memory; FS restores the stricter
// core.Backend contract on top of it.
type FS struct {
	bfs  billy.Filesystem
	kind core.FSType
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	bfs billy.Filesystem
}

// WithFilesystem replaces the billy.Filesystem a constructor would create.
// The backend type reported by Type is unchanged.
func WithFilesystem(bfs billy.Filesystem) Option {
	return func(c *config) {
		c.bfs = bfs
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// Paths are passed to the operating system unchanged, so relative paths are
// resolved against the process working directory.
func NewLocal(opts ...Option) *FS {
	cfg := config{bfs: osfs.New("")}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{bfs: cfg.bfs, kind: core.FSTypeLocal}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty apart from its root.
func NewMemory(opts ...Option) *FS {
	cfg := config{bfs: memfs.New()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{bfs: cfg.bfs, kind: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the backend type chosen at construction.
func (f *FS) Type() core.FSType {
	return f.kind
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(name)
}

// OpenFile opens a file with the specified flags and permissions.
// With O_CREATE the parent directory must already exist.
func (f *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	if flag&os.O_CREATE != 0 {
		if err := f.checkParent("open", name); err != nil {
			return nil, err
		}
	}
	bf, err := f.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return &File{file: bf, name: name}, nil
}

// Mkdir creates a single directory. The parent must exist.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	if _, err := f.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: core.ErrExist}
	}
	if err := f.checkParent("mkdir", name); err != nil {
		return err
	}
	// The parent exists, so MkdirAll creates exactly one level.
	return f.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	if info, err := f.bfs.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return &fs.PathError{Op: "mkdir", Path: path, Err: core.ErrNotDir}
	}
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		info, err := f.bfs.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: core.ErrNotDir}
			}
			break
		}
		if next := filepath.Dir(dir); next == dir {
			break
		}
	}
	return f.bfs.MkdirAll(path, perm)
}

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	info, err := f.bfs.Lstat(name)
	if err != nil {
		return pathError("remove", name, err)
	}
	if info.IsDir() {
		entries, err := f.bfs.ReadDir(name)
		if err != nil {
			return pathError("remove", name, err)
		}
		if len(entries) > 0 {
			return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
		}
	}
	return f.bfs.Remove(name)
}

// Lstat returns file info without following symbolic links.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	return f.bfs.Lstat(name)
}

// Chmod changes the permission bits of the named file.
//
// The local filesystem is changed through the operating system. In-memory
// filesystems only support Chmod when the wrapped billy.Filesystem implements
// billy.Change; otherwise core.ErrUnsupported is returned.
func (f *FS) Chmod(name string, mode fs.FileMode) error {
	if ch, ok := f.bfs.(billy.Change); ok {
		return ch.Chmod(name, mode.Perm())
	}
	if f.kind == core.FSTypeLocal {
		return os.Chmod(name, mode.Perm())
	}
	return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
}

// Symlink creates a symbolic link named newname pointing to oldname.
func (f *FS) Symlink(oldname, newname string) error {
	return f.bfs.Symlink(oldname, newname)
}

// Readlink returns the destination of the named symbolic link.
func (f *FS) Readlink(name string) (string, error) {
	return f.bfs.Readlink(name)
}

// RealPath resolves name through the operating system. It is only supported
// by the local filesystem; other backends return core.ErrUnsupported so the
// caller can fall back to a generic walk.
func (f *FS) RealPath(name string) (string, error) {
	if f.kind != core.FSTypeLocal {
		return "", &fs.PathError{Op: "realpath", Path: name, Err: core.ErrUnsupported}
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// checkParent verifies the parent directory of name exists and is a
// directory.
func (f *FS) checkParent(op, name string) error {
	parent := filepath.Dir(name)
	if parent == "." || parent == name || isRoot(parent) {
		return nil
	}
	info, err := f.bfs.Stat(parent)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotExist}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotDir}
	}
	return nil
}

// isRoot reports whether dir names a filesystem root such as "/" or "C:\".
func isRoot(dir string) bool {
	return dir == string(filepath.Separator) || dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// pathError attaches op and name to err unless it already carries a path.
func pathError(op, name string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

// Compile-time interface checks.
var (
	_ core.Backend    = (*FS)(nil)
	_ core.MetadataFS = (*FS)(nil)
	_ core.SymlinkFS  = (*FS)(nil)
	_ core.Resolver   = (*FS)(nil)
)
