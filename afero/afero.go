package afero

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/hostfs/core"
	"github.com/spf13/afero"
)

// FS adapts an afero.Fs to core.Backend.
type FS struct {
	afs  afero.Fs
	kind core.FSType
}

// New wraps an arbitrary afero.Fs. The backend type is derived from the
// concrete filesystem: afero.OsFs is local, afero.MemMapFs is memory and
// everything else is unknown.
func New(afs afero.Fs) *FS {
	kind := core.FSTypeUnknown
	switch afs.(type) {
	case *afero.OsFs, afero.OsFs:
		kind = core.FSTypeLocal
	case *afero.MemMapFs:
		kind = core.FSTypeMemory
	}
	return &FS{afs: afs, kind: kind}
}

// NewOS creates an afero-backed local filesystem.
func NewOS() *FS {
	return New(afero.NewOsFs())
}

// NewMemory creates an afero-backed in-memory filesystem.
func NewMemory() *FS {
	return New(afero.NewMemMapFs())
}

// Unwrap returns the underlying afero.Fs.
func (f *FS) Unwrap() afero.Fs {
	return f.afs
}

// Type returns the backend type.
func (f *FS) Type() core.FSType {
	return f.kind
}

// name cleans paths for the in-memory filesystem, whose methods do not all
// normalize their arguments. Other filesystems receive paths unchanged.
func (f *FS) name(name string) string {
	if f.kind == core.FSTypeMemory {
		return filepath.Clean(name)
	}
	return name
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.afs.Stat(f.name(name))
}

// OpenFile opens a file with the specified flags and permissions.
// With O_CREATE the parent directory must already exist.
func (f *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	if flag&os.O_CREATE != 0 {
		if err := f.checkParent("open", name); err != nil {
			return nil, err
		}
	}
	af, err := f.afs.OpenFile(f.name(name), flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: af, name: name}, nil
}

// Mkdir creates a single directory. The parent must exist.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	if _, err := f.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: core.ErrExist}
	}
	if err := f.checkParent("mkdir", name); err != nil {
		return err
	}
	return f.afs.Mkdir(f.name(name), perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	if info, err := f.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return &fs.PathError{Op: "mkdir", Path: path, Err: core.ErrNotDir}
	}
	for dir := filepath.Dir(path); dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
		if info, err := f.Stat(dir); err == nil {
			if !info.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: core.ErrNotDir}
			}
			break
		}
	}
	return f.afs.MkdirAll(f.name(path), perm)
}

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	info, err := f.Lstat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		entries, err := afero.ReadDir(f.afs, f.name(name))
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
		}
	}
	return f.afs.Remove(f.name(name))
}

// Lstat returns file info without following symbolic links when the
// filesystem supports it, and falls back to Stat otherwise.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	if l, ok := f.afs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(f.name(name))
		return info, err
	}
	return f.afs.Stat(f.name(name))
}

// Chmod changes the permission bits of the named file.
func (f *FS) Chmod(name string, mode fs.FileMode) error {
	return f.afs.Chmod(f.name(name), mode.Perm())
}

// Symlink creates a symbolic link named newname pointing to oldname.
func (f *FS) Symlink(oldname, newname string) error {
	l, ok := f.afs.(afero.Linker)
	if !ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: core.ErrUnsupported}
	}
	err := l.SymlinkIfPossible(oldname, f.name(newname))
	if errors.Is(err, afero.ErrNoSymlink) {
		return &fs.PathError{Op: "symlink", Path: newname, Err: core.ErrUnsupported}
	}
	return err
}

// Readlink returns the destination of the named symbolic link.
func (f *FS) Readlink(name string) (string, error) {
	l, ok := f.afs.(afero.LinkReader)
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: core.ErrUnsupported}
	}
	target, err := l.ReadlinkIfPossible(f.name(name))
	if errors.Is(err, afero.ErrNoReadlink) {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: core.ErrUnsupported}
	}
	return target, err
}

// RealPath resolves name through the operating system. Only the local
// filesystem supports it.
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
	if parent == "." || parent == name || parent == filepath.Dir(parent) {
		return nil
	}
	info, err := f.Stat(parent)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotExist}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotDir}
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.Backend    = (*FS)(nil)
	_ core.MetadataFS = (*FS)(nil)
	_ core.SymlinkFS  = (*FS)(nil)
	_ core.Resolver   = (*FS)(nil)
)
