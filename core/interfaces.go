package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of backend implementation.
type FSType int

const (
	// FSTypeUnknown indicates the backend type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a backend that talks to the host operating system.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory backend.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Backend is the storage contract the platform layer is built on.
//
// A Backend performs exactly one blocking call per method and never retries.
// Paths are passed through as given by the caller; a Backend must not
// reinterpret separators or prefixes, that is the job of the platform layer.
//
// All providers MUST implement this interface. Optional capabilities are
// discovered with type assertions (MetadataFS, SymlinkFS, Resolver).
type Backend interface {
	// Stat returns file metadata, following symbolic links.
	// If the entry does not exist the error satisfies errors.Is(err, ErrNotExist).
	Stat(name string) (fs.FileInfo, error)

	// OpenFile opens a file with the specified flags and permissions.
	// The flags are a bitmask (O_RDONLY, O_WRONLY, O_RDWR, O_CREATE, O_TRUNC,
	// O_APPEND, O_EXCL).
	//
	// OpenFile never creates missing parent directories: opening
	// "a/b/c.txt" with O_CREATE fails with ErrNotExist when "a/b" is absent.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Mkdir creates exactly one directory level.
	// It fails with ErrExist if name already exists and with ErrNotExist if
	// the parent directory does not exist.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error

	// Remove removes the named file or empty directory.
	// Removing a non-empty directory fails with ErrNotEmpty.
	Remove(name string) error

	// Type returns the underlying backend type.
	Type() FSType
}

// File represents an open file handle owned by exactly one caller.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// Syncer allows syncing file contents to stable storage.
//
// Not all File implementations support sync operations. Callers should use
// type assertion to check if this capability is available:
//
//	if s, ok := file.(Syncer); ok {
//	    err := s.Sync()
//	}
type Syncer interface {
	// Sync commits the current contents of the file to stable storage.
	Sync() error
}

// MetadataFS defines metadata operations.
//
// Use type assertion to check if a backend supports metadata operations:
//
//	if mfs, ok := backend.(MetadataFS); ok {
//	    err := mfs.Chmod("dir", 0o700)
//	}
type MetadataFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the permission bits of the named file.
	// Only the permission bits of mode are used; the type of the entry is
	// never changed.
	Chmod(name string, mode fs.FileMode) error
}

// SymlinkFS defines symbolic link operations.
type SymlinkFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Symlink creates a symbolic link named newname pointing to oldname.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// Resolver is implemented by backends that can canonicalize paths natively,
// typically by asking the operating system.
type Resolver interface {
	// RealPath resolves symbolic links and relative segments and returns an
	// absolute path. It fails if any component does not exist.
	RealPath(name string) (string, error)
}
