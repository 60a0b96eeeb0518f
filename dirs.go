package hostfs

import (
	"io/fs"
)

// Exists reports whether any entry exists at path.
func (b *base) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := b.backend.Stat(path)
	return err == nil
}

// IsDirectory reports whether path exists and is a directory.
func (b *base) IsDirectory(path string) bool {
	if path == "" {
		return false
	}
	info, err := b.backend.Stat(path)
	return err == nil && info.IsDir()
}

// Mkdir creates exactly one directory level. It fails if the parent does not
// exist or if path already exists.
func (b *base) Mkdir(path string, mode fs.FileMode) bool {
	if path == "" {
		return false
	}
	if err := b.backend.Mkdir(path, mode.Perm()); err != nil {
		b.logFailure("mkdir", path, err)
		return false
	}
	b.applyMode(path, mode)
	return true
}

// Remove removes a file or an empty directory. Removing a missing path or a
// non-empty directory fails.
func (b *base) Remove(path string) bool {
	if path == "" {
		return false
	}
	if err := b.backend.Remove(path); err != nil {
		b.logFailure("remove", path, err)
		return false
	}
	return true
}
