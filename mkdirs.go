package hostfs

import (
	"io/fs"

	"github.com/jmgilman/go/hostfs/pathutil"
)

// Mkdirs creates every missing directory level along path.
//
// The backend's recursive create is tried first. When it fails and path does
// not already exist, each directory prefix of path after its root prefix is
// visited in ascending order: existing directories are kept, an existing
// non-directory fails the call and missing levels are created one at a time.
// Levels created before a failure are left in place.
func (b *base) Mkdirs(path string, mode fs.FileMode) bool {
	if path == "" {
		return false
	}

	err := b.backend.MkdirAll(path, mode.Perm())
	if err == nil {
		b.applyMode(path, mode)
		return true
	}
	b.logFailure("mkdirall", path, err)

	if b.Exists(path) {
		return b.IsDirectory(path)
	}

	prefixes := pathutil.Prefixes(path, b.style)
	if len(prefixes) == 0 {
		// Only a root prefix: nothing is creatable.
		return b.IsDirectory(path)
	}
	for _, prefix := range prefixes {
		info, err := b.backend.Stat(prefix)
		if err == nil {
			if info.IsDir() {
				continue
			}
			b.logger.Debug("path component is not a directory", "path", path, "component", prefix)
			return false
		}
		if !b.Mkdir(prefix, mode) {
			return false
		}
	}
	return true
}
