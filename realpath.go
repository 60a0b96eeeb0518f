package hostfs

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/jmgilman/go/hostfs/core"
	"github.com/jmgilman/go/hostfs/pathutil"
)

// maxSymlinkHops bounds symbolic link expansion during a path walk, matching
// the Linux ELOOP limit.
const maxSymlinkHops = 40

// RealPath resolves symbolic links and relative segments in path and returns
// the canonical absolute path, or "" if any component cannot be resolved.
func (b *base) RealPath(path string) string {
	if path == "" {
		return ""
	}
	resolved, err := b.realPath(path)
	if err != nil {
		b.logFailure("realpath", path, err)
		return ""
	}
	return resolved
}

func (b *base) realPath(path string) (string, error) {
	if r, ok := b.backend.(core.Resolver); ok {
		resolved, err := r.RealPath(path)
		if !errors.Is(err, core.ErrUnsupported) {
			return resolved, err
		}
	}
	return b.walkRealPath(path)
}

// walkRealPath resolves path component by component through the backend.
// Relative paths are resolved against the root of the backend.
func (b *base) walkRealPath(path string) (string, error) {
	lstat := b.backend.Stat
	var readlink func(string) (string, error)
	if sfs, ok := b.backend.(core.SymlinkFS); ok {
		lstat, readlink = sfs.Lstat, sfs.Readlink
	} else if mfs, ok := b.backend.(core.MetadataFS); ok {
		lstat = mfs.Lstat
	}

	sep := b.separatorOf(path)
	root, pending := b.split(path, sep)
	current := root
	hops := 0

	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]

		switch name {
		case ".":
			continue
		case "..":
			current = parent(current, root, b.style)
			continue
		}

		next := joinSep(current, name, sep, b.style)
		info, err := lstat(next)
		if err != nil {
			return "", err
		}

		if info.Mode()&fs.ModeSymlink != 0 && readlink != nil {
			hops++
			if hops > maxSymlinkHops {
				return "", &fs.PathError{Op: "realpath", Path: path, Err: errTooManyLinks}
			}
			target, err := readlink(next)
			if err != nil {
				return "", err
			}
			targetRoot, names := b.split(target, sep)
			if b.isRooted(target) {
				root, current = targetRoot, targetRoot
			}
			pending = append(names, pending...)
			continue
		}

		if len(pending) > 0 && !info.IsDir() {
			return "", &fs.PathError{Op: "realpath", Path: next, Err: core.ErrNotDir}
		}
		current = next
	}

	return current, nil
}

// split returns the root a walk over path starts from and the names it
// visits. A path without a root prefix starts from sep.
func (b *base) split(path string, sep byte) (string, []string) {
	root, segments := pathutil.Split(path, b.style)
	if root == "" {
		root = string(sep)
	}
	names := make([]string, 0, len(segments))
	for _, seg := range segments {
		names = append(names, seg.Name)
	}
	return root, names
}

// isRooted reports whether a link target replaces the walk's position
// instead of extending it.
func (b *base) isRooted(target string) bool {
	if target == "" {
		return false
	}
	return b.style.IsSeparator(target[0]) || pathutil.RootPrefixLength(target, b.style) > 0
}

// separatorOf returns the separator path already uses, so Windows paths
// written with '/' keep it.
func (b *base) separatorOf(path string) byte {
	if i := strings.IndexFunc(path, func(r rune) bool {
		return r < 0x80 && b.style.IsSeparator(byte(r))
	}); i >= 0 {
		return path[i]
	}
	return b.style.Separator()
}

// joinSep appends name to dir with sep unless dir already ends in a
// separator.
func joinSep(dir, name string, sep byte, style pathutil.Style) string {
	if dir != "" && !style.IsSeparator(dir[len(dir)-1]) {
		return dir + string(sep) + name
	}
	return dir + name
}

// parent strips the last component of current without climbing above root.
func parent(current, root string, style pathutil.Style) string {
	i := len(current) - 1
	for i >= 0 && !style.IsSeparator(current[i]) {
		i--
	}
	if i <= len(root) {
		return root
	}
	return current[:i]
}
