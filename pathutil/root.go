package pathutil

// RootPrefixLength returns the index at which creatable directory components
// begin in path.
//
// Under the Windows style the drive letter prefix ("C:" plus at most one
// separator) and the UNC prefix ("\\server\share") are skipped. For a UNC
// path the returned index points at the separator that follows the share, so
// the share itself is never treated as a directory to create. When the UNC
// prefix is incomplete (no share component) the full length of path is
// returned. Paths with neither form, and every path under the POSIX style,
// yield 0.
func RootPrefixLength(path string, style Style) int {
	if style != Windows {
		return 0
	}

	if len(path) > 1 && path[1] == ':' {
		prefix := 2
		if len(path) > 2 && style.IsSeparator(path[2]) {
			prefix++
		}
		return prefix
	}

	if len(path) > 1 && path[0] == '\\' && path[1] == '\\' {
		server := style.indexSeparator(path, 2)
		if server < 0 {
			return len(path)
		}
		share := style.indexSeparator(path, server+1)
		if share < 0 {
			return len(path)
		}
		return share
	}

	return 0
}

// WindowsRootPrefixLength is RootPrefixLength under the native style. It
// always returns 0 when not running on Windows.
func WindowsRootPrefixLength(path string) int {
	return RootPrefixLength(path, Native())
}

// IsAbs reports whether path is absolute under the style.
func IsAbs(path string, style Style) bool {
	if style != Windows {
		return len(path) > 0 && path[0] == '/'
	}
	if len(path) > 2 && path[1] == ':' && style.IsSeparator(path[2]) {
		return true
	}
	return len(path) > 1 && style.IsSeparator(path[0]) && style.IsSeparator(path[1])
}

// TrimTrailingSeparators removes trailing separators from path without
// eating into its root: "/" stays "/", "C:\" stays "C:\" and "/tmp/" becomes
// "/tmp".
func TrimTrailingSeparators(path string, style Style) string {
	keep := RootPrefixLength(path, style)
	if keep == 0 && len(path) > 0 && style.IsSeparator(path[0]) {
		keep = 1
	}
	end := len(path)
	for end > keep && style.IsSeparator(path[end-1]) {
		end--
	}
	return path[:end]
}
