// Package pathutil provides pure functions for interpreting host paths:
// root-prefix detection for Windows drive letters and UNC shares, path
// decomposition into components, and separator normalization.
//
// Nothing in this package touches the filesystem. Every function takes the
// path Style explicitly so Windows rules can be exercised on any host; the
// Native helpers pick the style of the running platform.
package pathutil

import "runtime"

// Style selects the path conventions used to interpret a path string.
type Style int

const (
	// POSIX paths use '/' as the only separator and have no root prefix.
	POSIX Style = iota
	// Windows paths accept both '\' and '/' as separators and may start with
	// a drive letter ("C:") or a UNC prefix ("\\server\share").
	Windows
)

// Native returns the Style of the platform the binary was built for.
func Native() Style {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

// String returns a string representation of the Style.
func (s Style) String() string {
	switch s {
	case POSIX:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Separator returns the preferred separator for the style.
func (s Style) Separator() byte {
	if s == Windows {
		return '\\'
	}
	return '/'
}

// IsSeparator reports whether c separates path components under the style.
func (s Style) IsSeparator(c byte) bool {
	if s == Windows {
		return c == '\\' || c == '/'
	}
	return c == '/'
}

// indexSeparator returns the index of the first separator in path at or after
// start, or -1 if there is none.
func (s Style) indexSeparator(path string, start int) int {
	for i := start; i < len(path); i++ {
		if s.IsSeparator(path[i]) {
			return i
		}
	}
	return -1
}
