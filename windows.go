package hostfs

import (
	"github.com/jmgilman/go/hostfs/pathutil"
)

// Windows implements Platform with Windows conventions: '\' or '/'
// separated paths whose drive letter or UNC share is never created,
// permission bits ignored, and TMP, TEMP, LOCALAPPDATA temporary directory
// resolution where empty variables count as unset.
type Windows struct {
	*base
}

// NewWindows creates a Platform that applies Windows conventions regardless
// of the host operating system.
func NewWindows(opts ...Option) (*Windows, error) {
	b, err := newBase(pathutil.Windows, opts)
	if err != nil {
		return nil, err
	}
	return &Windows{base: b}, nil
}

// WindowsRootPrefixLength returns the index just past the drive letter or
// UNC share prefix of path.
func (w *Windows) WindowsRootPrefixLength(path string) int {
	return pathutil.RootPrefixLength(path, pathutil.Windows)
}

var _ Platform = (*Windows)(nil)
