package hostfs

import (
	"io/fs"

	"github.com/jmgilman/go/hostfs/core"
	"github.com/jmgilman/go/hostfs/pathutil"
)

// POSIX implements Platform with POSIX conventions: '/' separated paths
// without root prefixes, permission bits applied to created directories and
// TMPDIR based temporary directory resolution.
type POSIX struct {
	*base
}

// NewPOSIX creates a Platform that applies POSIX conventions regardless of
// the host operating system.
func NewPOSIX(opts ...Option) (*POSIX, error) {
	b, err := newBase(pathutil.POSIX, opts)
	if err != nil {
		return nil, err
	}
	p := &POSIX{base: b}
	b.applyMode = p.applyMode
	return p, nil
}

// WindowsRootPrefixLength always returns 0: POSIX paths have no drive or UNC
// prefix.
func (p *POSIX) WindowsRootPrefixLength(string) int {
	return 0
}

// applyMode sets the requested permission bits on path when the backend
// supports it. Failures are logged and otherwise ignored.
func (p *POSIX) applyMode(path string, mode fs.FileMode) {
	mfs, ok := p.backend.(core.MetadataFS)
	if !ok {
		return
	}
	if err := mfs.Chmod(path, mode.Perm()); err != nil {
		p.logFailure("chmod", path, err)
	}
}

var _ Platform = (*POSIX)(nil)
