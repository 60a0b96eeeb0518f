package afero

import (
	"github.com/jmgilman/go/hostfs/core"
	"github.com/spf13/afero"
)

// File wraps afero.File to implement core.File.
// Name reports the path given to OpenFile; afero.MemMapFs would otherwise
// report its normalized form.
type File struct {
	file afero.File
	name string
}

func (f *File) Read(p []byte) (int, error) { return f.file.Read(p) }

func (f *File) Write(p []byte) (int, error) { return f.file.Write(p) }

func (f *File) Seek(offset int64, whence int) (int64, error) { return f.file.Seek(offset, whence) }

func (f *File) Close() error { return f.file.Close() }

// Name returns the name provided to OpenFile.
func (f *File) Name() string { return f.name }

// Sync commits the file to stable storage. It is a no-op in memory.
func (f *File) Sync() error { return f.file.Sync() }

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ core.Syncer = (*File)(nil)
)
