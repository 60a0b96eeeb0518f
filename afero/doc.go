// Package afero provides spf13/afero-backed implementations of core.Backend.
//
// NewOS wraps afero.OsFs and NewMemory wraps afero.MemMapFs; New adapts any
// other afero.Fs, such as a BasePathFs or a CopyOnWriteFs layered by the
// caller.
//
// afero's in-memory filesystem registers missing parents on create and
// removes directories regardless of their contents. FS checks both cases so
// every afero.Fs satisfies the same contract as the go-billy backends.
//
// Symbolic links are only available when the wrapped filesystem implements
// afero.Linker and afero.LinkReader; otherwise Symlink and Readlink return
// core.ErrUnsupported.
package afero
