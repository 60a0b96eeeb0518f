// Package billy provides go-billy-backed implementations of core.Backend.
//
// NewLocal wraps osfs.New(""), which hands paths to the operating system
// unchanged, so relative paths resolve against the working directory.
// NewMemory wraps memfs and is what the platform tests use to
// exercise both the POSIX and the Windows code paths on any host.
//
// go-billy is more forgiving than the backend contract: it creates missing
// parents when opening with O_CREATE and does not report a dedicated error
// for non-empty directories. FS checks these cases itself, so
//
//	backend := billy.NewMemory()
//	_, err := backend.OpenFile("a/b.txt", os.O_CREATE|os.O_WRONLY, 0o644)
//	// errors.Is(err, core.ErrNotExist) == true, "a" was never created
//
// # Capabilities
//
// FS implements core.MetadataFS, core.SymlinkFS and core.Resolver. Chmod on
// the in-memory filesystem returns core.ErrUnsupported because memfs does
// not track permission changes, and RealPath is only answered by the local
// filesystem.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines. File
// handles are not safe for concurrent use.
package billy
