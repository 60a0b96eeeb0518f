// Package hostfs hides POSIX and Windows filesystem differences behind one
// Platform interface.
//
// A Platform offers a buffered file handle, directory queries, single and
// recursive directory creation, removal, canonical path resolution and
// environment based temporary directory lookup. Two implementations exist:
//
//   - POSIX: '/' paths, permission bits applied to created directories,
//     TMPDIR then /tmp, /var/tmp and "." for temporary files.
//   - Windows: '\' or '/' paths whose drive letter or UNC share is never
//     created, permission bits ignored, TMP, TEMP, LOCALAPPDATA then the
//     system temporary path.
//
// New picks the implementation for the host at build time; NewPOSIX and
// NewWindows pick one explicitly. Both reach storage only through a
// core.Backend, so either can run against an in-memory backend on any host:
//
//	p, err := hostfs.NewWindows(hostfs.WithBackend(billy.NewMemory()))
//	if err != nil {
//	    return err
//	}
//	p.Mkdirs(`C:/data/cache`, 0o755)
//
// # Errors
//
// Operations with a natural yes/no outcome return a bool and log the cause
// at debug level through the configured slog.Logger. OpenFile returns
// structured errors from github.com/jmgilman/go/errors; Open panics with the
// same error instead.
//
// # File Lifetime
//
// A File must be closed exactly once. Defer Release right after opening, or
// use WithFile, to release it on every return path:
//
//	err := hostfs.WithFile(p, "out.bin", "wb", func(f *hostfs.File) error {
//	    if !f.Write(payload) {
//	        return errors.New("short write")
//	    }
//	    return nil
//	})
//
// The package level functions operate on Default, the platform of the host
// backed by the local filesystem.
package hostfs
