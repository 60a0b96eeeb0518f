package hostfs

import (
	"io/fs"
	"sync"

	"github.com/jmgilman/go/hostfs/pathutil"
)

var (
	defaultOnce     sync.Once
	defaultPlatform Platform
)

// Default returns the process-wide Platform for the host operating system,
// backed by the local filesystem and the live process environment. It is
// created on first use.
func Default() Platform {
	defaultOnce.Do(func() {
		p, err := New()
		if err != nil {
			// Only options can make New fail.
			panic(err)
		}
		defaultPlatform = p
	})
	return defaultPlatform
}

// Open opens path on the default platform and panics on failure.
func Open(path, mode string) *File {
	return Default().Open(path, mode)
}

// OpenFile opens path on the default platform.
func OpenFile(path, mode string) (*File, error) {
	return Default().OpenFile(path, mode)
}

// Exists reports whether any entry exists at path.
func Exists(path string) bool {
	return Default().Exists(path)
}

// IsDirectory reports whether path exists and is a directory.
func IsDirectory(path string) bool {
	return Default().IsDirectory(path)
}

// Mkdir creates exactly one directory level.
func Mkdir(path string, mode fs.FileMode) bool {
	return Default().Mkdir(path, mode)
}

// Mkdirs creates every missing directory level along path.
func Mkdirs(path string, mode fs.FileMode) bool {
	return Default().Mkdirs(path, mode)
}

// Remove removes a file or an empty directory.
func Remove(path string) bool {
	return Default().Remove(path)
}

// RealPath returns the canonical absolute form of path, or "" on failure.
func RealPath(path string) string {
	return Default().RealPath(path)
}

// WindowsRootPrefixLength returns the index just past the drive letter or
// UNC share prefix of path when running on Windows, and 0 otherwise.
func WindowsRootPrefixLength(path string) int {
	return pathutil.WindowsRootPrefixLength(path)
}

// GetEnv returns the value of the environment variable key, or def.
func GetEnv(key, def string) string {
	return Default().GetEnv(key, def)
}

// GetTmpDir returns the directory temporary files should be placed in.
func GetTmpDir() string {
	return Default().GetTmpDir()
}

// ReadContentsFromFile returns the contents of path, opened with mode. It
// panics if the file cannot be opened.
func ReadContentsFromFile(path, mode string) []byte {
	f := Open(path, mode)
	defer f.Release()
	return f.ReadContents()
}

// WriteContentsToFile writes contents to path, opened with mode. It panics
// if the file cannot be opened and reports whether the write succeeded.
func WriteContentsToFile(path, mode string, contents []byte) bool {
	f := Open(path, mode)
	defer f.Release()
	return f.Write(contents) && f.Close()
}
