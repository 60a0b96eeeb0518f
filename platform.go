package hostfs

import (
	"io/fs"
	"log/slog"

	platformerrors "github.com/jmgilman/go/errors"

	"github.com/jmgilman/go/hostfs/core"
	"github.com/jmgilman/go/hostfs/env"
	"github.com/jmgilman/go/hostfs/pathutil"
)

// Platform is the filesystem capability surface shared by the POSIX and
// Windows implementations.
//
// Boolean results report success; the underlying error, if any, is logged at
// debug level. RealPath reports failure with an empty string.
type Platform interface {
	// Open opens path with an fopen-style mode. It panics if the file cannot
	// be opened; use OpenFile when failure must be recoverable.
	Open(path, mode string) *File

	// OpenFile opens path with an fopen-style mode.
	OpenFile(path, mode string) (*File, error)

	// Exists reports whether any entry exists at path.
	Exists(path string) bool

	// IsDirectory reports whether path exists and is a directory.
	IsDirectory(path string) bool

	// Mkdir creates exactly one directory level.
	Mkdir(path string, mode fs.FileMode) bool

	// Mkdirs creates every missing directory level along path.
	Mkdirs(path string, mode fs.FileMode) bool

	// Remove removes a file or an empty directory.
	Remove(path string) bool

	// RealPath resolves symbolic links and relative segments to a canonical
	// absolute path, or returns "" on failure.
	RealPath(path string) string

	// WindowsRootPrefixLength returns the index at which creatable directory
	// components begin. It is always 0 for the POSIX implementation.
	WindowsRootPrefixLength(path string) int

	// GetEnv returns the value of key, or def when it is unset.
	GetEnv(key, def string) string

	// GetTmpDir returns the directory temporary files should be placed in.
	GetTmpDir() string

	// Style returns the path conventions the platform applies.
	Style() pathutil.Style
}

// base holds the behavior shared by both implementations. Platform specific
// decisions are delegated to applyMode.
type base struct {
	backend  core.Backend
	logger   *slog.Logger
	env      *env.Resolver
	style    pathutil.Style
	filePerm fs.FileMode

	// applyMode applies permission bits to a directory after creation.
	applyMode func(path string, mode fs.FileMode)
}

func newBase(style pathutil.Style, opts []Option) (*base, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	b := &base{
		backend:  cfg.backend,
		logger:   cfg.logger.With("platform", style.String(), "backend", cfg.backend.Type().String()),
		style:    style,
		filePerm: cfg.filePerm,
	}
	b.applyMode = func(string, fs.FileMode) {}

	resolver, err := env.New(env.Config{
		Style:         style,
		Lookup:        cfg.lookup,
		IsDir:         b.IsDirectory,
		SystemTempDir: cfg.systemTempDir,
		FallbackDirs:  cfg.tempDirs,
	})
	if err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "invalid environment configuration")
	}
	b.env = resolver

	return b, nil
}

// Style returns the path conventions the platform applies.
func (b *base) Style() pathutil.Style {
	return b.style
}

// Backend returns the storage backend the platform operates on.
func (b *base) Backend() core.Backend {
	return b.backend
}

// GetEnv returns the value of key, or def when the variable is unset under
// the platform convention.
func (b *base) GetEnv(key, def string) string {
	return b.env.Get(key, def)
}

// GetTmpDir returns the directory temporary files should be placed in.
func (b *base) GetTmpDir() string {
	return b.env.TmpDir()
}

// logFailure reports a failed operation whose result is collapsed to a
// boolean or an empty string.
func (b *base) logFailure(op, path string, err error) {
	b.logger.Debug("filesystem operation failed", "op", op, "path", path, "err", err)
}
