package env

import (
	"os"

	platformerrors "github.com/jmgilman/go/errors"

	"github.com/jmgilman/go/hostfs/pathutil"
)

// Variables consulted when resolving the temporary directory.
const (
	VarTMPDIR       = "TMPDIR"
	VarTMP          = "TMP"
	VarTEMP         = "TEMP"
	VarLOCALAPPDATA = "LOCALAPPDATA"
)

// DefaultPOSIXTempDirs lists the directories tried, in order, when TMPDIR is
// not usable.
var DefaultPOSIXTempDirs = []string{"/tmp", "/var/tmp"}

// CurrentDir is the last resort of every temporary directory chain.
const CurrentDir = "."

// Config configures a Resolver.
type Config struct {
	// Style selects which variables are consulted and how empty values are
	// treated.
	Style pathutil.Style

	// Lookup reads a variable. Default: os.LookupEnv.
	Lookup LookupFunc

	// IsDir reports whether a directory exists. It is only used to walk the
	// POSIX fallback chain. Required for the POSIX style.
	IsDir func(path string) bool

	// SystemTempDir asks the operating system for its temporary path. It is
	// only used by the Windows style. Default: os.TempDir.
	SystemTempDir func() string

	// FallbackDirs overrides DefaultPOSIXTempDirs.
	FallbackDirs []string
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	switch c.Style {
	case pathutil.POSIX:
		if c.IsDir == nil {
			return platformerrors.Newf(platformerrors.CodeInvalidInput, "directory check is required for the %s style", c.Style)
		}
	case pathutil.Windows:
	default:
		return platformerrors.Newf(platformerrors.CodeInvalidInput, "unsupported path style %d", int(c.Style))
	}
	return nil
}

// Resolver applies platform rules to environment lookups.
type Resolver struct {
	style         pathutil.Style
	lookup        LookupFunc
	isDir         func(string) bool
	systemTempDir func() string
	fallbackDirs  []string
}

// New creates a Resolver from cfg, filling in defaults for unset fields.
func New(cfg Config) (*Resolver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := &Resolver{
		style:         cfg.Style,
		lookup:        cfg.Lookup,
		isDir:         cfg.IsDir,
		systemTempDir: cfg.SystemTempDir,
		fallbackDirs:  cfg.FallbackDirs,
	}
	if r.lookup == nil {
		r.lookup = os.LookupEnv
	}
	if r.systemTempDir == nil {
		r.systemTempDir = os.TempDir
	}
	if r.fallbackDirs == nil {
		r.fallbackDirs = DefaultPOSIXTempDirs
	}
	return r, nil
}

// Style returns the path style the resolver applies.
func (r *Resolver) Style() pathutil.Style {
	return r.style
}

// Lookup reports the value of key under the platform convention. On Windows
// an empty value is indistinguishable from an unset variable, so it reports
// false; on POSIX an empty but set variable is reported as set.
func (r *Resolver) Lookup(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	if v == "" && r.style == pathutil.Windows {
		return "", false
	}
	return v, true
}

// Get returns the value of key, or def when the variable is not set.
func (r *Resolver) Get(key, def string) string {
	if v, ok := r.Lookup(key); ok {
		return v
	}
	return def
}

// TmpDir returns the directory temporary files should be placed in.
func (r *Resolver) TmpDir() string {
	if r.style == pathutil.Windows {
		return r.windowsTmpDir()
	}
	return r.posixTmpDir()
}

func (r *Resolver) posixTmpDir() string {
	if v, ok := r.lookup(VarTMPDIR); ok && v != "" {
		return pathutil.TrimTrailingSeparators(v, r.style)
	}
	for _, dir := range r.fallbackDirs {
		if r.isDir(dir) {
			return dir
		}
	}
	return CurrentDir
}

func (r *Resolver) windowsTmpDir() string {
	for _, key := range []string{VarTMP, VarTEMP, VarLOCALAPPDATA} {
		if v, ok := r.lookup(key); ok && v != "" {
			return pathutil.TrimTrailingSeparators(v, r.style)
		}
	}
	if dir := r.systemTempDir(); dir != "" {
		return pathutil.TrimTrailingSeparators(dir, r.style)
	}
	return CurrentDir
}
