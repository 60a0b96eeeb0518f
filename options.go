package hostfs

import (
	"io/fs"
	"log/slog"

	platformerrors "github.com/jmgilman/go/errors"

	"github.com/jmgilman/go/hostfs/billy"
	"github.com/jmgilman/go/hostfs/core"
	"github.com/jmgilman/go/hostfs/env"
)

// DefaultFilePerm is the permission new files are created with, before the
// process umask is applied.
const DefaultFilePerm fs.FileMode = 0o666

// Option configures a Platform.
type Option func(*config)

type config struct {
	backend       core.Backend
	logger        *slog.Logger
	lookup        env.LookupFunc
	systemTempDir func() string
	tempDirs      []string
	filePerm      fs.FileMode
}

func defaultConfig() config {
	return config{
		logger:   slog.New(slog.DiscardHandler),
		filePerm: DefaultFilePerm,
	}
}

// validate checks if the configuration is valid.
func (c *config) validate() error {
	if c.filePerm&^fs.ModePerm != 0 {
		return platformerrors.New(platformerrors.CodeInvalidInput, "file permission must only contain permission bits")
	}
	if c.logger == nil {
		return platformerrors.New(platformerrors.CodeInvalidInput, "logger cannot be nil")
	}
	return nil
}

// WithBackend sets the storage backend. Default: the go-billy local
// filesystem.
func WithBackend(backend core.Backend) Option {
	return func(c *config) {
		c.backend = backend
	}
}

// WithLogger sets the logger failed operations are reported to at debug
// level. Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLookupEnv sets the environment source used by GetEnv and GetTmpDir.
// Default: the live process environment.
func WithLookupEnv(lookup env.LookupFunc) Option {
	return func(c *config) {
		c.lookup = lookup
	}
}

// WithSystemTempDir sets the query used by the Windows temporary directory
// chain once TMP, TEMP and LOCALAPPDATA are exhausted. Default: os.TempDir.
func WithSystemTempDir(fn func() string) Option {
	return func(c *config) {
		c.systemTempDir = fn
	}
}

// WithTempDirFallbacks replaces the directories the POSIX temporary directory
// chain tries after TMPDIR. Default: env.DefaultPOSIXTempDirs.
func WithTempDirFallbacks(dirs ...string) Option {
	return func(c *config) {
		c.tempDirs = dirs
	}
}

// WithFilePerm sets the permission bits files are created with.
// Default: DefaultFilePerm.
func WithFilePerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.filePerm = perm
	}
}

func buildConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	if cfg.backend == nil {
		cfg.backend = billy.NewLocal()
	}
	return cfg, nil
}
