// Package cli implements the hostfs command line tool.
package cli

import (
	"io"
	"log/slog"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs"
	"github.com/jmgilman/go/hostfs/afero"
	"github.com/jmgilman/go/hostfs/billy"
	"github.com/jmgilman/go/hostfs/core"
	"github.com/jmgilman/go/hostfs/env"
)

// Options describes the collaborators required to build the CLI.
type Options struct {
	Version string

	// Backend replaces the local backend selected by --backend.
	Backend core.Backend
	// Lookup replaces the live process environment.
	Lookup env.LookupFunc

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Execute builds and runs the command tree with args. A nil args uses the
// process arguments.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)
	if args != nil {
		root.SetArgs(args)
	}
	return root.Execute()
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug    bool
	platform string
	backend  string
}

func newRootCommand(opts Options) *cobra.Command {
	var (
		flags globalFlags
		p     hostfs.Platform
	)

	root := &cobra.Command{
		Use:          "hostfs",
		Short:        "Inspect and manipulate the host filesystem with platform semantics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			p, err = newPlatform(cmd, opts, flags)
			return err
		},
	}

	root.Version = opts.Version
	if opts.In != nil {
		root.SetIn(opts.In)
	}
	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	if opts.Err != nil {
		root.SetErr(opts.Err)
	}

	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Log failed filesystem operations to stderr")
	root.PersistentFlags().StringVar(&flags.platform, "platform", "native", "Path conventions to apply (native, posix, windows)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "billy", "Local filesystem implementation (billy, afero)")

	platform := func() hostfs.Platform { return p }
	root.AddCommand(
		newTmpDirCommand(platform),
		newEnvCommand(platform),
		newRealPathCommand(platform),
		newMkdirCommand(platform),
		newMkdirsCommand(platform),
		newRemoveCommand(platform),
		newCatCommand(platform),
		newWriteCommand(platform),
		newStatCommand(platform),
	)

	return root
}

// newPlatform builds the platform selected by the global flags.
func newPlatform(cmd *cobra.Command, opts Options, flags globalFlags) (hostfs.Platform, error) {
	level := slog.LevelInfo
	if flags.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	backend := opts.Backend
	if backend == nil {
		switch flags.backend {
		case "billy":
			backend = billy.NewLocal()
		case "afero":
			backend = afero.NewOS()
		default:
			return nil, platformerrors.Newf(platformerrors.CodeInvalidInput, "unknown backend %q", flags.backend)
		}
	}

	platformOpts := []hostfs.Option{hostfs.WithBackend(backend), hostfs.WithLogger(logger)}
	if opts.Lookup != nil {
		platformOpts = append(platformOpts, hostfs.WithLookupEnv(opts.Lookup))
	}

	switch flags.platform {
	case "native":
		return hostfs.New(platformOpts...)
	case "posix":
		return hostfs.NewPOSIX(platformOpts...)
	case "windows":
		return hostfs.NewWindows(platformOpts...)
	default:
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput, "unknown platform %q", flags.platform)
	}
}
