package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs"
)

const defaultDirMode = "0755"

// ErrFailed is returned when a filesystem operation reports failure. Details
// are logged when --debug is set.
var ErrFailed = errors.New("operation failed")

type platformFunc func() hostfs.Platform

// failed reports a filesystem operation on path that returned false.
func failed(op, path string) error {
	return platformerrors.WithContext(
		platformerrors.Wrap(ErrFailed, platformerrors.CodeInternal, op+" "+path),
		"path", path,
	)
}

func newTmpDirCommand(platform platformFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "tmpdir",
		Short: "Print the directory temporary files should be placed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), platform().GetTmpDir())
			return nil
		},
	}
}

func newEnvCommand(platform platformFunc) *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "env <key>",
		Short: "Print an environment variable with platform semantics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), platform().GetEnv(args[0], def))
			return nil
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "Value printed when the variable is unset")

	return cmd
}

func newRealPathCommand(platform platformFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "realpath <path>...",
		Short: "Print the canonical absolute form of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				resolved := platform().RealPath(path)
				if resolved == "" {
					return failed("realpath", path)
				}
				fmt.Fprintln(cmd.OutOrStdout(), resolved)
			}
			return nil
		},
	}
}

func newMkdirCommand(platform platformFunc) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a single directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := parseMode(mode)
			if err != nil {
				return err
			}
			if !platform().Mkdir(args[0], perm) {
				return failed("mkdir", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", defaultDirMode, "Octal permission bits")

	return cmd
}

func newMkdirsCommand(platform platformFunc) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "mkdirs <path>",
		Short: "Create a directory along with any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := parseMode(mode)
			if err != nil {
				return err
			}
			if !platform().Mkdirs(args[0], perm) {
				return failed("mkdirs", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", defaultDirMode, "Octal permission bits")

	return cmd
}

func newRemoveCommand(platform platformFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove files or empty directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if !platform().Remove(path) {
					return failed("rm", path)
				}
			}
			return nil
		},
	}
}

func newCatCommand(platform platformFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>...",
		Short: "Print the contents of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				data, err := hostfs.ReadContents(platform(), path, "rb")
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newWriteCommand(platform platformFunc) *cobra.Command {
	var (
		appendMode bool
		exclusive  bool
	)

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Write standard input to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			mode := "wb"
			if appendMode {
				mode = "ab"
			}
			if exclusive {
				mode += "x"
			}
			return hostfs.WriteContents(platform(), args[0], mode, data)
		},
	}
	cmd.Flags().BoolVarP(&appendMode, "append", "a", false, "Append instead of truncating")
	cmd.Flags().BoolVarP(&exclusive, "exclusive", "x", false, "Fail if the file already exists")

	return cmd
}

func newStatCommand(platform platformFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Describe a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := platform()
			path := args[0]

			kind := "missing"
			switch {
			case p.IsDirectory(path):
				kind = "directory"
			case p.Exists(path):
				kind = "file"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:   %s\n", path)
			fmt.Fprintf(out, "type:   %s\n", kind)
			fmt.Fprintf(out, "root:   %d\n", p.WindowsRootPrefixLength(path))
			if kind == "file" {
				f, err := p.OpenFile(path, "rb")
				if err != nil {
					return err
				}
				defer f.Release()
				fmt.Fprintf(out, "size:   %d\n", f.Length())
			}
			if resolved := p.RealPath(path); resolved != "" {
				fmt.Fprintf(out, "real:   %s\n", resolved)
			}
			return nil
		},
	}
}

// parseMode parses octal permission bits such as "755", "0700" or "0o700".
func parseMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "invalid mode %q", s)
	}
	if v&^uint64(fs.ModePerm) != 0 {
		return 0, platformerrors.Newf(platformerrors.CodeInvalidInput, "invalid mode %q: only permission bits are allowed", s)
	}
	return fs.FileMode(v), nil
}
