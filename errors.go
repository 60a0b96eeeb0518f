package hostfs

import (
	"errors"
	"io/fs"

	platformerrors "github.com/jmgilman/go/errors"

	"github.com/jmgilman/go/hostfs/core"
)

var (
	// errTooManyLinks is returned by the path walk when a chain of symbolic
	// links exceeds maxSymlinkHops.
	errTooManyLinks = errors.New("too many levels of symbolic links")

	// errWriteFailed is returned when a write is short or fails.
	errWriteFailed = errors.New("write failed")
)

// wrapError classifies err as a platform error and attaches the operation
// and path as context. It preserves the original error chain for
// errors.Is/errors.As compatibility. If err is nil, returns nil.
func wrapError(err error, op, path string) error {
	if err == nil {
		return nil
	}

	wrapped := platformerrors.WithContext(classifyError(err, op), "op", op)
	return platformerrors.WithContext(wrapped, "path", path)
}

// classifyError maps filesystem errors to platform error codes.
// Errors that are already platform errors are returned unchanged.
func classifyError(err error, op string) error {
	var platformErr platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return err
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, op+": no such file or directory")
	case errors.Is(err, fs.ErrExist):
		return platformerrors.Wrap(err, platformerrors.CodeAlreadyExists, op+": file exists")
	case errors.Is(err, fs.ErrPermission):
		return platformerrors.Wrap(err, platformerrors.CodeForbidden, op+": permission denied")
	case errors.Is(err, core.ErrNotEmpty):
		return platformerrors.Wrap(err, platformerrors.CodeConflict, op+": directory not empty")
	case errors.Is(err, core.ErrNotDir):
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, op+": not a directory")
	case errors.Is(err, fs.ErrInvalid):
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, op+": invalid argument")
	case errors.Is(err, core.ErrUnsupported):
		return platformerrors.Wrap(err, platformerrors.CodeInternal, op+": operation not supported")
	default:
		return platformerrors.Wrap(err, platformerrors.CodeInternal, op+" failed")
	}
}
