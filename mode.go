package hostfs

import (
	"os"

	platformerrors "github.com/jmgilman/go/errors"
)

// ParseMode converts an fopen-style mode string into os.OpenFile flags.
//
// The first character selects the access: "r" reads an existing file, "w"
// truncates or creates a file for writing and "a" appends to a file, creating
// it if needed. It may be followed, in any order, by "+" (read and write),
// "b" or "t" (accepted and ignored) and "x" (fail if the file exists, only
// with "w" or "a").
func ParseMode(mode string) (int, error) {
	if mode == "" {
		return 0, platformerrors.New(platformerrors.CodeInvalidInput, "empty file mode")
	}

	var flag int
	switch mode[0] {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return 0, invalidMode(mode)
	}

	var plus, excl bool
	for i := 1; i < len(mode); i++ {
		switch mode[i] {
		case '+':
			if plus {
				return 0, invalidMode(mode)
			}
			plus = true
		case 'x':
			if excl || mode[0] == 'r' {
				return 0, invalidMode(mode)
			}
			excl = true
		case 'b', 't':
		default:
			return 0, invalidMode(mode)
		}
	}

	if plus {
		flag &^= os.O_WRONLY
		flag |= os.O_RDWR
	}
	if excl {
		flag |= os.O_EXCL
	}
	return flag, nil
}

func invalidMode(mode string) error {
	return platformerrors.WithContext(
		platformerrors.New(platformerrors.CodeInvalidInput, "invalid file mode"),
		"mode", mode,
	)
}
