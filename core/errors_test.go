package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) || !errors.Is(tt.stdlibErr, tt.coreErr) {
				t.Errorf("%s does not match stdlib: core=%v, stdlib=%v",
					tt.name, tt.coreErr, tt.stdlibErr)
			}

			wrapped := fmt.Errorf("remove x: %w", tt.coreErr)
			if !errors.Is(wrapped, tt.stdlibErr) {
				t.Errorf("errors.Is(wrapped %s, stdlib) returned false, expected true", tt.name)
			}
		})
	}
}

// TestErrorIdentity verifies package-local errors are distinct from each other.
func TestErrorIdentity(t *testing.T) {
	local := []error{core.ErrNotEmpty, core.ErrNotDir, core.ErrUnsupported}
	for i, a := range local {
		for j, b := range local {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
		if errors.Is(a, core.ErrNotExist) {
			t.Errorf("%v should not match ErrNotExist", a)
		}
	}
}

// TestErrUnsupportedMessage verifies ErrUnsupported has the expected message.
func TestErrUnsupportedMessage(t *testing.T) {
	expected := "operation not supported"
	if core.ErrUnsupported.Error() != expected {
		t.Errorf("ErrUnsupported.Error() = %q, want %q",
			core.ErrUnsupported.Error(), expected)
	}
}
