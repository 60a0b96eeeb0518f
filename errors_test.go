package hostfs

import (
	"errors"
	"io/fs"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jmgilman/go/hostfs/core"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want platformerrors.ErrorCode
	}{
		{"not exist", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, platformerrors.CodeNotFound},
		{"exist", fs.ErrExist, platformerrors.CodeAlreadyExists},
		{"permission", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, platformerrors.CodeForbidden},
		{"not empty", &fs.PathError{Op: "remove", Path: "x", Err: core.ErrNotEmpty}, platformerrors.CodeConflict},
		{"not dir", core.ErrNotDir, platformerrors.CodeInvalidInput},
		{"unsupported", core.ErrUnsupported, platformerrors.CodeInternal},
		{"unknown", errors.New("boom"), platformerrors.CodeInternal},
		{"already classified", platformerrors.New(platformerrors.CodeInvalidInput, "bad"), platformerrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err, "op")
			assert.Equal(t, tt.want, platformerrors.GetCode(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil, "open", "x"))

	err := wrapError(fs.ErrNotExist, "open", "/missing")

	var pe platformerrors.PlatformError
	if assert.ErrorAs(t, err, &pe) {
		assert.Equal(t, platformerrors.CodeNotFound, pe.Code())
		assert.Equal(t, "/missing", pe.Context()["path"])
		assert.Equal(t, "open", pe.Context()["op"])
	}
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
