package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrInputParse, "bad record")
	assert.Equal(t, "[INPUT_PARSE] bad record", err.Error())

	wrapped := Wrap(fmt.Errorf("line 3"), ErrInputParse, "bad record")
	assert.Equal(t, "[INPUT_PARSE] bad record: line 3", wrapped.Error())
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(ErrConfigLoad, "cannot read %s", "tabcat.toml")

	assert.True(t, stderrors.Is(err, New(ErrConfigLoad, "")))
	assert.False(t, stderrors.Is(err, New(ErrConfigParse, "")))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "ignored %d", 1))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(cause, ErrOutputWrite, "write failed")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrAborted, CodeOf(New(ErrAborted, "declined")))
	assert.Equal(t, ErrUnknown, CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrInputOpen, CodeOf(fmt.Errorf("outer: %w", New(ErrInputOpen, "no file"))))
}
