package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmNonInteractiveReturnsDefault(t *testing.T) {
	// Test processes have no tty on stdin, so the default answer is
	// returned without blocking.
	got, err := Confirm("overwrite?", true)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Confirm("overwrite?", false)
	require.NoError(t, err)
	assert.False(t, got)
}
