package environment

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceSetIsInteractive(t *testing.T) {
	t.Cleanup(ResetIsInteractive)

	ForceSetIsInteractive(true)
	assert.True(t, IsInteractive(), "Expected IsInteractive to return true when overridden with true")

	ForceSetIsInteractive(false)
	assert.False(t, IsInteractive(), "Expected IsInteractive to return false when overridden with false")
}

func TestIsTerminal(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "not-a-terminal-*")
	require.NoError(t, err)
	defer file.Close()

	assert.False(t, IsTerminal(file), "a regular file is never a terminal")
}
