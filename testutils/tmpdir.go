package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTmpDir changes the working directory to a fresh temporary directory.
// The previous working directory is restored when the test ends.
func SetupTmpDir(t *testing.T) string {
	wd, err := os.Getwd()
	require.NoError(t, err)

	tempDir := t.TempDir()
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return tempDir
}
