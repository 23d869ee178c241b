package models

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// GetFixturePath resolves a file under the repository's testdata directory,
// independent of the calling package's working directory.
func GetFixturePath(t *testing.T, name string) string {
	t.Helper()

	_, self, _, ok := runtime.Caller(0)
	require.True(t, ok, "cannot locate fixture directory")

	root := filepath.Join(filepath.Dir(self), "..", "..")
	path, err := filepath.Abs(filepath.Join(root, "testdata", name))
	require.NoError(t, err)
	return path
}
