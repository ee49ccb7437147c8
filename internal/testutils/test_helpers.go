// Package testutils provides shared helpers for quakeconsole tests.
package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteScript writes a console script into a temp directory and returns
// its path. The file is cleaned up with the test.
func WriteScript(t *testing.T, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// RequireLine asserts that exactly one of the sink's lines contains want.
func RequireLine(t *testing.T, lines []string, want string) {
	t.Helper()

	matches := 0
	for _, line := range lines {
		if strings.Contains(line, want) {
			matches++
		}
	}
	require.Equal(t, 1, matches, "expected exactly one line containing %q in %q", want, lines)
}
