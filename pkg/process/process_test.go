package process

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func readWordList(t *testing.T, name string) []string {
	t.Helper()
	var words []string
	for _, w := range strings.Split(readFixture(t, name), "\n") {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
