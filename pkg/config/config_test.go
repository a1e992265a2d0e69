package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultFirstPageURL, cfg.Source.FirstPageURL)
	assert.Equal(t, DefaultNthPageURL, cfg.Source.NthPageURL)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "words_5_fr.txt", cfg.Output.Filename(5))
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Politeness.RespectRobots)
	assert.Equal(t, 10*time.Second, cfg.Source.GetTimeout())
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlegen.toml")
	data := `
[source]
user_agent = "test-agent"
timeout = "3s"

[output]
dir = "/tmp/words"
filename_format = "{}-letters.txt"

[politeness]
respect_robots = true

[logging]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-agent", cfg.Source.UserAgent)
	assert.Equal(t, 3*time.Second, cfg.Source.GetTimeout())
	// untouched keys keep their defaults
	assert.Equal(t, DefaultFirstPageURL, cfg.Source.FirstPageURL)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.Equal(t, "/tmp/words", cfg.Output.Dir)
	assert.Equal(t, "7-letters.txt", cfg.Output.Filename(7))
	assert.True(t, cfg.Politeness.RespectRobots)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTimeoutFallback(t *testing.T) {
	s := SourceConfig{Timeout: "soon"}
	assert.Equal(t, 10*time.Second, s.GetTimeout())

	p := PolitenessConfig{RobotsTimeout: ""}
	assert.Equal(t, 5*time.Second, p.GetRobotsTimeout())
}

func TestLoadExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "wordlegen.example.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
