package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Source     SourceConfig     `toml:"source"`
	Output     OutputConfig     `toml:"output"`
	Politeness PolitenessConfig `toml:"politeness"`
	Logging    LoggingConfig    `toml:"logging"`
}

// SourceConfig describes the word-list site. FirstPageURL takes the word
// length, NthPageURL takes the word length and the page number.
type SourceConfig struct {
	FirstPageURL string `toml:"first_page_url"`
	NthPageURL   string `toml:"nth_page_url"`
	UserAgent    string `toml:"user_agent"`
	Timeout      string `toml:"timeout"`
}

type OutputConfig struct {
	Dir            string `toml:"dir"`
	FilenameFormat string `toml:"filename_format"`
}

type PolitenessConfig struct {
	RespectRobots bool   `toml:"respect_robots"`
	RobotsTimeout string `toml:"robots_timeout"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Silent bool   `toml:"silent"`
}

const (
	DefaultFirstPageURL   = "https://www.listesdemots.net/mots%dlettres.htm"
	DefaultNthPageURL     = "https://www.listesdemots.net/mots%dlettrespage%d.htm"
	DefaultFilenameFormat = "words_{}_fr.txt"
)

func Default() *Config {
	var cfg Config
	cfg.Source.FirstPageURL = DefaultFirstPageURL
	cfg.Source.NthPageURL = DefaultNthPageURL
	cfg.Source.UserAgent = "wordlegen/1.0"
	cfg.Source.Timeout = "10s"
	cfg.Output.Dir = "."
	cfg.Output.FilenameFormat = DefaultFilenameFormat
	cfg.Politeness.RobotsTimeout = "5s"
	cfg.Logging.Format = "text"
	cfg.Logging.Level = "info"
	return &cfg
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path yields the defaults alone.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = toml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *SourceConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second // Fallback
	}
	return d
}

func (c *PolitenessConfig) GetRobotsTimeout() time.Duration {
	d, err := time.ParseDuration(c.RobotsTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// Filename expands every "{}" in FilenameFormat with the word length.
func (c *OutputConfig) Filename(wordLength int) string {
	return strings.ReplaceAll(c.FilenameFormat, "{}", strconv.Itoa(wordLength))
}
