package storage

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/devraulu/wordlegen/pkg/config"
)

// FileStorage writes one lowercase word per line, newline-terminated.
type FileStorage struct {
	cfg config.OutputConfig
	log *slog.Logger
}

func NewFileStorage(cfg config.OutputConfig, log *slog.Logger) *FileStorage {
	if log == nil {
		log = slog.Default()
	}
	return &FileStorage{cfg: cfg, log: log}
}

func (s *FileStorage) Path(wordLength int) string {
	return filepath.Join(s.cfg.Dir, s.cfg.Filename(wordLength))
}

// SaveWords writes words to the output file and returns its path.
func (s *FileStorage) SaveWords(ctx context.Context, wordLength int, words []string) (string, error) {
	path := s.Path(wordLength)

	f, err := os.Create(path)
	if err != nil {
		return path, &WriteError{Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	if len(words) == 0 {
		w.WriteString("\n")
	}
	for _, word := range words {
		if _, err := w.WriteString(word + "\n"); err != nil {
			f.Close()
			return path, &WriteError{Path: path, Err: err}
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return path, &WriteError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return path, &WriteError{Path: path, Err: err}
	}

	s.log.Info("saved words", slog.String("path", path), slog.Int("words", len(words)))
	return path, nil
}
