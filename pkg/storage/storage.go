package storage

import (
	"context"
	"fmt"
)

type Storage interface {
	SaveWords(ctx context.Context, wordLength int, words []string) (string, error)
}

// WriteError wraps a filesystem failure while saving a word list.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing file %q to filesystem: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
