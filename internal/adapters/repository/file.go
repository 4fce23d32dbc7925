package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/okian/podium/internal/domain/model"
)

// FileStore reads a JSON or YAML data file on every List, so edits to the
// file are served without a restart.
type FileStore struct {
	path   string
	format Format
}

// NewFileStore creates a store over path. The format is taken from the file
// extension unless WithFormat is given. The file is not read until List.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	s := &FileStore{path: path}
	for _, opt := range opts {
		opt(s)
	}
	if s.format == "" {
		format, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		s.format = format
	}
	return s, nil
}

// List reads, decodes and validates the data file.
func (s *FileStore) List(ctx context.Context) ([]model.Medal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadData, err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadData, err)
	}
	medals, err := decodeMedals(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return medals, nil
}

// Describe implements Store.
func (s *FileStore) Describe() string { return s.path }
