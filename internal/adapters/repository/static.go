package repository

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/okian/podium/internal/domain/model"
)

// defaultMedals is the bundled data set served when no data file is configured.
//
//go:embed data/medals.json
var defaultMedals []byte

// StaticStore serves a fixed, pre-validated data set from memory.
type StaticStore struct {
	medals []model.Medal
}

// NewStaticStore validates medals and returns a store serving a copy of them.
func NewStaticStore(medals []model.Medal) (*StaticStore, error) {
	if err := validateMedals(medals); err != nil {
		return nil, err
	}
	return &StaticStore{medals: slices.Clone(medals)}, nil
}

// NewDefaultStore returns a store over the bundled data set.
func NewDefaultStore() (*StaticStore, error) {
	medals, err := decodeMedals(defaultMedals, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("bundled data: %w", err)
	}
	return &StaticStore{medals: medals}, nil
}

// List returns a copy of the data set.
func (s *StaticStore) List(ctx context.Context) ([]model.Medal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadData, err)
	}
	out := slices.Clone(s.medals)
	if out == nil {
		out = []model.Medal{}
	}
	return out, nil
}

// Describe implements Store.
func (s *StaticStore) Describe() string { return "static" }
