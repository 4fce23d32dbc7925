// Package repository provides the medal data sources.
package repository

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
)

// Store provides read access to the medal data set.
type Store interface {
	// List returns every country's medal counts in source order.
	// The returned slice is owned by the caller.
	List(ctx context.Context) ([]model.Medal, error)

	// Describe names the source for logs and stats, e.g. "static" or a file path.
	Describe() string
}
