package repository

import "errors"

// Sentinel kinds for data source errors.
var (
	ErrNotFound      = errors.New("country not found")
	ErrInvalidData   = errors.New("invalid medal data")
	ErrLoadData      = errors.New("load medal data failed")
	ErrUnknownFormat = errors.New("unknown medal data format")
)
