package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrDataSource  = errors.New("failed to load medal data")
)

// opError tags an error with the handler operation that produced it.
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return fmt.Sprintf("%s: %v", e.op, e.err) }
func (e *opError) Unwrap() error { return e.err }

// NewKind reports a sentinel kind from op.
func NewKind(op string, kind error) error {
	return &opError{op: op, err: kind}
}

// Wrap attaches op to an upstream error. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, err: err}
}
