package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the services matches exactly one of
// them through errors.Is.
var (
	ErrType  = errors.New("type mismatch")
	ErrParse = errors.New("parse failure")
	ErrRange = errors.New("out of range")
)

// Error describes a failed operation.
type Error struct {
	Op   string // operation, e.g. "days from today"
	Kind error  // one of ErrType, ErrParse, ErrRange
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds an *Error.
func NewError(op string, kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of err, or nil if err is not a domain error.
func KindOf(err error) error {
	for _, kind := range []error{ErrType, ErrParse, ErrRange} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
