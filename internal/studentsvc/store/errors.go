package store

import (
	"errors"
)

type Kind uint8

const (
	KindQuery Kind = iota
	KindConnection
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindNotFound:
		return "not_found"
	default:
		return "query"
	}
}

var (
	ErrNotFound     = errors.New("student not found")
	ErrNotConnected = errors.New("store is not connected")
)

// Error is returned by every store adapter so callers never see driver error shapes.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error yields the raw underlying text, it ends up in response bodies as-is.
func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return e.Kind == KindNotFound && target == ErrNotFound
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of err, KindQuery for anything not produced by a store.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindQuery
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
