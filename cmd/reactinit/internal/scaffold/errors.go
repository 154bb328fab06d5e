package scaffold

import (
	"errors"
	"fmt"
)

// Kind classifies a scaffolding failure. Every kind is terminal: nothing
// is retried.
type Kind int

const (
	// KindInvalidName: the project name failed the character whitelist.
	KindInvalidName Kind = iota + 1
	// KindAlreadyExists: the target directory is already present.
	KindAlreadyExists
	// KindExternalTool: the installer or styling initializer failed.
	KindExternalTool
	// KindWrite: a filesystem write failed.
	KindWrite
)

var (
	ErrInvalidName   = errors.New("invalid project name")
	ErrAlreadyExists = errors.New("project directory already exists")
	ErrExternalTool  = errors.New("external tool failed")
	ErrWrite         = errors.New("write failed")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidName:
		return ErrInvalidName
	case KindAlreadyExists:
		return ErrAlreadyExists
	case KindExternalTool:
		return ErrExternalTool
	case KindWrite:
		return ErrWrite
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindInvalidName:
		return "invalid_name"
	case KindAlreadyExists:
		return "already_exists"
	case KindExternalTool:
		return "external_tool"
	case KindWrite:
		return "write"
	}
	return "unknown"
}

// Error is a categorized scaffolding error. It wraps the underlying
// error, so errors.Is and errors.As see through it, and it matches the
// sentinel of its kind (errors.Is(err, ErrWrite)).
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// InvalidName creates a KindInvalidName error.
func InvalidName(format string, args ...any) *Error {
	return newError(KindInvalidName, format, args...)
}

// AlreadyExists creates a KindAlreadyExists error.
func AlreadyExists(format string, args ...any) *Error {
	return newError(KindAlreadyExists, format, args...)
}

// ExternalTool creates a KindExternalTool error.
func ExternalTool(format string, args ...any) *Error {
	return newError(KindExternalTool, format, args...)
}

// WriteFailure creates a KindWrite error.
func WriteFailure(format string, args ...any) *Error {
	return newError(KindWrite, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
