// Package kadoerr defines the error-kind taxonomy shared by the object-store core
// (spec.md section 7). Every package in this module returns one of these sentinels
// (wrapped with fmt.Errorf's %w where context helps) rather than inventing its own
// per-package error type, so callers can discriminate kinds with errors.Is regardless
// of which package raised them.
package kadoerr

import "errors"

var (
	// ErrType is returned where a value of the wrong Go type was supplied where a
	// specific type (e.g. a string) was required.
	ErrType = errors.New("kado: type error")

	// ErrValue is returned when an operation expected a value to be present (e.g.
	// removing an unknown value from an index key) and it was not.
	ErrValue = errors.New("kado: value error")

	// ErrKey is returned when a lookup key was not present where one was required.
	ErrKey = errors.New("kado: key error")

	// ErrOutOfRange is returned for invalid integer indices into an ordered sequence.
	ErrOutOfRange = errors.New("kado: index out of range")

	// ErrNotSupported is returned for attempts to mutate an immutable value, such as
	// replacing a Chunk's data after construction.
	ErrNotSupported = errors.New("kado: operation not supported")
)
