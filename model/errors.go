// Package model: sentinel error set.

package model

import "errors"

var (
	// ErrInvalidModel indicates empty or duplicated state/parameter
	// declarations, or an equation count that does not match the
	// number of states.
	ErrInvalidModel = errors.New("model: invalid model declaration")

	// ErrUnknownSymbol indicates an equation references a symbol that
	// is neither a declared state nor a declared parameter.
	ErrUnknownSymbol = errors.New("model: equation references undeclared symbol")

	// ErrNoEquations indicates an operation needing the right-hand
	// side was called before SetODE.
	ErrNoEquations = errors.New("model: no equations set")

	// ErrMissingValue indicates a numeric evaluation was missing a
	// value for some state or parameter.
	ErrMissingValue = errors.New("model: missing value for symbol")

	// ErrInvalidValue indicates a NaN or infinite value was supplied
	// for a state or parameter.
	ErrInvalidValue = errors.New("model: non-finite value for symbol")
)
