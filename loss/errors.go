// Package loss: sentinel error set.

package loss

import "errors"

var (
	// ErrDimension indicates observed, predicted and weight vectors do
	// not share one length, or the input is empty.
	ErrDimension = errors.New("loss: mismatched vector lengths")

	// ErrInvalidParam indicates a non-positive distribution parameter
	// (sigma, shape, overdispersion) or weight.
	ErrInvalidParam = errors.New("loss: invalid distribution parameter")

	// ErrDomain indicates an observation or prediction outside the
	// support of the chosen distribution (e.g. a non-positive mean for
	// Poisson counts).
	ErrDomain = errors.New("loss: value outside distribution support")
)
