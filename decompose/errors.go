// Package decompose: sentinel error set.
//
// Every message is prefixed with "decompose: ...". Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context is essential; callers match
// with errors.Is.

package decompose

import "errors"

var (
	// ErrInvalidInput indicates a malformed ODE vector: nil or empty,
	// or a length that does not match the number of states.
	ErrInvalidInput = errors.New("decompose: invalid ODE vector")

	// ErrShapeMismatch indicates a non-square transition matrix was
	// passed to reconstruction.
	ErrShapeMismatch = errors.New("decompose: transition matrix is not square")

	// ErrReconstructionIncomplete indicates the rebuilt ODE still
	// differs from the input after the bounded number of residual
	// refinement passes.
	ErrReconstructionIncomplete = errors.New("decompose: reconstruction incomplete after refinement limit")

	// ErrUnbalancedColumn indicates an incidence-matrix column without
	// exactly one source (-1) and one destination (+1) entry — a defect
	// in the caller's ODE vector, not a recoverable condition.
	ErrUnbalancedColumn = errors.New("decompose: transition lacks a unique source and destination")
)
