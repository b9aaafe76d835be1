// Package decompose: ODE ⇄ transition-matrix conversion.

package decompose

import (
	"fmt"

	"github.com/katalvlaran/epimod/symexpr"
)

// DefaultMaxRefine bounds the residual refinement loop in
// ToTransitions. Each round re-matches the part of the system the
// matrix does not yet reproduce; well-formed compartmental models
// converge in one or two rounds.
const DefaultMaxRefine = 8

// options collects the tunable knobs of ToTransitions.
type options struct {
	maxRefine int
}

// Option mutates the decomposition configuration.
type Option func(*options)

// WithMaxRefine overrides the refinement-round cap
// (default: DefaultMaxRefine). Values below one are ignored.
func WithMaxRefine(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxRefine = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxRefine: DefaultMaxRefine}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Result carries the full decomposition of an ODE system: the
// state-by-state transition matrix, the per-equation birth/death
// vector, and the matched pairs the passes could not place anywhere
// (informational; a nonempty Remainder does not by itself make the
// decomposition invalid as long as the matrix and birth/death vector
// reproduce the input).
type Result struct {
	Transitions *symexpr.Matrix
	BirthDeath  symexpr.Vector
	Remainder   []Pair
}

// ToTransitions decomposes the ODE right-hand sides into a transition
// matrix A where A[i][j] holds the total flow rate from state i to
// state j, plus a birth/death vector of terms with no algebraic
// negation anywhere in the system.
//
// Placement runs in two passes. The first routes pairs whose negative
// term mentions exactly one state symbol; the second locates both
// halves of the remaining pairs by scanning every equation. The result
// is then verified by reconstructing the right-hand sides from the
// matrix; any residual is re-matched and re-placed, up to the
// configured round cap.
//
// Errors: ErrInvalidInput for empty or duplicated states,
// ErrShapeMismatch when len(vec) differs from len(states), and
// ErrReconstructionIncomplete when the refinement loop cannot drive
// the residual to zero.
func ToTransitions(vec symexpr.Vector, states []string, opts ...Option) (*Result, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: no states given", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(states))
	for _, s := range states {
		if s == "" {
			return nil, fmt.Errorf("%w: empty state name", ErrInvalidInput)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrInvalidInput, s)
		}
		seen[s] = struct{}{}
	}
	if len(vec) != len(states) {
		return nil, fmt.Errorf("%w: %d equations for %d states",
			ErrShapeMismatch, len(vec), len(states))
	}
	o := newOptions(opts)

	birthDeath, pure := StripBirthDeath(vec)
	mat := symexpr.NewMatrix(len(states), len(states))

	pairs := MatchingPairs(pure)
	deferred := resolveSingleOrigin(pure, states, pairs, mat)
	remainder := resolveExhaustive(pure, deferred, mat)

	for round := 0; ; round++ {
		residual, done := reconstructionResidual(pure, mat)
		if done {
			break
		}
		if round == o.maxRefine {
			return nil, fmt.Errorf("%w: residual %s after %d rounds",
				ErrReconstructionIncomplete, residual.String(), o.maxRefine)
		}
		before := remainder
		extra := MatchingPairs(residual)
		remainder = resolveExhaustive(residual, append(extra, before...), mat)
		// No pair placed this round means no further round can place one.
		if len(extra)+len(before) == len(remainder) && len(extra) == 0 {
			return nil, fmt.Errorf("%w: residual %s cannot be matched",
				ErrReconstructionIncomplete, residual.String())
		}
	}

	return &Result{
		Transitions: mat,
		BirthDeath:  birthDeath,
		Remainder:   remainder,
	}, nil
}

// FromTransitions rebuilds the ODE right-hand sides from a transition
// matrix and a birth/death vector: equation i receives every inflow
// (column i), loses every outflow (row i), and gains its birth/death
// terms. A nil birthDeath is treated as all-zero. Returns
// ErrShapeMismatch for a non-square matrix or a birth/death vector of
// the wrong length.
func FromTransitions(mat *symexpr.Matrix, birthDeath symexpr.Vector) (symexpr.Vector, error) {
	if mat == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	n := mat.Rows()
	if mat.Cols() != n {
		return nil, fmt.Errorf("%w: %d×%d matrix is not square",
			ErrShapeMismatch, n, mat.Cols())
	}
	if birthDeath != nil && len(birthDeath) != n {
		return nil, fmt.Errorf("%w: birth/death vector has %d entries for %d states",
			ErrShapeMismatch, len(birthDeath), n)
	}
	out := make(symexpr.Vector, n)
	for i := 0; i < n; i++ {
		parts := make([]symexpr.Expr, 0, 2*n+1)
		for k := 0; k < n; k++ {
			parts = append(parts, mat.At(k, i))
			parts = append(parts, symexpr.Neg(mat.At(i, k)))
		}
		if birthDeath != nil {
			parts = append(parts, birthDeath[i])
		}
		out[i] = symexpr.Canonical(symexpr.AddOf(parts...))
	}
	return out, nil
}

// StripBirthDeath splits each right-hand side into its birth/death
// component (terms that cancel against no other term anywhere in the
// system) and the remaining pure-transition component. The returned
// vectors satisfy vec[i] = birthDeath[i] + pure[i] for every equation.
func StripBirthDeath(vec symexpr.Vector) (birthDeath, pure symexpr.Vector) {
	_, unmatched := MatchTerms(flattenTerms(vec))
	bdKeys := make(map[string]struct{}, len(unmatched))
	for _, t := range unmatched {
		bdKeys[t.String()] = struct{}{}
	}

	birthDeath = make(symexpr.Vector, len(vec))
	pure = make(symexpr.Vector, len(vec))
	for i, eq := range vec {
		var bdTerms, pureTerms []symexpr.Expr
		for _, t := range Terms(eq) {
			if _, bd := bdKeys[t.String()]; bd {
				bdTerms = append(bdTerms, t)
			} else {
				pureTerms = append(pureTerms, t)
			}
		}
		birthDeath[i] = symexpr.Canonical(symexpr.AddOf(bdTerms...))
		pure[i] = symexpr.Canonical(symexpr.AddOf(pureTerms...))
	}
	return birthDeath, pure
}

// reconstructionResidual returns pure − rebuilt per equation and
// whether every entry is zero.
func reconstructionResidual(pure symexpr.Vector, mat *symexpr.Matrix) (symexpr.Vector, bool) {
	rebuilt, err := FromTransitions(mat, nil)
	if err != nil {
		// mat is built square in ToTransitions; treat any failure as a
		// fully unexplained residual.
		return pure.Canonical(), len(pure) == 0
	}
	residual := make(symexpr.Vector, len(pure))
	allZero := true
	for i := range pure {
		residual[i] = symexpr.Canonical(symexpr.AddOf(pure[i], symexpr.Neg(rebuilt[i])))
		if !symexpr.IsZero(residual[i]) {
			allZero = false
		}
	}
	return residual, allZero
}
