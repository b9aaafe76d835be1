// Package decompose: origin/destination resolution for matched pairs.

package decompose

import (
	"github.com/katalvlaran/epimod/symexpr"
)

// resolveSingleOrigin is the first placement pass. A pair whose
// negative (outgoing) term mentions exactly one state symbol has an
// unambiguous origin; every other equation containing the positive
// term becomes a destination, each accumulating the positive term.
// Pairs mentioning zero or several states, and pairs whose origin is
// found but no destination is, are returned for the exhaustive pass.
func resolveSingleOrigin(vec symexpr.Vector, states []string, pairs []Pair, mat *symexpr.Matrix) (deferred []Pair) {
	for _, p := range pairs {
		origin, ok := soleOrigin(p.Neg, states)
		if !ok {
			deferred = append(deferred, p)
			continue
		}
		placed := false
		for j := range states {
			if j == origin {
				continue
			}
			if hasTerm(vec[j], p.Pos) {
				mat.AddAt(origin, j, p.Pos)
				placed = true
			}
		}
		if !placed {
			deferred = append(deferred, p)
		}
	}
	return deferred
}

// resolveExhaustive is the second placement pass. Both sides of the
// pair are located: any equation holding the negative term is an
// origin row, any other equation holding the positive term is a
// destination column, and every consistent (i, j) cell accumulates the
// positive term — an ambiguous pair fans out to all of them instead of
// attaching to an arbitrary one. Pairs with either side missing are
// returned as the remainder.
func resolveExhaustive(vec symexpr.Vector, pairs []Pair, mat *symexpr.Matrix) (remainder []Pair) {
	for _, p := range pairs {
		placed := false
		for i := range vec {
			if !hasTerm(vec[i], p.Neg) {
				continue
			}
			for j := range vec {
				if i == j {
					continue
				}
				if hasTerm(vec[j], p.Pos) {
					mat.AddAt(i, j, p.Pos)
					placed = true
				}
			}
		}
		if !placed {
			remainder = append(remainder, p)
		}
	}
	return remainder
}

// soleOrigin returns the index of the single state symbol occurring in
// the term, or ok=false when the term mentions zero or several states.
func soleOrigin(term symexpr.Expr, states []string) (idx int, ok bool) {
	free := symexpr.FreeSymbols(term)
	found := -1
	for i, s := range states {
		if _, hit := free[s]; hit {
			if found >= 0 {
				return 0, false
			}
			found = i
		}
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}

// hasTerm reports whether term occurs as one of the additive terms of
// the (expanded) expression.
func hasTerm(expr, term symexpr.Expr) bool {
	want := symexpr.Canonical(term).String()
	for _, t := range Terms(symexpr.Canonical(expr)) {
		if symexpr.Canonical(t).String() == want {
			return true
		}
	}
	return false
}
