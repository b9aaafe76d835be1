// Package decompose: matching of terms that cancel pairwise.

package decompose

import (
	"github.com/katalvlaran/epimod/symexpr"
)

// Pair is one matched transition: Pos and Neg sum to exactly zero. Pos
// is the incoming (positive) half, Neg the outgoing (negative) half.
type Pair struct {
	Pos symexpr.Expr
	Neg symexpr.Expr
}

// MatchTerms partitions the given terms into the subset that forms
// canceling pairs and the subset that does not (birth/death
// candidates). Duplicates collapse under set semantics, and the
// relation is symmetric: if X matches Y then Y matches X, so both
// always land in the matched set together.
func MatchTerms(terms []symexpr.Expr) (matched, unmatched []symexpr.Expr) {
	distinct := dedupe(terms)
	isMatched := make([]bool, len(distinct))
	for i := 0; i < len(distinct)-1; i++ {
		for j := i + 1; j < len(distinct); j++ {
			if cancels(distinct[i], distinct[j]) {
				isMatched[i] = true
				isMatched[j] = true
			}
		}
	}
	for i, t := range distinct {
		if isMatched[i] {
			matched = append(matched, t)
		} else {
			unmatched = append(unmatched, t)
		}
	}
	return matched, unmatched
}

// Pairs converts a list of terms into matched (positive, negative)
// tuples. The half whose leaf factors contain a literal −1 is
// classified negative. When neither or both halves carry a literal −1
// the policy is undefined by design; this implementation then keeps the
// earlier-listed term as the positive half, which is deterministic but
// carries no algebraic meaning.
func Pairs(terms []symexpr.Expr) []Pair {
	distinct := dedupe(terms)
	var out []Pair
	for i := 0; i < len(distinct)-1; i++ {
		for j := i + 1; j < len(distinct); j++ {
			if !cancels(distinct[i], distinct[j]) {
				continue
			}
			if hasNegOneLeaf(distinct[i]) {
				out = append(out, Pair{Pos: distinct[j], Neg: distinct[i]})
			} else {
				out = append(out, Pair{Pos: distinct[i], Neg: distinct[j]})
			}
		}
	}
	return out
}

// MatchingPairs extracts all terms from the ODE vector and returns the
// matched transition tuples.
func MatchingPairs(vec symexpr.Vector) []Pair {
	return Pairs(flattenTerms(vec))
}

// Unmatched extracts all terms from the ODE vector and returns the
// birth/death terms (no algebraic negation anywhere in the system)
// along with the matched transition tuples.
func Unmatched(vec symexpr.Vector) (birthDeath []symexpr.Expr, pairs []Pair) {
	terms := flattenTerms(vec)
	matched, unmatched := MatchTerms(terms)
	return unmatched, Pairs(matched)
}

func flattenTerms(vec symexpr.Vector) []symexpr.Expr {
	var out []symexpr.Expr
	for _, e := range vec {
		out = append(out, Terms(e)...)
	}
	return out
}

func dedupe(terms []symexpr.Expr) []symexpr.Expr {
	seen := make(map[string]struct{}, len(terms))
	out := make([]symexpr.Expr, 0, len(terms))
	for _, t := range terms {
		key := t.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// cancels reports whether a+b is algebraically zero.
func cancels(a, b symexpr.Expr) bool {
	return symexpr.IsZero(symexpr.Canonical(symexpr.AddOf(a, b)))
}
