// Package decompose: additive-term and leaf extraction from symbolic
// expressions.

package decompose

import (
	"github.com/katalvlaran/epimod/symexpr"
)

// termSet accumulates expressions keyed by their canonical rendering,
// preserving first-appearance order and occurrence counts.
type termSet struct {
	order  []symexpr.Expr
	counts map[string]int
}

func newTermSet() *termSet {
	return &termSet{counts: make(map[string]int)}
}

func (s *termSet) add(e symexpr.Expr) {
	key := e.String()
	if s.counts[key] == 0 {
		s.order = append(s.order, e)
	}
	s.counts[key]++
}

// Terms returns the distinct additive terms of e after canonical
// expansion, in first-appearance order. A term is one summand of the
// expanded form: a single product, power, symbol or constant. Power
// terms are never decomposed further — splitting S^2 would not
// correspond to a meaningful separate transition. An expression with a
// single term returns that term directly.
func Terms(e symexpr.Expr) []symexpr.Expr {
	set := newTermSet()
	collectTerms(symexpr.Canonical(e), set)
	return set.order
}

// TermCounts returns the occurrence count of every distinct term of e,
// keyed by the term's canonical String rendering.
func TermCounts(e symexpr.Expr) map[string]int {
	set := newTermSet()
	collectTerms(symexpr.Canonical(e), set)
	return set.counts
}

func collectTerms(e symexpr.Expr, set *termSet) {
	switch v := e.(type) {
	case *symexpr.Add:
		for _, t := range v.Terms() {
			collectTerms(t, set)
		}
	case *symexpr.Mul:
		// a product of plain leaves is one atomic term; products still
		// holding internal sums (unexpanded input) are descended into
		if productOfLeaves(v) {
			set.add(v)
			return
		}
		for _, f := range v.Factors() {
			collectTerms(f, set)
		}
	default:
		set.add(e) // Num, Sym or Pow: atomic
	}
}

func productOfLeaves(m *symexpr.Mul) bool {
	for _, f := range m.Factors() {
		if !isLeaf(f) {
			return false
		}
	}
	return true
}

func isLeaf(e symexpr.Expr) bool {
	switch e.(type) {
	case *symexpr.Num, *symexpr.Sym, *symexpr.Pow:
		return true
	}
	return false
}

// Leafs returns the individual symbolic factors of e after canonical
// expansion, descending through sums and products but keeping power
// terms whole. It exists for sign disambiguation (detecting a literal
// −1 factor), not for term matching.
func Leafs(e symexpr.Expr) []symexpr.Expr {
	set := newTermSet()
	collectLeafs(symexpr.Canonical(e), set)
	return set.order
}

func collectLeafs(e symexpr.Expr, set *termSet) {
	switch v := e.(type) {
	case *symexpr.Add:
		for _, t := range v.Terms() {
			collectLeafs(t, set)
		}
	case *symexpr.Mul:
		for _, f := range v.Factors() {
			collectLeafs(f, set)
		}
	default:
		set.add(e)
	}
}

// hasNegOneLeaf reports whether a literal −1 appears among the leaf
// factors of t. This is the documented sign heuristic for classifying
// the negative half of a matched pair; it is a naming policy, not a
// proof — see Pairs.
func hasNegOneLeaf(t symexpr.Expr) bool {
	for _, leaf := range Leafs(t) {
		if n, ok := leaf.(*symexpr.Num); ok && n.IsNegOne() {
			return true
		}
	}
	return false
}
