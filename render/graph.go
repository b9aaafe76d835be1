// Package render: DOT graph assembly.

package render

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/epimod/decompose"
	"github.com/katalvlaran/epimod/symexpr"
)

// TransitionGraph renders a decomposition as a directed DOT graph:
// one node per state, one labeled edge per transition, drawn left to
// right. Birth/death flows get anonymous point-shaped boundary nodes:
// an arrow from the boundary into the state for a birth term, from the
// state out to the boundary for a death term. Returns
// decompose.ErrShapeMismatch when the result does not fit the given
// state list.
func TransitionGraph(res *decompose.Result, states []string) (*dot.Graph, error) {
	if res == nil || res.Transitions == nil {
		return nil, fmt.Errorf("%w: nil decomposition result", decompose.ErrInvalidInput)
	}
	mat := res.Transitions
	if mat.Rows() != len(states) || mat.Cols() != len(states) {
		return nil, fmt.Errorf("%w: %d×%d matrix for %d states",
			decompose.ErrShapeMismatch, mat.Rows(), mat.Cols(), len(states))
	}
	if len(res.BirthDeath) != 0 && len(res.BirthDeath) != len(states) {
		return nil, fmt.Errorf("%w: birth/death vector has %d entries for %d states",
			decompose.ErrShapeMismatch, len(res.BirthDeath), len(states))
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes := make([]dot.Node, len(states))
	for i, s := range states {
		nodes[i] = g.Node(s)
	}

	for i := range states {
		for j := range states {
			if i == j || symexpr.IsZero(mat.At(i, j)) {
				continue
			}
			g.Edge(nodes[i], nodes[j]).Attr("label", Prettify(mat.At(i, j).String()))
		}
	}

	for i, bd := range res.BirthDeath {
		if bd == nil || symexpr.IsZero(bd) {
			continue
		}
		for k, term := range decompose.Terms(bd) {
			boundary := g.Node(fmt.Sprintf("bd_%s_%d", states[i], k)).
				Attr("shape", "point").
				Attr("label", "")
			if isNegativeTerm(term) {
				rate := symexpr.Canonical(symexpr.Neg(term))
				g.Edge(nodes[i], boundary).Attr("label", Prettify(rate.String()))
			} else {
				g.Edge(boundary, nodes[i]).Attr("label", Prettify(term.String()))
			}
		}
	}
	return g, nil
}

// isNegativeTerm reports whether the term carries a negative numeric
// coefficient among its factors.
func isNegativeTerm(t symexpr.Expr) bool {
	for _, leaf := range decompose.Leafs(t) {
		if n, ok := leaf.(*symexpr.Num); ok && n.Sign() < 0 {
			return true
		}
	}
	return false
}
