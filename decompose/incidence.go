// Package decompose: stoichiometric incidence matrix.

package decompose

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/epimod/symexpr"
)

// Transition is one directed flow between two named states at a
// symbolic rate.
type Transition struct {
	From string
	To   string
	Rate symexpr.Expr
}

// Incidence is the states×transitions stoichiometry matrix: column j
// describes transition j with exactly one −1 (its source row) and
// exactly one +1 (its destination row); every other entry is zero.
type Incidence struct {
	states      []string
	transitions []Transition
	data        [][]int
	index       map[string]int
}

// NewIncidence builds the incidence matrix for the given states and
// transitions. Returns ErrInvalidInput for empty inputs or duplicate
// state names, and ErrUnbalancedColumn when a transition names an
// unknown state or loops back onto its source (such a column could not
// hold the −1/+1 pair).
func NewIncidence(states []string, transitions []Transition) (*Incidence, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: no states given", ErrInvalidInput)
	}
	if len(transitions) == 0 {
		return nil, fmt.Errorf("%w: no transitions given", ErrInvalidInput)
	}
	index := make(map[string]int, len(states))
	for i, s := range states {
		if s == "" {
			return nil, fmt.Errorf("%w: empty state name", ErrInvalidInput)
		}
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrInvalidInput, s)
		}
		index[s] = i
	}

	data := make([][]int, len(states))
	for i := range data {
		data[i] = make([]int, len(transitions))
	}
	for j, t := range transitions {
		src, okSrc := index[t.From]
		dst, okDst := index[t.To]
		if !okSrc || !okDst {
			return nil, fmt.Errorf("%w: transition %d references unknown state",
				ErrUnbalancedColumn, j)
		}
		if src == dst {
			return nil, fmt.Errorf("%w: transition %d loops on state %q",
				ErrUnbalancedColumn, j, t.From)
		}
		data[src][j] = -1
		data[dst][j] = +1
	}

	inc := &Incidence{
		states:      append([]string(nil), states...),
		transitions: append([]Transition(nil), transitions...),
		data:        data,
		index:       index,
	}
	return inc, nil
}

// IncidenceOf derives the incidence matrix directly from a
// decomposition result: every nonzero off-diagonal entry of the
// transition matrix becomes one column, ordered row-major.
func IncidenceOf(res *Result, states []string) (*Incidence, error) {
	if res == nil || res.Transitions == nil {
		return nil, fmt.Errorf("%w: nil decomposition result", ErrInvalidInput)
	}
	mat := res.Transitions
	if mat.Rows() != len(states) || mat.Cols() != len(states) {
		return nil, fmt.Errorf("%w: %d×%d matrix for %d states",
			ErrShapeMismatch, mat.Rows(), mat.Cols(), len(states))
	}
	var transitions []Transition
	for i := 0; i < mat.Rows(); i++ {
		for j := 0; j < mat.Cols(); j++ {
			if i == j || symexpr.IsZero(mat.At(i, j)) {
				continue
			}
			transitions = append(transitions, Transition{
				From: states[i],
				To:   states[j],
				Rate: mat.At(i, j),
			})
		}
	}
	return NewIncidence(states, transitions)
}

// DependencyGraph decomposes the ODE vector and returns its signed
// incidence matrix in one step: the states×transitions view of which
// equation feeds which flow.
func DependencyGraph(vec symexpr.Vector, states []string, opts ...Option) (*Incidence, error) {
	res, err := ToTransitions(vec, states, opts...)
	if err != nil {
		return nil, err
	}
	return IncidenceOf(res, states)
}

// States returns the row labels in order.
func (inc *Incidence) States() []string { return inc.states }

// Transitions returns the column definitions in order.
func (inc *Incidence) Transitions() []Transition { return inc.transitions }

// Rows returns the number of states.
func (inc *Incidence) Rows() int { return len(inc.states) }

// Cols returns the number of transitions.
func (inc *Incidence) Cols() int { return len(inc.transitions) }

// At returns the stoichiometric coefficient of state i in transition j.
// Panics on out-of-range indices, mirroring slice indexing.
func (inc *Incidence) At(i, j int) int { return inc.data[i][j] }

// Endpoints returns the source and destination row indices of column j.
func (inc *Incidence) Endpoints(j int) (src, dst int) {
	t := inc.transitions[j]
	return inc.index[t.From], inc.index[t.To]
}

// StateRow returns the row of the named state, or ok=false when the
// state is unknown.
func (inc *Incidence) StateRow(name string) (row int, ok bool) {
	row, ok = inc.index[name]
	return row, ok
}

// String renders the matrix with state labels, one row per line.
func (inc *Incidence) String() string {
	var b strings.Builder
	for i, s := range inc.states {
		fmt.Fprintf(&b, "%s:", s)
		for j := range inc.transitions {
			fmt.Fprintf(&b, " %+d", inc.data[i][j])
		}
		if i < len(inc.states)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
