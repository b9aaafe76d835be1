// Package model: the Model type and its symbolic/numeric operations.

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/epimod/decompose"
	"github.com/katalvlaran/epimod/symexpr"
)

// Model is a compartmental ODE system with declared states and
// parameters. The zero value is not usable; construct with New and
// attach equations with SetODE.
type Model struct {
	name   string
	states []string
	params []string
	known  map[string]struct{}
	rhs    symexpr.Vector
}

// New builds a model skeleton from the declared state and parameter
// names. States and parameters share one namespace; a name appearing
// in both lists, an empty name or an empty state list is
// ErrInvalidModel.
func New(states, params []string) (*Model, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: no states declared", ErrInvalidModel)
	}
	known := make(map[string]struct{}, len(states)+len(params))
	for _, lst := range [][]string{states, params} {
		for _, name := range lst {
			if name == "" {
				return nil, fmt.Errorf("%w: empty name", ErrInvalidModel)
			}
			if _, dup := known[name]; dup {
				return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidModel, name)
			}
			known[name] = struct{}{}
		}
	}
	return &Model{
		states: append([]string(nil), states...),
		params: append([]string(nil), params...),
		known:  known,
	}, nil
}

// SetName attaches a display name, used by renderers.
func (m *Model) SetName(name string) { m.name = name }

// Name returns the display name, possibly empty.
func (m *Model) Name() string { return m.name }

// States returns the declared state names in order.
func (m *Model) States() []string { return m.states }

// Parameters returns the declared parameter names in order.
func (m *Model) Parameters() []string { return m.params }

// SetODE parses one equation per state and installs them as the
// right-hand side. Every free symbol must be a declared state or
// parameter (ErrUnknownSymbol); the equation count must match the
// state count (ErrInvalidModel).
func (m *Model) SetODE(equations ...string) error {
	if len(equations) != len(m.states) {
		return fmt.Errorf("%w: %d equations for %d states",
			ErrInvalidModel, len(equations), len(m.states))
	}
	rhs := make(symexpr.Vector, len(equations))
	for i, src := range equations {
		e, err := symexpr.Parse(src)
		if err != nil {
			return fmt.Errorf("equation for %s: %w", m.states[i], err)
		}
		for name := range symexpr.FreeSymbols(e) {
			if _, ok := m.known[name]; !ok {
				return fmt.Errorf("%w: %q in equation for %s",
					ErrUnknownSymbol, name, m.states[i])
			}
		}
		rhs[i] = e
	}
	m.rhs = rhs
	return nil
}

// RHS returns the installed right-hand side, or ErrNoEquations.
func (m *Model) RHS() (symexpr.Vector, error) {
	if m.rhs == nil {
		return nil, ErrNoEquations
	}
	return m.rhs, nil
}

// Transitions decomposes the right-hand side into the transition
// matrix and birth/death vector.
func (m *Model) Transitions(opts ...decompose.Option) (*decompose.Result, error) {
	if m.rhs == nil {
		return nil, ErrNoEquations
	}
	return decompose.ToTransitions(m.rhs, m.states, opts...)
}

// Incidence returns the states×transitions stoichiometry matrix of the
// decomposed system.
func (m *Model) Incidence(opts ...decompose.Option) (*decompose.Incidence, error) {
	res, err := m.Transitions(opts...)
	if err != nil {
		return nil, err
	}
	return decompose.IncidenceOf(res, m.states)
}

// Jacobian returns ∂f_i/∂state_j of the right-hand side.
func (m *Model) Jacobian() (*symexpr.Matrix, error) {
	if m.rhs == nil {
		return nil, ErrNoEquations
	}
	return symexpr.Jacobian(m.rhs, m.states), nil
}

// Evaluate computes the numeric right-hand side at the given state and
// parameter values. Both maps are consulted for every symbol; a symbol
// found in neither is ErrMissingValue.
func (m *Model) Evaluate(stateVals, paramVals map[string]float64) ([]float64, error) {
	if m.rhs == nil {
		return nil, ErrNoEquations
	}
	out := make([]float64, len(m.rhs))
	for i, e := range m.rhs {
		bound := e
		for name := range symexpr.FreeSymbols(e) {
			v, ok := stateVals[name]
			if !ok {
				v, ok = paramVals[name]
			}
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingValue, name)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %q = %v", ErrInvalidValue, name, v)
			}
			bound = bound.Sub(name, symexpr.NFloat(v))
		}
		n, ok := bound.Eval()
		if !ok {
			return nil, fmt.Errorf("%w: equation for %s did not reduce to a number",
				ErrMissingValue, m.states[i])
		}
		out[i] = n.Float64()
	}
	return out, nil
}
