package model_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimod/model"
	"github.com/katalvlaran/epimod/symexpr"
)

func sirModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.New([]string{"S", "I", "R"}, []string{"beta", "gamma"})
	require.NoError(t, err)
	require.NoError(t, m.SetODE("-beta*S*I", "beta*S*I - gamma*I", "gamma*I"))
	return m
}

func TestNew_Validation(t *testing.T) {
	_, err := model.New(nil, nil)
	assert.ErrorIs(t, err, model.ErrInvalidModel)

	_, err = model.New([]string{"S", "S"}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidModel)

	// states and parameters share one namespace
	_, err = model.New([]string{"S"}, []string{"S"})
	assert.ErrorIs(t, err, model.ErrInvalidModel)
}

func TestSetODE_SymbolCheck(t *testing.T) {
	m, err := model.New([]string{"S", "I"}, []string{"beta"})
	require.NoError(t, err)

	err = m.SetODE("-beta*S*I", "beta*S*I - gamma*I")
	assert.ErrorIs(t, err, model.ErrUnknownSymbol)

	err = m.SetODE("-beta*S*I")
	assert.ErrorIs(t, err, model.ErrInvalidModel)

	// model stays unset after a failed SetODE
	_, err = m.RHS()
	assert.ErrorIs(t, err, model.ErrNoEquations)
}

func TestModel_Transitions(t *testing.T) {
	m := sirModel(t)
	res, err := m.Transitions()
	require.NoError(t, err)
	assert.True(t, symexpr.Equals(symexpr.MustParse("beta*S*I"), res.Transitions.At(0, 1)))
	assert.True(t, symexpr.Equals(symexpr.MustParse("gamma*I"), res.Transitions.At(1, 2)))

	inc, err := m.Incidence()
	require.NoError(t, err)
	assert.Equal(t, 2, inc.Cols())
}

func TestModel_Jacobian(t *testing.T) {
	jac, err := sirModel(t).Jacobian()
	require.NoError(t, err)
	assert.True(t, symexpr.Equals(symexpr.MustParse("-beta*S"), jac.At(0, 1)))
	assert.True(t, symexpr.Equals(symexpr.MustParse("beta*S - gamma"), jac.At(1, 1)))
}

func TestModel_Evaluate(t *testing.T) {
	m := sirModel(t)
	got, err := m.Evaluate(
		map[string]float64{"S": 999, "I": 1, "R": 0},
		map[string]float64{"beta": 0.001, "gamma": 0.1},
	)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, -0.999, got[0], 1e-12)
	assert.InDelta(t, 0.899, got[1], 1e-12)
	assert.InDelta(t, 0.1, got[2], 1e-12)

	_, err = m.Evaluate(map[string]float64{"S": 1}, nil)
	assert.ErrorIs(t, err, model.ErrMissingValue)
}

// A NaN or infinite map entry is rejected with an error, not a panic.
func TestModel_Evaluate_NonFinite(t *testing.T) {
	m := sirModel(t)
	params := map[string]float64{"beta": 0.001, "gamma": 0.1}

	_, err := m.Evaluate(map[string]float64{"S": math.NaN(), "I": 1, "R": 0}, params)
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	_, err = m.Evaluate(map[string]float64{"S": math.Inf(1), "I": 1, "R": 0}, params)
	assert.ErrorIs(t, err, model.ErrInvalidValue)
}

const sirYAML = `
name: sir
states: [S, I, R]
parameters: [beta, gamma]
odes:
  - "-beta*S*I"
  - "beta*S*I - gamma*I"
  - "gamma*I"
`

func TestParseDefinition(t *testing.T) {
	def, err := model.ParseDefinition([]byte(sirYAML))
	require.NoError(t, err)
	assert.Equal(t, "sir", def.Name)
	assert.Equal(t, []string{"S", "I", "R"}, def.States)

	m, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, "sir", m.Name())

	res, err := m.Transitions()
	require.NoError(t, err)
	assert.True(t, symexpr.Equals(symexpr.MustParse("gamma*I"), res.Transitions.At(1, 2)))
}

func TestParseDefinition_UnknownField(t *testing.T) {
	_, err := model.ParseDefinition([]byte("name: x\nstatez: [S]\n"))
	assert.Error(t, err)
}

func TestReadDefinition(t *testing.T) {
	def, err := model.ReadDefinition(strings.NewReader(sirYAML))
	require.NoError(t, err)
	assert.Len(t, def.ODEs, 3)
}

func TestBuild_PropagatesErrors(t *testing.T) {
	def := &model.Definition{
		States:     []string{"S"},
		Parameters: []string{"beta"},
		ODEs:       []string{"-beta*S*X"},
	}
	_, err := def.Build()
	assert.ErrorIs(t, err, model.ErrUnknownSymbol)
}
