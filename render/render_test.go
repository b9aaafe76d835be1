package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimod/decompose"
	"github.com/katalvlaran/epimod/render"
	"github.com/katalvlaran/epimod/symexpr"
)

func TestPrettify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"beta*S*I", "β*S*I"},
		{"gamma*I", "γ*I"},
		{"beta2*S", "β2*S"},
		{"betamax*S", "betamax*S"},
		{"mu*N - mu*S", "μ*N - μ*S"},
		{"42", "42"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, render.Prettify(tc.in), "input %q", tc.in)
	}
}

func TestTransitionGraph_SIR(t *testing.T) {
	vec := symexpr.Vector{
		symexpr.MustParse("mu - beta*S*I - mu*S"),
		symexpr.MustParse("beta*S*I - gamma*I - mu*I"),
		symexpr.MustParse("gamma*I - mu*R"),
	}
	states := []string{"S", "I", "R"}
	res, err := decompose.ToTransitions(vec, states)
	require.NoError(t, err)

	g, err := render.TransitionGraph(res, states)
	require.NoError(t, err)
	out := g.String()

	assert.Contains(t, out, "rankdir")
	for _, s := range states {
		assert.Contains(t, out, `"`+s+`"`)
	}
	// transition edges carry prettified rates
	assert.Contains(t, out, "β")
	assert.Contains(t, out, "γ")
	// birth/death flows attach to point-shaped boundary nodes
	assert.Contains(t, out, "point")
	assert.Contains(t, out, "μ")
}

func TestTransitionGraph_Errors(t *testing.T) {
	_, err := render.TransitionGraph(nil, []string{"S"})
	assert.ErrorIs(t, err, decompose.ErrInvalidInput)

	res := &decompose.Result{Transitions: symexpr.NewMatrix(2, 2)}
	_, err = render.TransitionGraph(res, []string{"S", "I", "R"})
	assert.ErrorIs(t, err, decompose.ErrShapeMismatch)
}
