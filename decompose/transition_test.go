package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimod/decompose"
	"github.com/katalvlaran/epimod/symexpr"
)

func sirVector(t *testing.T) symexpr.Vector {
	t.Helper()
	return symexpr.Vector{
		symexpr.MustParse("-beta*S*I"),
		symexpr.MustParse("beta*S*I - gamma*I"),
		symexpr.MustParse("gamma*I"),
	}
}

var sirStates = []string{"S", "I", "R"}

// TestToTransitions_SIR checks the canonical S→I→R decomposition:
// exactly two transitions, routed S→I and I→R, with an empty
// birth/death vector.
func TestToTransitions_SIR(t *testing.T) {
	res, err := decompose.ToTransitions(sirVector(t), sirStates)
	require.NoError(t, err)
	require.NotNil(t, res.Transitions)

	infect := symexpr.MustParse("beta*S*I")
	recovery := symexpr.MustParse("gamma*I")
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got := res.Transitions.At(i, j)
			switch {
			case i == 0 && j == 1:
				assert.True(t, symexpr.Equals(infect, got), "A[S][I] = %s", got)
			case i == 1 && j == 2:
				assert.True(t, symexpr.Equals(recovery, got), "A[I][R] = %s", got)
			default:
				assert.True(t, symexpr.IsZero(got), "A[%d][%d] = %s", i, j, got)
			}
		}
	}
	for i, bd := range res.BirthDeath {
		assert.True(t, symexpr.IsZero(bd), "birth/death[%d] = %s", i, bd)
	}
	assert.Empty(t, res.Remainder)
}

// TestToTransitions_BirthDeath checks that terms with no algebraic
// negative anywhere in the system end up in the birth/death vector,
// not the matrix: a constant birth flow into S and a death flow out
// of I.
func TestToTransitions_BirthDeath(t *testing.T) {
	vec := symexpr.Vector{
		symexpr.MustParse("mu - beta*S*I"),
		symexpr.MustParse("beta*S*I - gamma*I"),
	}
	res, err := decompose.ToTransitions(vec, []string{"S", "I"})
	require.NoError(t, err)

	assert.True(t, symexpr.Equals(symexpr.MustParse("mu"), res.BirthDeath[0]),
		"birth/death[S] = %s", res.BirthDeath[0])
	assert.True(t, symexpr.Equals(symexpr.MustParse("-gamma*I"), res.BirthDeath[1]),
		"birth/death[I] = %s", res.BirthDeath[1])

	assert.True(t, symexpr.Equals(symexpr.MustParse("beta*S*I"), res.Transitions.At(0, 1)))
	assert.True(t, symexpr.IsZero(res.Transitions.At(1, 0)))
}

// TestToTransitions_RoundTrip checks that rebuilding the ODE from the
// decomposition reproduces the input exactly.
func TestToTransitions_RoundTrip(t *testing.T) {
	vec := symexpr.Vector{
		symexpr.MustParse("mu*N - beta*S*I - mu*S"),
		symexpr.MustParse("beta*S*I - gamma*I - mu*I"),
		symexpr.MustParse("gamma*I - mu*R"),
	}
	res, err := decompose.ToTransitions(vec, sirStates)
	require.NoError(t, err)

	rebuilt, err := decompose.FromTransitions(res.Transitions, res.BirthDeath)
	require.NoError(t, err)
	require.Len(t, rebuilt, len(vec))
	for i := range vec {
		assert.True(t, symexpr.Equals(vec[i], rebuilt[i]),
			"equation %d: want %s, rebuilt %s", i, vec[i], rebuilt[i])
	}
}

// Reconstruct-then-decompose recovers the same set of nonzero
// transition cells.
func TestReconstructThenDecompose(t *testing.T) {
	mat := symexpr.NewMatrix(3, 3)
	mat.Set(0, 1, symexpr.MustParse("beta*S*I"))
	mat.Set(1, 2, symexpr.MustParse("gamma*I"))
	mat.Set(2, 0, symexpr.MustParse("w*R"))

	vec, err := decompose.FromTransitions(mat, nil)
	require.NoError(t, err)

	res, err := decompose.ToTransitions(vec, sirStates)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.True(t, symexpr.Equals(mat.At(i, j), res.Transitions.At(i, j)),
				"cell [%d][%d]: want %s, got %s", i, j, mat.At(i, j), res.Transitions.At(i, j))
		}
	}
}

// TestToTransitions_Idempotent checks that decomposing the same input
// twice yields identical matrices.
func TestToTransitions_Idempotent(t *testing.T) {
	first, err := decompose.ToTransitions(sirVector(t), sirStates)
	require.NoError(t, err)
	second, err := decompose.ToTransitions(sirVector(t), sirStates)
	require.NoError(t, err)

	assert.Equal(t, first.Transitions.String(), second.Transitions.String())
	assert.Equal(t, first.BirthDeath.String(), second.BirthDeath.String())
}

// Conservation: a closed system (empty birth/death) rebuilt with a nil
// birth/death vector must sum to zero across all equations.
func TestFromTransitions_Conservation(t *testing.T) {
	res, err := decompose.ToTransitions(sirVector(t), sirStates)
	require.NoError(t, err)

	rebuilt, err := decompose.FromTransitions(res.Transitions, nil)
	require.NoError(t, err)

	total := symexpr.Canonical(symexpr.AddOf(rebuilt...))
	assert.True(t, symexpr.IsZero(total), "total flow = %s", total)
}

func TestFromTransitions_ShapeMismatch(t *testing.T) {
	rect := symexpr.NewMatrix(2, 3)
	_, err := decompose.FromTransitions(rect, nil)
	assert.ErrorIs(t, err, decompose.ErrShapeMismatch)

	square := symexpr.NewMatrix(2, 2)
	_, err = decompose.FromTransitions(square, symexpr.Vector{symexpr.N(0)})
	assert.ErrorIs(t, err, decompose.ErrShapeMismatch)
}

func TestToTransitions_InputValidation(t *testing.T) {
	_, err := decompose.ToTransitions(nil, nil)
	assert.ErrorIs(t, err, decompose.ErrInvalidInput)

	_, err = decompose.ToTransitions(sirVector(t), []string{"S", "S", "R"})
	assert.ErrorIs(t, err, decompose.ErrInvalidInput)

	_, err = decompose.ToTransitions(sirVector(t), []string{"S", "I"})
	assert.ErrorIs(t, err, decompose.ErrShapeMismatch)
}

// A positive term mirrored into two destination equations cannot be
// reproduced by a single matrix entry; the refinement loop must give
// up with ErrReconstructionIncomplete instead of spinning.
func TestToTransitions_UnroutableResidual(t *testing.T) {
	vec := symexpr.Vector{
		symexpr.MustParse("-k*A"),
		symexpr.MustParse("k*A"),
		symexpr.MustParse("k*A"),
	}
	_, err := decompose.ToTransitions(vec, []string{"A", "B", "C"})
	assert.ErrorIs(t, err, decompose.ErrReconstructionIncomplete)
}

func TestWithMaxRefine_Ignored(t *testing.T) {
	// Out-of-range override falls back to the default cap; a valid
	// system still decomposes.
	res, err := decompose.ToTransitions(sirVector(t), sirStates,
		decompose.WithMaxRefine(0))
	require.NoError(t, err)
	assert.NotNil(t, res.Transitions)
}

// TestMatchTerms_Symmetry checks the matching relation is symmetric:
// reversing the input order changes neither partition.
func TestMatchTerms_Symmetry(t *testing.T) {
	x := symexpr.MustParse("beta*S*I")
	y := symexpr.MustParse("-beta*S*I")
	z := symexpr.MustParse("mu")

	m1, u1 := decompose.MatchTerms([]symexpr.Expr{x, y, z})
	m2, u2 := decompose.MatchTerms([]symexpr.Expr{z, y, x})

	require.Len(t, m1, 2)
	require.Len(t, u1, 1)
	assert.Len(t, m2, 2)
	assert.Len(t, u2, 1)
	assert.True(t, symexpr.Equals(u1[0], z))
	assert.True(t, symexpr.Equals(u2[0], z))
}

func TestMatchTerms_SetSemantics(t *testing.T) {
	x := symexpr.MustParse("gamma*I")
	matched, unmatched := decompose.MatchTerms([]symexpr.Expr{x, x, x})
	assert.Empty(t, matched)
	assert.Len(t, unmatched, 1)
}

// TestPairs_SignHeuristic covers the literal −1 classification,
// including the double negation -(-x), which simplifies away its sign
// and is therefore classified positive.
func TestPairs_SignHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		wantPos string
	}{
		{"plain negation", "gamma*I", "-gamma*I", "gamma*I"},
		{"reversed order", "-gamma*I", "gamma*I", "gamma*I"},
		{"double negation", "-(-gamma*I)", "-gamma*I", "gamma*I"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pairs := decompose.Pairs([]symexpr.Expr{
				symexpr.MustParse(tc.a),
				symexpr.MustParse(tc.b),
			})
			require.Len(t, pairs, 1)
			assert.True(t, symexpr.Equals(symexpr.MustParse(tc.wantPos), pairs[0].Pos),
				"positive half = %s", pairs[0].Pos)
		})
	}
}

func TestUnmatched_SplitsSystemWide(t *testing.T) {
	bd, pairs := decompose.Unmatched(symexpr.Vector{
		symexpr.MustParse("mu - beta*S*I"),
		symexpr.MustParse("beta*S*I"),
	})
	require.Len(t, bd, 1)
	assert.True(t, symexpr.Equals(symexpr.MustParse("mu"), bd[0]))
	require.Len(t, pairs, 1)
	assert.True(t, symexpr.Equals(symexpr.MustParse("beta*S*I"), pairs[0].Pos))
}

func TestStripBirthDeath_Partition(t *testing.T) {
	vec := symexpr.Vector{
		symexpr.MustParse("mu*N - beta*S*I - mu*S"),
		symexpr.MustParse("beta*S*I - mu*I"),
	}
	bd, pure := decompose.StripBirthDeath(vec)
	require.Len(t, bd, 2)
	require.Len(t, pure, 2)
	for i := range vec {
		sum := symexpr.AddOf(bd[i], pure[i])
		assert.True(t, symexpr.Equals(vec[i], sum),
			"equation %d: bd+pure = %s", i, sum)
	}
	assert.True(t, symexpr.Equals(symexpr.MustParse("-beta*S*I"), pure[0]))
	assert.True(t, symexpr.Equals(symexpr.MustParse("mu*N - mu*S"), bd[0]))
}
