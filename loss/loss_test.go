package loss_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/epimod/loss"
)

var (
	observed  = []float64{10, 12, 9}
	predicted = []float64{11, 11, 11}
)

func TestSquare(t *testing.T) {
	fn, err := loss.NewSquare()
	require.NoError(t, err)

	got, err := fn.Loss(observed, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 1+1+4, got, 1e-12)

	r, err := fn.Residual(observed, predicted)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, -2}, r)
}

func TestSquare_Weighted(t *testing.T) {
	fn, err := loss.NewSquare(loss.WithWeights([]float64{1, 2, 0.5}))
	require.NoError(t, err)

	got, err := fn.Loss(observed, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 1+2+2, got, 1e-12)

	// weight count must match the trajectory
	_, err = fn.Loss(observed[:2], predicted[:2])
	assert.ErrorIs(t, err, loss.ErrDimension)
}

func TestWithWeights_Invalid(t *testing.T) {
	_, err := loss.NewSquare(loss.WithWeights([]float64{1, -1}))
	assert.ErrorIs(t, err, loss.ErrInvalidParam)
}

func TestNormal(t *testing.T) {
	fn, err := loss.NewNormal(2)
	require.NoError(t, err)

	got, err := fn.Loss(observed, predicted)
	require.NoError(t, err)

	var want float64
	for i := range observed {
		want -= distuv.Normal{Mu: predicted[i], Sigma: 2}.LogProb(observed[i])
	}
	assert.InDelta(t, want, got, 1e-12)

	// zero selects the documented default
	def, err := loss.NewNormal(0)
	require.NoError(t, err)
	one, err := def.Loss([]float64{1}, []float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5*math.Log(2*math.Pi), one, 1e-12)

	_, err = loss.NewNormal(-1)
	assert.ErrorIs(t, err, loss.ErrInvalidParam)
}

func TestPoisson(t *testing.T) {
	fn, err := loss.NewPoisson()
	require.NoError(t, err)

	got, err := fn.Loss(observed, predicted)
	require.NoError(t, err)
	var want float64
	for i := range observed {
		want -= distuv.Poisson{Lambda: predicted[i]}.LogProb(observed[i])
	}
	assert.InDelta(t, want, got, 1e-12)

	_, err = fn.Loss([]float64{1}, []float64{0})
	assert.ErrorIs(t, err, loss.ErrDomain)
	_, err = fn.Loss([]float64{-1}, []float64{1})
	assert.ErrorIs(t, err, loss.ErrDomain)
}

// Fractional counts (interpolated data) score through the continuous
// Gamma-function extension rather than becoming infinite.
func TestPoisson_FractionalCount(t *testing.T) {
	fn, err := loss.NewPoisson()
	require.NoError(t, err)

	y, lambda := 2.5, 3.0
	got, err := fn.Loss([]float64{y}, []float64{lambda})
	require.NoError(t, err)
	require.False(t, math.IsInf(got, 0))

	lg, _ := math.Lgamma(y + 1)
	want := -(y*math.Log(lambda) - lambda - lg)
	assert.InDelta(t, want, got, 1e-12)
}

func TestGamma(t *testing.T) {
	fn, err := loss.NewGamma(3)
	require.NoError(t, err)

	got, err := fn.Loss(observed, predicted)
	require.NoError(t, err)
	var want float64
	for i := range observed {
		want -= distuv.Gamma{Alpha: 3, Beta: 3 / predicted[i]}.LogProb(observed[i])
	}
	assert.InDelta(t, want, got, 1e-12)

	_, err = fn.Loss([]float64{0}, []float64{1})
	assert.ErrorIs(t, err, loss.ErrDomain)
}

func TestNegBinom(t *testing.T) {
	fn, err := loss.NewNegBinom(1)
	require.NoError(t, err)

	// k=1 is geometric: P(y) = (1/(1+mu)) * (mu/(1+mu))^y
	mu := 4.0
	y := 3.0
	want := -(math.Log(1/(1+mu)) + y*math.Log(mu/(1+mu)))
	got, err := fn.Loss([]float64{y}, []float64{mu})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	_, err = fn.Loss([]float64{1}, []float64{-2})
	assert.ErrorIs(t, err, loss.ErrDomain)
}

// With large overdispersion the negative binomial converges to the
// Poisson of the same mean.
func TestNegBinom_PoissonLimit(t *testing.T) {
	nb, err := loss.NewNegBinom(1e9)
	require.NoError(t, err)
	po, err := loss.NewPoisson()
	require.NoError(t, err)

	obs, pred := []float64{7}, []float64{5}
	a, err := nb.Loss(obs, pred)
	require.NoError(t, err)
	b, err := po.Loss(obs, pred)
	require.NoError(t, err)
	assert.InDelta(t, b, a, 1e-5)
}

func TestDimensionChecks(t *testing.T) {
	fn, err := loss.NewSquare()
	require.NoError(t, err)

	_, err = fn.Loss(nil, nil)
	assert.ErrorIs(t, err, loss.ErrDimension)
	_, err = fn.Loss([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, loss.ErrDimension)
	_, err = fn.Residual([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, loss.ErrDimension)
}
