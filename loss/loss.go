// Package loss: the loss functions themselves.

package loss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Defaults for the distribution parameters.
const (
	DefaultSigma      = 1.0
	DefaultGammaShape = 2.0
	DefaultNegBinomK  = 1.0
)

// Function scores an observed trajectory against a predicted one.
// Lower is better; likelihood-based functions return the negative
// log-likelihood.
type Function interface {
	// Loss returns the total score across all observations.
	Loss(observed, predicted []float64) (float64, error)
	// Residual returns observed−predicted, element-wise.
	Residual(observed, predicted []float64) ([]float64, error)
}

// Option mutates the shared loss configuration.
type Option func(*config)

type config struct {
	weights []float64
}

// WithWeights attaches per-observation weights; the length must match
// the trajectories passed to Loss. All weights must be positive.
func WithWeights(w []float64) Option {
	return func(c *config) { c.weights = append([]float64(nil), w...) }
}

func newConfig(opts []Option) (config, error) {
	var c config
	for _, fn := range opts {
		fn(&c)
	}
	for _, w := range c.weights {
		if w <= 0 || math.IsNaN(w) {
			return c, fmt.Errorf("%w: weight %v", ErrInvalidParam, w)
		}
	}
	return c, nil
}

// check validates the trajectory shapes against the configuration.
func (c *config) check(observed, predicted []float64) error {
	if len(observed) == 0 || len(observed) != len(predicted) {
		return fmt.Errorf("%w: %d observed, %d predicted",
			ErrDimension, len(observed), len(predicted))
	}
	if c.weights != nil && len(c.weights) != len(observed) {
		return fmt.Errorf("%w: %d weights for %d observations",
			ErrDimension, len(c.weights), len(observed))
	}
	return nil
}

func (c *config) weight(i int) float64 {
	if c.weights == nil {
		return 1
	}
	return c.weights[i]
}

func (c *config) residual(observed, predicted []float64) ([]float64, error) {
	if err := c.check(observed, predicted); err != nil {
		return nil, err
	}
	out := make([]float64, len(observed))
	for i := range observed {
		out[i] = observed[i] - predicted[i]
	}
	return out, nil
}

// Square is the weighted sum of squared residuals.
type Square struct{ cfg config }

// NewSquare builds a squared-error loss.
func NewSquare(opts ...Option) (*Square, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Square{cfg: cfg}, nil
}

func (s *Square) Loss(observed, predicted []float64) (float64, error) {
	if err := s.cfg.check(observed, predicted); err != nil {
		return 0, err
	}
	var total float64
	for i := range observed {
		r := observed[i] - predicted[i]
		total += s.cfg.weight(i) * r * r
	}
	return total, nil
}

func (s *Square) Residual(observed, predicted []float64) ([]float64, error) {
	return s.cfg.residual(observed, predicted)
}

// Normal is the negative Gaussian log-likelihood with the predicted
// value as the mean and a fixed observation noise sigma.
type Normal struct {
	cfg   config
	sigma float64
}

// NewNormal builds a Gaussian loss. A sigma of zero selects
// DefaultSigma; a negative or NaN sigma is ErrInvalidParam.
func NewNormal(sigma float64, opts ...Option) (*Normal, error) {
	if sigma == 0 {
		sigma = DefaultSigma
	}
	if sigma < 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("%w: sigma %v", ErrInvalidParam, sigma)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Normal{cfg: cfg, sigma: sigma}, nil
}

func (n *Normal) Loss(observed, predicted []float64) (float64, error) {
	if err := n.cfg.check(observed, predicted); err != nil {
		return 0, err
	}
	var total float64
	for i := range observed {
		dist := distuv.Normal{Mu: predicted[i], Sigma: n.sigma}
		total -= n.cfg.weight(i) * dist.LogProb(observed[i])
	}
	return total, nil
}

func (n *Normal) Residual(observed, predicted []float64) ([]float64, error) {
	return n.cfg.residual(observed, predicted)
}

// Poisson is the negative Poisson log-likelihood for count data; the
// predicted value is the rate.
type Poisson struct{ cfg config }

// NewPoisson builds a Poisson loss.
func NewPoisson(opts ...Option) (*Poisson, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Poisson{cfg: cfg}, nil
}

func (p *Poisson) Loss(observed, predicted []float64) (float64, error) {
	if err := p.cfg.check(observed, predicted); err != nil {
		return 0, err
	}
	var total float64
	for i := range observed {
		if predicted[i] <= 0 {
			return 0, fmt.Errorf("%w: Poisson rate %v at index %d",
				ErrDomain, predicted[i], i)
		}
		if observed[i] < 0 {
			return 0, fmt.Errorf("%w: negative count %v at index %d",
				ErrDomain, observed[i], i)
		}
		total -= p.cfg.weight(i) * poissonLogPMF(observed[i], predicted[i])
	}
	return total, nil
}

func (p *Poisson) Residual(observed, predicted []float64) ([]float64, error) {
	return p.cfg.residual(observed, predicted)
}

// Gamma is the negative Gamma log-likelihood with a fixed shape; the
// predicted value is the distribution mean, so the rate is
// shape/predicted.
type Gamma struct {
	cfg   config
	shape float64
}

// NewGamma builds a Gamma loss. A shape of zero selects
// DefaultGammaShape; a negative or NaN shape is ErrInvalidParam.
func NewGamma(shape float64, opts ...Option) (*Gamma, error) {
	if shape == 0 {
		shape = DefaultGammaShape
	}
	if shape < 0 || math.IsNaN(shape) {
		return nil, fmt.Errorf("%w: shape %v", ErrInvalidParam, shape)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Gamma{cfg: cfg, shape: shape}, nil
}

func (g *Gamma) Loss(observed, predicted []float64) (float64, error) {
	if err := g.cfg.check(observed, predicted); err != nil {
		return 0, err
	}
	var total float64
	for i := range observed {
		if predicted[i] <= 0 || observed[i] <= 0 {
			return 0, fmt.Errorf("%w: Gamma support is positive, got obs %v pred %v at index %d",
				ErrDomain, observed[i], predicted[i], i)
		}
		dist := distuv.Gamma{Alpha: g.shape, Beta: g.shape / predicted[i]}
		total -= g.cfg.weight(i) * dist.LogProb(observed[i])
	}
	return total, nil
}

func (g *Gamma) Residual(observed, predicted []float64) ([]float64, error) {
	return g.cfg.residual(observed, predicted)
}

// NegBinom is the negative negative-binomial log-likelihood with a
// fixed overdispersion parameter k; the predicted value is the mean.
// The variance is mean + mean²/k, so small k means strong
// overdispersion and k→∞ recovers Poisson.
type NegBinom struct {
	cfg config
	k   float64
}

// NewNegBinom builds a negative-binomial loss. A k of zero selects
// DefaultNegBinomK; a negative or NaN k is ErrInvalidParam.
func NewNegBinom(k float64, opts ...Option) (*NegBinom, error) {
	if k == 0 {
		k = DefaultNegBinomK
	}
	if k < 0 || math.IsNaN(k) {
		return nil, fmt.Errorf("%w: overdispersion %v", ErrInvalidParam, k)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &NegBinom{cfg: cfg, k: k}, nil
}

func (nb *NegBinom) Loss(observed, predicted []float64) (float64, error) {
	if err := nb.cfg.check(observed, predicted); err != nil {
		return 0, err
	}
	var total float64
	for i := range observed {
		if predicted[i] <= 0 {
			return 0, fmt.Errorf("%w: negative-binomial mean %v at index %d",
				ErrDomain, predicted[i], i)
		}
		if observed[i] < 0 {
			return 0, fmt.Errorf("%w: negative count %v at index %d",
				ErrDomain, observed[i], i)
		}
		total -= nb.cfg.weight(i) * negBinomLogPMF(observed[i], predicted[i], nb.k)
	}
	return total, nil
}

func (nb *NegBinom) Residual(observed, predicted []float64) ([]float64, error) {
	return nb.cfg.residual(observed, predicted)
}

// poissonLogPMF is the Poisson log-mass y·log(λ) − λ − lgamma(y+1),
// evaluated through the Gamma function so that fractional observations
// (interpolated or aggregated data) score smoothly instead of
// collapsing to −Inf. Coincides with distuv.Poisson.LogProb on integer
// counts.
func poissonLogPMF(y, lambda float64) float64 {
	ly1, _ := math.Lgamma(y + 1)
	return y*math.Log(lambda) - lambda - ly1
}

// negBinomLogPMF is the log-probability of count y under a
// negative-binomial with mean mu and overdispersion k, in the
// mean/overdispersion parameterization. distuv carries no
// negative-binomial distribution, so the three Gamma-function terms
// come from math.Lgamma directly.
func negBinomLogPMF(y, mu, k float64) float64 {
	ly, _ := math.Lgamma(y + k)
	lk, _ := math.Lgamma(k)
	ly1, _ := math.Lgamma(y + 1)
	return ly - lk - ly1 +
		k*math.Log(k/(k+mu)) +
		y*math.Log(mu/(k+mu))
}
