// Package loss scores model trajectories against observed data, for
// least-squares and likelihood-based parameter fitting.
//
// 🚀 Available loss functions:
//
//	  • Square    — weighted sum of squared residuals
//	  • Normal    — negative Gaussian log-likelihood, observation noise
//	    with a fixed standard deviation (default 1)
//	  • Poisson   — negative Poisson log-likelihood for count data
//	  • Gamma     — negative Gamma log-likelihood with fixed shape
//	    (default 2); the predicted value is the distribution mean
//	  • NegBinom  — negative negative-binomial log-likelihood with
//	    fixed overdispersion k (default 1)
//
// Every function also exposes the raw residual vector observed−predicted.
// Per-observation weights are attached with WithWeights.
//
// ⚙️ Usage:
//
//	fn, err := loss.NewPoisson()
//	score, err := fn.Loss(observed, predicted)
package loss
