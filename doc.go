// Package epimod turns symbolic compartmental-model ODEs back into the
// transition structure that generated them.
//
// 🚀 What is epimod?
//
//	A library for working with epidemiological ODE systems symbolically:
//		• symexpr/    — exact rational symbolic expressions: parsing,
//		  canonical expansion, differentiation, Jacobians
//		• decompose/  — the core algorithm: split every equation into
//		  additive terms, match algebraic negatives into state-to-state
//		  transitions, route their origins and destinations, and verify
//		  the matrix reproduces the input
//		• model/      — named models with declared states/parameters,
//		  symbol validation, numeric evaluation and YAML definitions
//		• render/     — Graphviz DOT transition diagrams with Greek
//		  glyph labels
//		• loss/       — squared-error and likelihood losses for fitting
//		  trajectories to observed data
//
// ✨ Why epimod?
//
//   - Exact arithmetic – coefficients are big.Rat, so βSI − βSI is zero,
//     not 1e-17
//   - Deterministic – canonical ordering makes every decomposition
//     reproducible
//   - Honest failure – transitions that cannot be routed are reported,
//     never guessed
//
// Quick example, the classic S→I→R model:
//
//	m, _ := model.New([]string{"S", "I", "R"}, []string{"beta", "gamma"})
//	_ = m.SetODE("-beta*S*I", "beta*S*I - gamma*I", "gamma*I")
//	res, _ := m.Transitions()
//	// res.Transitions.At(0, 1): beta*S*I   (S→I)
//	// res.Transitions.At(1, 2): gamma*I    (I→R)
//
// See the package docs of each subpackage for the full API.
package epimod
