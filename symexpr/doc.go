// Package symexpr is a small deterministic symbolic-algebra kernel for
// compartmental ODE models: exact rational arithmetic, immutable
// expression trees, and a canonical expanded sum-of-products form that
// makes algebraic equality decidable.
//
// 🚀 What does symexpr provide?
//
//	• Expression nodes: Num (big.Rat), Sym, Add, Mul, Pow
//	• Canonicalization: Expand + Simplify into a stable sum of products
//	  with like terms collected and factor order fixed
//	• Exact equality: Equals(a, b) ⇔ a − b canonicalizes to zero
//	• Calculus: Diff, Jacobian (for sensitivity / gradient consumers)
//	• Parsing: Parse turns "beta*S*I - gamma*I" into an expression tree
//	• Vector and Matrix containers over expressions
//
// ✨ Design guarantees:
//
//   - Immutable – every operation returns a fresh expression
//   - Deterministic – identical inputs produce byte-identical String output
//   - Exact – coefficients are big.Rat; no floating-point drift in algebra
//
// Power terms are first-class: S^2 stays a single Pow node through
// expansion (only sums inside a power are multiplied out), which the
// decomposition layer relies on when treating power terms as atomic.
//
// Quick example:
//
//	e, _ := symexpr.Parse("beta*S*I - gamma*I")
//	fmt.Println(symexpr.Canonical(e)) // -1*I*gamma + I*S*beta
package symexpr
