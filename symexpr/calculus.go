// Package symexpr: package-level calculus helpers.

package symexpr

// Diff differentiates expr with respect to the named symbol and
// simplifies the result.
func Diff(expr Expr, name string) Expr {
	return expr.Diff(name).Simplify()
}

// Jacobian returns the len(exprs)×len(names) matrix of partial
// derivatives ∂exprs[i]/∂names[j]. Consumers use it for sensitivity
// analysis and gradient-based parameter fitting.
func Jacobian(exprs Vector, names []string) *Matrix {
	m := NewMatrix(len(exprs), len(names))
	for i, e := range exprs {
		for j, name := range names {
			m.Set(i, j, Diff(e, name))
		}
	}
	return m
}
