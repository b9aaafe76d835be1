// Package symexpr: expansion into canonical sum-of-products form and
// the algebraic equality predicate built on top of it.

package symexpr

// Canonical returns the canonical expanded sum-of-products form of e.
// Two expressions are algebraically equal exactly when their canonical
// forms are structurally equal (and render identically).
func Canonical(e Expr) Expr { return Expand(e) }

// Expand distributes products over sums and multiplies out integer
// powers of sums, then simplifies. Powers whose base contains no sum
// (e.g. S^2) are deliberately kept whole: splitting them does not
// correspond to a separate transition term.
func Expand(e Expr) Expr { return expand(e).Simplify() }

func expand(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		next := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			next[i] = expand(t)
		}
		return AddOf(next...)

	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = expand(f)
		}
		// distribute over the first sum factor, then recurse
		for i, f := range factors {
			a, ok := f.(*Add)
			if !ok {
				continue
			}
			rest := make([]Expr, 0, len(factors)-1)
			rest = append(rest, factors[:i]...)
			rest = append(rest, factors[i+1:]...)
			terms := make([]Expr, len(a.terms))
			for k, t := range a.terms {
				terms[k] = expand(MulOf(append([]Expr{t}, rest...)...))
			}
			return AddOf(terms...)
		}
		return MulOf(factors...)

	case *Pow:
		n, ok := v.exp.(*Num)
		if ok && n.IsInteger() && containsSum(v.base) {
			if k := n.val.Num().Int64(); k >= 2 && k <= maxFoldExp {
				base := expand(v.base)
				out := Expr(N(1))
				for i := int64(0); i < k; i++ {
					out = expand(MulOf(out, base))
				}
				return out
			}
		}
		return PowOf(expand(v.base), expand(v.exp))
	}
	return e
}

func containsSum(e Expr) bool {
	switch v := e.(type) {
	case *Add:
		return true
	case *Mul:
		for _, f := range v.factors {
			if containsSum(f) {
				return true
			}
		}
	case *Pow:
		return containsSum(v.base) || containsSum(v.exp)
	}
	return false
}

// Neg returns -e.
func Neg(e Expr) Expr { return MulOf(N(-1), e) }

// IsZero reports whether the simplified expression is the constant zero.
func IsZero(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.IsZero()
}

// Equals reports algebraic equality: a and b are equal iff a-b expands
// to exactly zero.
func Equals(a, b Expr) bool {
	return IsZero(Canonical(AddOf(a, Neg(b))))
}

// FreeSymbols returns the set of symbol names occurring in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	collectSymbols(e, out)
	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	}
}
