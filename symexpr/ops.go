// Package symexpr: composite nodes Add, Mul and Pow, with the
// canonicalizing Simplify pass each constructor applies.

package symexpr

import (
	"math"
	"math/big"
	"sort"
	"strings"
)

// maxFoldExp bounds exact exponent folding and power expansion; larger
// exponents are left symbolic.
const maxFoldExp = 20

// Add is a flattened sum of terms.
type Add struct{ terms []Expr }

// AddOf returns the simplified sum of the given terms.
func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Terms returns the additive components in canonical order.
func (a *Add) Terms() []Expr { return a.terms }

// Simplify flattens nested sums, folds constants and collects like
// terms: c1*X + c2*X becomes (c1+c2)*X keyed on the non-numeric part X,
// so exact cancellation (t + -t == 0) always reduces to zero.
func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	constant := new(big.Rat)
	coeffs := make(map[string]*big.Rat)
	bodies := make(map[string]Expr)
	keys := make([]string, 0, len(flat))
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant.Add(constant, n.val)
			continue
		}
		coeff, body := splitCoeff(t)
		key := body.String()
		acc, seen := coeffs[key]
		if !seen {
			acc = new(big.Rat)
			coeffs[key] = acc
			bodies[key] = body
			keys = append(keys, key)
		}
		acc.Add(acc, coeff.val)
	}
	sort.Strings(keys)

	out := make([]Expr, 0, len(keys)+1)
	for _, key := range keys {
		c := coeffs[key]
		switch {
		case c.Sign() == 0:
			// cancelled
		case c.Cmp(ratOne) == 0:
			out = append(out, bodies[key])
		default:
			out = append(out, MulOf(&Num{val: c}, bodies[key]))
		}
	}
	if constant.Sign() != 0 {
		out = append(out, &Num{val: constant})
	}

	switch len(out) {
	case 0:
		return N(0)
	case 1:
		return out[0]
	}
	return &Add{terms: out}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Sub(name string, value Expr) Expr {
	next := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		next[i] = t.Sub(name, value)
	}
	return AddOf(next...)
}

func (a *Add) Diff(name string) Expr {
	next := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		next[i] = t.Diff(name)
	}
	return AddOf(next...)
}

func (a *Add) Eval() (*Num, bool) {
	acc := N(0)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc = numAdd(acc, v)
	}
	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// splitCoeff separates a simplified non-Add term into its numeric
// coefficient and the remaining body. Terms without an explicit
// coefficient yield 1.
func splitCoeff(t Expr) (*Num, Expr) {
	m, ok := t.(*Mul)
	if !ok || len(m.factors) < 2 {
		return N(1), t
	}
	n, ok := m.factors[0].(*Num)
	if !ok {
		return N(1), t
	}
	rest := m.factors[1:]
	if len(rest) == 1 {
		return n, rest[0]
	}
	return n, &Mul{factors: rest}
}

// Mul is a flattened product of factors.
type Mul struct{ factors []Expr }

// MulOf returns the simplified product of the given factors.
func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Factors returns the multiplicative components in canonical order; a
// numeric coefficient, when present, is always first.
func (m *Mul) Factors() []Expr { return m.factors }

// Simplify flattens nested products, folds the numeric coefficient and
// merges repeated bases into powers (x·x → x^2, x·x⁻¹ → 1). Remaining
// factors are ordered by their string key so that products of the same
// factors always canonicalize identically.
func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := N(1)
	exps := make(map[string]*big.Rat)
	bases := make(map[string]Expr)
	keys := make([]string, 0, len(flat))
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := splitPower(f)
		key := base.String()
		acc, seen := exps[key]
		if !seen {
			acc = new(big.Rat)
			exps[key] = acc
			bases[key] = base
			keys = append(keys, key)
		}
		acc.Add(acc, exp)
	}
	if coeff.IsZero() {
		return N(0)
	}
	sort.Strings(keys)

	out := make([]Expr, 0, len(keys)+1)
	for _, key := range keys {
		e := exps[key]
		switch {
		case e.Sign() == 0:
			// x^0 == 1, drops out
		case e.Cmp(ratOne) == 0:
			out = append(out, bases[key])
		default:
			out = append(out, PowOf(bases[key], &Num{val: e}))
		}
	}

	if len(out) == 0 {
		return coeff
	}
	if coeff.IsOne() && len(out) == 1 {
		return out[0]
	}
	if coeff.IsOne() {
		return &Mul{factors: out}
	}
	return &Mul{factors: append([]Expr{coeff}, out...)}
}

// splitPower views a simplified factor as base^exponent. Powers with
// non-numeric exponents are kept whole as their own base.
func splitPower(f Expr) (Expr, *big.Rat) {
	if p, ok := f.(*Pow); ok {
		if n, ok := p.exp.(*Num); ok {
			return p.base, n.Rat()
		}
	}
	return f, new(big.Rat).SetInt64(1)
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) Sub(name string, value Expr) Expr {
	next := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		next[i] = f.Sub(name, value)
	}
	return MulOf(next...)
}

// Diff applies the product rule across all factors.
func (m *Mul) Diff(name string) Expr {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		parts := make([]Expr, 0, len(m.factors))
		parts = append(parts, fi.Diff(name))
		for j, fj := range m.factors {
			if j != i {
				parts = append(parts, fj)
			}
		}
		terms[i] = MulOf(parts...)
	}
	return AddOf(terms...)
}

func (m *Mul) Eval() (*Num, bool) {
	acc := N(1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc = numMul(acc, v)
	}
	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

// Pow is base raised to exponent. Pure power terms (symbolic base,
// numeric exponent) stay atomic through expansion.
type Pow struct{ base, exp Expr }

// PowOf returns the simplified power base^exp.
func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// Base returns the base of the power.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the exponent of the power.
func (p *Pow) Exp() Expr { return p.exp }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			if bn, ok2 := base.(*Num); ok2 && bn.IsZero() {
				return &Pow{base: base, exp: exp} // 0^0 stays indeterminate
			}
			return N(1)
		}
		if en.IsOne() {
			return base
		}
	}
	if bn, ok := base.(*Num); ok {
		if bn.IsZero() {
			if en, ok2 := exp.(*Num); ok2 && en.Sign() < 0 {
				return &Pow{base: base, exp: exp} // 0^negative is undefined
			}
			return N(0)
		}
		if bn.IsOne() {
			return N(1)
		}
		if en, ok2 := exp.(*Num); ok2 && en.IsInteger() {
			if k := en.val.Num().Int64(); k >= -maxFoldExp && k <= maxFoldExp {
				return numPow(bn, k)
			}
		}
	}
	if inner, ok := base.(*Pow); ok {
		return PowOf(inner.base, MulOf(inner.exp, exp))
	}
	return &Pow{base: base, exp: exp}
}

func numPow(b *Num, k int64) *Num {
	neg := k < 0
	if neg {
		k = -k
	}
	out := N(1)
	for i := int64(0); i < k; i++ {
		out = numMul(out, b)
	}
	if neg {
		out = numRecip(out)
	}
	return out
}

// String parenthesizes composite bases and exponents: x^(a + b) must
// never render like Add(x^a, b), because Simplify keys like-term and
// like-base merging on the rendering.
func (p *Pow) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case *Add, *Mul:
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	switch p.exp.(type) {
	case *Add, *Mul:
		expStr = "(" + expStr + ")"
	}
	return baseStr + "^" + expStr
}

func (p *Pow) Sub(name string, value Expr) Expr {
	return PowOf(p.base.Sub(name, value), p.exp.Sub(name, value))
}

// Diff applies the power rule. The exponent must not depend on the
// differentiation variable; rate expressions in compartmental models
// never carry state-dependent exponents, so a violation is a
// programmer error and panics.
func (p *Pow) Diff(name string) Expr {
	if _, dependent := FreeSymbols(p.exp)[name]; dependent {
		panic("symexpr: differentiation of symbol-dependent exponents is not supported")
	}
	return MulOf(p.exp, PowOf(p.base, AddOf(p.exp, N(-1))), p.base.Diff(name))
}

func (p *Pow) Eval() (*Num, bool) {
	b, okB := p.base.Eval()
	e, okE := p.exp.Eval()
	if !okB || !okE {
		return nil, false
	}
	if e.IsInteger() {
		if k := e.val.Num().Int64(); k >= -maxFoldExp && k <= maxFoldExp {
			if b.IsZero() && k <= 0 {
				return nil, false
			}
			return numPow(b, k), true
		}
	}
	f := math.Pow(b.Float64(), e.Float64())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return NFloat(f), true
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}
