// Package symexpr: core Expr interface and the atomic nodes Num and Sym.

package symexpr

import (
	"fmt"
	"math/big"
)

// Expr is an immutable symbolic expression.
//
// Two expressions are algebraically equal iff their canonical expanded
// forms coincide; use Equals for that test. Equal on the interface is
// structural and only meaningful between canonicalized expressions.
type Expr interface {
	// Simplify returns the expression in local normal form: numeric
	// folding, flattened sums/products, like terms collected, factors
	// and terms in a fixed deterministic order.
	Simplify() Expr

	// String renders the expression deterministically; canonical
	// expressions with equal value render identically.
	String() string

	// Sub substitutes value for every occurrence of the named symbol.
	Sub(name string, value Expr) Expr

	// Diff differentiates with respect to the named symbol.
	Diff(name string) Expr

	// Eval reduces a closed expression to a number. The second return
	// is false when free symbols remain.
	Eval() (*Num, bool)

	// Equal reports structural equality.
	Equal(other Expr) bool
}

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
)

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

// N returns the integer constant n.
func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// F returns the exact fraction p/q. Panics when q == 0.
func F(p, q int64) *Num {
	if q == 0 {
		panic("symexpr: zero denominator")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NFloat converts a float64 to its exact rational representation.
func NFloat(f float64) *Num {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic(fmt.Sprintf("symexpr: cannot represent %v as a rational", f))
	}
	return &Num{val: r}
}

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Diff(string) Expr      { return N(0) }
func (n *Num) Eval() (*Num, bool)    { return n, true }

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

// IsZero reports whether the constant is exactly zero.
func (n *Num) IsZero() bool { return n.val.Sign() == 0 }

// IsOne reports whether the constant is exactly one.
func (n *Num) IsOne() bool { return n.val.Cmp(ratOne) == 0 }

// IsNegOne reports whether the constant is exactly minus one.
func (n *Num) IsNegOne() bool { return n.val.Cmp(ratNegOne) == 0 }

// IsInteger reports whether the denominator is one.
func (n *Num) IsInteger() bool { return n.val.IsInt() }

// Sign returns -1, 0 or +1.
func (n *Num) Sign() int { return n.val.Sign() }

// Float64 returns the nearest float64 value.
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

// Rat returns a copy of the underlying rational.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }

func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("symexpr: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// Sym is a named symbolic variable (a state or a parameter).
type Sym struct{ name string }

// S returns the symbol with the given name.
func S(name string) *Sym {
	if name == "" {
		panic("symexpr: empty symbol name")
	}
	return &Sym{name: name}
}

// Name returns the symbol's name.
func (s *Sym) Name() string { return s.name }

func (s *Sym) Simplify() Expr     { return s }
func (s *Sym) String() string     { return s.name }
func (s *Sym) Eval() (*Num, bool) { return nil, false }

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

func (s *Sym) Sub(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *Sym) Diff(name string) Expr {
	if s.name == name {
		return N(1)
	}
	return N(0)
}
