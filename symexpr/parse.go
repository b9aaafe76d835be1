// Package symexpr: parsing of textual rate expressions.
//
// Expressions use the usual infix notation: identifiers are symbols,
// integer and decimal literals become exact rationals, and + - * / ^
// are supported with the mathematical precedence (^ binds tightest and
// associates to the right, so "k*S^2" means k*(S^2)). Tokenization is
// delegated to go/scanner; only the grammar on top is hand-rolled,
// because Go's own ^ is a same-level-as-+ XOR and go/parser would
// group powers wrongly.

package symexpr

import (
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"math/big"
)

// ErrSyntax is returned when an expression uses a construct outside the
// supported arithmetic subset (calls, indexing, non-numeric literals…).
var ErrSyntax = errors.New("symexpr: unsupported expression syntax")

// Parse converts a textual rate expression such as "beta*S*I - gamma*I"
// into a simplified expression tree.
func Parse(src string) (Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, fmt.Errorf("symexpr: parse %q: %w", src, err)
	}
	e, err := p.parseSum()
	if err != nil {
		return nil, fmt.Errorf("symexpr: parse %q: %w", src, err)
	}
	// the scanner inserts a semicolon at end of input; consume it and
	// insist nothing follows
	if p.tok == token.SEMICOLON {
		p.next()
	}
	if p.tok != token.EOF {
		return nil, fmt.Errorf("symexpr: parse %q: %w: trailing %s",
			src, ErrSyntax, p.describe())
	}
	return e.Simplify(), nil
}

// MustParse is Parse for statically known input; it panics on error.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

type exprParser struct {
	sc      scanner.Scanner
	tok     token.Token
	lit     string
	scanErr error
}

func newParser(src string) (*exprParser, error) {
	p := &exprParser{}
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(src))
	p.sc.Init(file, []byte(src), func(_ token.Position, msg string) {
		if p.scanErr == nil {
			p.scanErr = fmt.Errorf("%w: %s", ErrSyntax, msg)
		}
	}, 0)
	p.next()
	return p, p.scanErr
}

func (p *exprParser) next() {
	_, p.tok, p.lit = p.sc.Scan()
}

func (p *exprParser) describe() string {
	if p.lit != "" {
		return fmt.Sprintf("%q", p.lit)
	}
	return fmt.Sprintf("%q", p.tok.String())
}

// parseSum := parseProduct (('+'|'-') parseProduct)*
func (p *exprParser) parseSum() (Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.tok == token.ADD || p.tok == token.SUB {
		op := p.tok
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		if op == token.SUB {
			right = Neg(right)
		}
		left = AddOf(left, right)
	}
	return left, nil
}

// parseProduct := parseUnary (('*'|'/') parseUnary)*
func (p *exprParser) parseProduct() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok == token.MUL || p.tok == token.QUO {
		op := p.tok
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == token.QUO {
			right = PowOf(right, N(-1))
		}
		left = MulOf(left, right)
	}
	return left, nil
}

// parseUnary := ('+'|'-')* parsePower
func (p *exprParser) parseUnary() (Expr, error) {
	switch p.tok {
	case token.SUB:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg(x), nil
	case token.ADD:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower := parsePrimary ('^' parseUnary)?  — right-associative,
// and the exponent may carry its own sign ("S^-1").
func (p *exprParser) parsePower() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.tok != token.XOR {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return PowOf(base, exp), nil
}

// parsePrimary := IDENT | INT | FLOAT | '(' parseSum ')'
func (p *exprParser) parsePrimary() (Expr, error) {
	switch p.tok {
	case token.IDENT:
		name := p.lit
		p.next()
		return S(name), nil

	case token.INT, token.FLOAT:
		r, ok := new(big.Rat).SetString(p.lit)
		if !ok {
			return nil, fmt.Errorf("%w: literal %s", ErrSyntax, p.lit)
		}
		p.next()
		return &Num{val: r}, nil

	case token.LPAREN:
		p.next()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.tok != token.RPAREN {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.next()
		return inner, nil
	}
	return nil, fmt.Errorf("%w: unexpected %s", ErrSyntax, p.describe())
}
