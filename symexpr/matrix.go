// Package symexpr: Vector and Matrix containers over expressions.

package symexpr

import (
	"fmt"
	"strings"
)

// Vector is an ordered sequence of expressions, one per state when it
// represents an ODE right-hand side.
type Vector []Expr

// Canonical returns a new vector with every entry in canonical form.
func (v Vector) Canonical() Vector {
	out := make(Vector, len(v))
	for i, e := range v {
		out[i] = Canonical(e)
	}
	return out
}

// String renders the vector as [e0, e1, …].
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Matrix is a dense matrix of expressions, zero-initialized.
// Accumulation during matrix fill goes through AddAt; all other access
// is read-mostly. Indexing past the bounds is a programmer error and
// panics.
type Matrix struct {
	rows, cols int
	data       [][]Expr
}

// NewMatrix returns a rows×cols matrix with every entry set to zero.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("symexpr: invalid matrix shape %dx%d", rows, cols))
	}
	data := make([][]Expr, rows)
	for i := range data {
		data[i] = make([]Expr, cols)
		for j := range data[i] {
			data[i][j] = N(0)
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("symexpr: index [%d,%d] out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) Expr {
	m.check(i, j)
	return m.data[i][j]
}

// Set replaces the entry at row i, column j.
func (m *Matrix) Set(i, j int, e Expr) {
	m.check(i, j)
	m.data[i][j] = e
}

// AddAt accumulates e into the entry at row i, column j.
func (m *Matrix) AddAt(i, j int, e Expr) {
	m.check(i, j)
	m.data[i][j] = AddOf(m.data[i][j], e)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) Vector {
	m.check(i, 0)
	out := make(Vector, m.cols)
	copy(out, m.data[i])
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) Vector {
	m.check(0, j)
	out := make(Vector, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i][j]
	}
	return out
}

// String renders the matrix row by row.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Vector(m.data[i]).String())
	}
	sb.WriteString("]")
	return sb.String()
}
