// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import "strings"

// A Cube is one product term of an SOP function: an ordered, fixed-length
// sequence of Factors where position i stands for variable xi. All Cubes
// inside one CubeList have the same length, the arity of the function.
type Cube []Factor

// NewCube returns a Cube of n don't-care Factors, the product term that
// constrains no variable (the constant one).
func NewCube(n int) Cube {
	c := make(Cube, n)
	for i := range c {
		c[i] = ONE
	}
	return c
}

// CubeOf returns a Cube built from a sequence of Factor codes, e.g.
// CubeOf(POS, NEG, ONE) for the term x0*x1'.
func CubeOf(factors ...Factor) Cube {
	c := make(Cube, len(factors))
	copy(c, factors)
	return c
}

// Clone returns a copy of a Cube that shares no storage with the original.
func (c Cube) Clone() Cube {
	d := make(Cube, len(c))
	copy(d, c)
	return d
}

// IsZero reports whether the product term is identically false, that is
// whether any of its Factors is ZERO.
func (c Cube) IsZero() bool {
	for _, f := range c {
		if f == ZERO {
			return true
		}
	}
	return false
}

// IsTautology reports whether the product term is identically true, that is
// whether every Factor is a don't care.
func (c Cube) IsTautology() bool {
	for _, f := range c {
		if f != ONE {
			return false
		}
	}
	return true
}

// Equal reports whether two Cubes have the same length and the same Factor
// at every position.
func (c Cube) Equal(d Cube) bool {
	if len(c) != len(d) {
		return false
	}
	for i, f := range c {
		if f != d[i] {
			return false
		}
	}
	return true
}

// enumerated returns the number of variables constrained by the term, the
// count of positions holding POS or NEG.
func (c Cube) enumerated() int {
	count := 0
	for _, f := range c {
		if f == POS || f == NEG {
			count++
		}
	}
	return count
}

// key packs the Factor sequence of a Cube into a string usable as a map key.
func (c Cube) key() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, f := range c {
		sb.WriteByte(byte(f))
	}
	return sb.String()
}

// String returns the positional form of a Cube, e.g. "[ 01 10 11 ]" for
// x0*x1' in three variables.
func (c Cube) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, f := range c {
		sb.WriteString(f.String())
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}

// Expr returns the form of a Cube inside a formula, e.g. "x0*x1'". Don't
// care positions are omitted; the all-don't-care Cube prints as "1" and a
// zero Cube prints as "0".
func (c Cube) Expr() string {
	if c.IsZero() {
		return "0"
	}
	if c.IsTautology() {
		return "1"
	}
	lits := make([]string, 0, len(c))
	for i, f := range c {
		if f == POS || f == NEG {
			lits = append(lits, Literal{Index: uint32(i), Pol: f}.String())
		}
	}
	return strings.Join(lits, "*")
}
