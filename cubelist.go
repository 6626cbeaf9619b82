// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import (
	"fmt"
	"strings"
)

// A CubeList is an SOP function: an ordered collection of Cubes of common
// arity, standing for the sum of its product terms. An empty CubeList
// denotes the constant-zero function; a CubeList containing an
// all-don't-care Cube denotes the constant one. The order of Cubes is an
// implementation artefact and carries no meaning; algorithms in this package
// treat two CubeLists with the same multiset of Cubes as the same function.
type CubeList struct {
	arity int
	cubes []Cube
}

// NewList returns an empty CubeList of arity n, the zero function over n
// variables.
func NewList(n int) CubeList {
	if n < 0 {
		panic(fmt.Sprintf("pcn: negative arity %d in NewList", n))
	}
	return CubeList{arity: n}
}

// NewListOf returns a CubeList holding the given Cubes, with the arity taken
// from the first one. It panics if no Cube is given or if the Cubes disagree
// on their length; use NewList to build an empty function. Zero Cubes are
// dropped.
func NewListOf(cubes ...Cube) CubeList {
	if len(cubes) == 0 {
		panic("pcn: no cubes in NewListOf; use NewList for an empty function")
	}
	l := NewList(len(cubes[0]))
	l.Append(cubes...)
	return l
}

// N returns the arity of the function, the number of variables x0 ... xN-1.
func (l CubeList) N() int {
	return l.arity
}

// Len returns the number of product terms in the sum.
func (l CubeList) Len() int {
	return len(l.cubes)
}

// Cubes returns a copy of the product terms of the function. The Cubes
// themselves are shared; callers must not mutate them.
func (l CubeList) Cubes() []Cube {
	return append([]Cube(nil), l.cubes...)
}

// Append adds product terms at the end of the list, silently dropping any
// Cube that is zero. It panics if a Cube does not have exactly N Factors.
func (l *CubeList) Append(cubes ...Cube) {
	for _, c := range cubes {
		l.checkarity(c)
		if !c.IsZero() {
			l.cubes = append(l.cubes, c)
		}
	}
}

// appendRaw adds a product term without filtering zero Cubes. It is kept for
// the PCN reader, which mirrors the input file verbatim; every algorithm in
// the package uses Append.
func (l *CubeList) appendRaw(c Cube) {
	l.checkarity(c)
	l.cubes = append(l.cubes, c)
}

func (l *CubeList) checkarity(c Cube) {
	if len(c) != l.arity {
		panic(fmt.Sprintf("pcn: cube of length %d appended to list of arity %d", len(c), l.arity))
	}
}

// Contains reports whether the list holds a Cube equal, position by
// position, to c.
func (l CubeList) Contains(c Cube) bool {
	for _, d := range l.cubes {
		if d.Equal(c) {
			return true
		}
	}
	return false
}

// IsZero reports whether the function is syntactically zero: the list is
// empty or every term in it is zero. The converse check, whether the
// function is the constant one, requires the recursive IsTautology.
func (l CubeList) IsZero() bool {
	for _, c := range l.cubes {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the CubeList.
func (l CubeList) Clone() CubeList {
	d := CubeList{arity: l.arity, cubes: make([]Cube, len(l.cubes))}
	for i, c := range l.cubes {
		d.cubes[i] = c.Clone()
	}
	return d
}

// String returns the positional form of the function, e.g.
// "< [ 01 10 11 ], [ 11 11 01 ] >". The zero function prints as "< 0 >".
func (l CubeList) String() string {
	if l.Len() == 0 {
		return "< 0 >"
	}
	terms := make([]string, len(l.cubes))
	for i, c := range l.cubes {
		terms[i] = c.String()
	}
	return "< " + strings.Join(terms, ", ") + " >"
}

// Expr returns the form of the function as a formula, e.g. "x0*x1' + x2".
// The zero function prints as "0".
func (l CubeList) Expr() string {
	if l.Len() == 0 {
		return "0"
	}
	terms := make([]string, len(l.cubes))
	for i, c := range l.cubes {
		terms[i] = c.Expr()
	}
	return strings.Join(terms, " + ")
}
