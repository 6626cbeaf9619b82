// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import "fmt"

// PositiveCofactor returns the Shannon cofactor of a product term with
// respect to xi = 1: a copy of c where position i holds the Factor-level
// positive cofactor. The result is zero when the term required xi'; callers
// are responsible for checking IsZero. It panics if i is out of range.
func (c Cube) PositiveCofactor(i int) Cube {
	c.checkpos(i)
	d := c.Clone()
	d[i] = c[i].PositiveCofactor()
	return d
}

// NegativeCofactor returns the Shannon cofactor of a product term with
// respect to xi = 0. See PositiveCofactor.
func (c Cube) NegativeCofactor(i int) Cube {
	c.checkpos(i)
	d := c.Clone()
	d[i] = c[i].NegativeCofactor()
	return d
}

func (c Cube) checkpos(i int) {
	if i < 0 || i >= len(c) {
		panic(fmt.Sprintf("pcn: cofactor position %d out of range in cube of length %d", i, len(c)))
	}
}

// PositiveCofactor returns the Shannon cofactor F_xi of an SOP with respect
// to xi = 1. The cofactor of a sum is the sum of the cofactors of its terms;
// terms that become zero are dropped. Arity is preserved.
func (l CubeList) PositiveCofactor(i int) CubeList {
	cofactor := NewList(l.arity)
	for _, c := range l.cubes {
		cofactor.Append(c.PositiveCofactor(i))
	}
	return cofactor
}

// NegativeCofactor returns the Shannon cofactor F_xi' of an SOP with respect
// to xi = 0. See PositiveCofactor.
func (l CubeList) NegativeCofactor(i int) CubeList {
	cofactor := NewList(l.arity)
	for _, c := range l.cubes {
		cofactor.Append(c.NegativeCofactor(i))
	}
	return cofactor
}
