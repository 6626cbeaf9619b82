// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//********************************************************************************************

func TestCubeCofactor(t *testing.T) {
	var cofTests = []struct {
		c        Cube
		idx      int
		pos, neg Cube
	}{
		// x1 at position 1: x=1 satisfies it, x=0 kills the term
		{CubeOf(ONE, POS, NEG), 1, CubeOf(ONE, ONE, NEG), CubeOf(ONE, ZERO, NEG)},
		// x0' at position 0
		{CubeOf(NEG, ONE, ONE), 0, CubeOf(ZERO, ONE, ONE), CubeOf(ONE, ONE, ONE)},
		// don't care position is unaffected either way
		{CubeOf(POS, ONE, NEG), 1, CubeOf(POS, ONE, NEG), CubeOf(POS, ONE, NEG)},
	}
	for _, tt := range cofTests {
		if actual := tt.c.PositiveCofactor(tt.idx); !actual.Equal(tt.pos) {
			t.Errorf("%s.PositiveCofactor(%d): expected %s, actual %s", tt.c, tt.idx, tt.pos, actual)
		}
		if actual := tt.c.NegativeCofactor(tt.idx); !actual.Equal(tt.neg) {
			t.Errorf("%s.NegativeCofactor(%d): expected %s, actual %s", tt.c, tt.idx, tt.neg, actual)
		}
	}
}

func TestCubeCofactorOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { CubeOf(POS, NEG).PositiveCofactor(2) })
	assert.Panics(t, func() { CubeOf(POS, NEG).NegativeCofactor(-1) })
}

func TestCubeListCofactorDropsZero(t *testing.T) {
	// F = x1*x2' + x0*x1'*x2 at x1=1: the first term loses x1, the second
	// term becomes zero and is dropped.
	f := NewListOf(CubeOf(ONE, POS, NEG), CubeOf(POS, NEG, POS))
	cofactor := f.PositiveCofactor(1)
	assertSameFunction(t, NewListOf(CubeOf(ONE, ONE, NEG)), cofactor)
	assert.Equal(t, 3, cofactor.N())
}

func TestCubeListCofactorIdentity(t *testing.T) {
	// F == xi*F_xi + xi'*F_xi' for every variable
	functions := []CubeList{
		NewListOf(CubeOf(POS, POS, ONE), CubeOf(ONE, ONE, POS)),
		NewListOf(CubeOf(POS, NEG, ONE), CubeOf(NEG, POS, ONE), CubeOf(ONE, ONE, NEG)),
		NewListOf(CubeOf(POS, ONE, ONE)),
	}
	for _, f := range functions {
		for i := 0; i < f.N(); i++ {
			expansion := OrLists(
				AndList(Literal{Index: uint32(i), Pol: POS}, f.PositiveCofactor(i)),
				AndList(Literal{Index: uint32(i), Pol: NEG}, f.NegativeCofactor(i)),
			)
			if !Equivalent(f, expansion) {
				t.Errorf("Shannon expansion of %s at x%d is not equivalent: got %s", f, i, expansion)
			}
		}
	}
}
