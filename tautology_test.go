// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//********************************************************************************************

func TestIsTautology(t *testing.T) {
	var tautTests = []struct {
		comment  string
		f        CubeList
		expected bool
	}{
		{
			"the empty sum is the zero function",
			NewList(3),
			false,
		},
		{
			"a sum holding the all-don't-care cube is trivially one",
			NewListOf(NewCube(3), CubeOf(POS, NEG, ONE)),
			true,
		},
		{
			"a single non-trivial term is not a tautology",
			NewListOf(CubeOf(POS, NEG, ONE)),
			false,
		},
		{
			"x + x' = 1",
			NewListOf(CubeOf(POS), CubeOf(NEG)),
			true,
		},
		{
			"x1*x2' + x0 is not a tautology",
			NewListOf(CubeOf(ONE, POS, NEG), CubeOf(POS, ONE, ONE)),
			false,
		},
		{
			"x0*x1 + x0*x1' + x0'*x1 + x0'*x1' = 1",
			NewListOf(
				CubeOf(POS, POS),
				CubeOf(POS, NEG),
				CubeOf(NEG, POS),
				CubeOf(NEG, NEG),
			),
			true,
		},
		{
			"x0*x1 + x0*x1' + x0'*x1 misses the assignment 00",
			NewListOf(
				CubeOf(POS, POS),
				CubeOf(POS, NEG),
				CubeOf(NEG, POS),
			),
			false,
		},
	}
	for _, tt := range tautTests {
		if actual := tt.f.IsTautology(); actual != tt.expected {
			t.Errorf("%s: IsTautology(%s): expected %v, actual %v", tt.comment, tt.f, tt.expected, actual)
		}
	}
}

// IsTautology must agree with exhaustive evaluation on a batch of functions.
func TestTautologySoundness(t *testing.T) {
	functions := []CubeList{
		NewList(2),
		NewListOf(CubeOf(POS, ONE), CubeOf(NEG, POS), CubeOf(ONE, NEG)),
		NewListOf(CubeOf(POS, POS), CubeOf(NEG, ONE)),
		NewListOf(CubeOf(POS, ONE, ONE), CubeOf(NEG, POS, ONE), CubeOf(NEG, NEG, POS), CubeOf(NEG, NEG, NEG)),
	}
	for _, f := range functions {
		allSat := true
		assignment := make([]bool, f.N())
		for a := 0; a < 1<<uint(f.N()); a++ {
			for i := range assignment {
				assignment[i] = a&(1<<uint(i)) != 0
			}
			if !f.Eval(assignment) {
				allSat = false
				break
			}
		}
		assert.Equal(t, allSat, f.IsTautology(), "IsTautology disagrees with evaluation on %s", f)
	}
}
