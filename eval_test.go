// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

//********************************************************************************************

func TestCubeEval(t *testing.T) {
	c := CubeOf(POS, NEG, ONE) // x0*x1'
	assert.True(t, c.Eval([]bool{true, false, false}))
	assert.True(t, c.Eval([]bool{true, false, true}))
	assert.False(t, c.Eval([]bool{false, false, true}))
	assert.False(t, c.Eval([]bool{true, true, true}))

	// a zero position falsifies the term under every assignment
	z := CubeOf(POS, ZERO, ONE)
	assert.False(t, z.Eval([]bool{true, false, true}))
	assert.False(t, z.Eval([]bool{true, true, true}))
}

func TestCubeEvalLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { CubeOf(POS, NEG).Eval([]bool{true}) })
}

func TestCubeListEval(t *testing.T) {
	// F = x0*x1' + x2
	f := NewListOf(CubeOf(POS, NEG, ONE), CubeOf(ONE, ONE, POS))
	assert.True(t, f.Eval([]bool{true, false, false}))
	assert.True(t, f.Eval([]bool{false, true, true}))
	assert.False(t, f.Eval([]bool{false, true, false}))

	// the empty sum is false everywhere
	assert.False(t, NewList(3).Eval([]bool{true, true, true}))
}

func TestEquivalent(t *testing.T) {
	// x0*x1' + x0*x1 == x0
	f := NewListOf(CubeOf(POS, NEG), CubeOf(POS, POS))
	g := NewListOf(CubeOf(POS, ONE))
	assert.True(t, Equivalent(f, g))
	assert.False(t, Equivalent(f, NewList(2)))
	assert.Panics(t, func() { Equivalent(NewList(2), NewList(3)) })
}

func TestSatcount(t *testing.T) {
	// x0*x1' + x2 is satisfied by 101, 100, 001, 011, 111
	f := NewListOf(CubeOf(POS, NEG, ONE), CubeOf(ONE, ONE, POS))
	assert.Equal(t, 0, f.Satcount().Cmp(big.NewInt(5)))

	assert.Equal(t, 0, NewList(3).Satcount().Sign())
	assert.Equal(t, 0, NewListOf(NewCube(3)).Satcount().Cmp(big.NewInt(8)))
}
