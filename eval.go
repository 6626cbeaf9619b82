// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import (
	"fmt"
	"math/big"
)

// Eval returns the value of the product term under an assignment of the
// variables, where assignment[i] is the value given to xi. A POS position
// requires its variable to be true, a NEG position requires it to be false,
// a don't care accepts both, and a ZERO position falsifies the term. It
// panics if the assignment does not cover exactly the variables of the
// Cube.
func (c Cube) Eval(assignment []bool) bool {
	if len(assignment) != len(c) {
		panic(fmt.Sprintf("pcn: assignment of length %d for cube of length %d", len(assignment), len(c)))
	}
	for i, f := range c {
		switch f {
		case ZERO:
			return false
		case POS:
			if !assignment[i] {
				return false
			}
		case NEG:
			if assignment[i] {
				return false
			}
		}
	}
	return true
}

// Eval returns the value of the function under an assignment of the
// variables: true when at least one of its terms is satisfied.
func (l CubeList) Eval(assignment []bool) bool {
	for _, c := range l.cubes {
		if c.Eval(assignment) {
			return true
		}
	}
	return false
}

// Equivalent reports whether two SOPs of the same arity denote the same
// Boolean function, by evaluating both under all 2^N assignments. It is
// meant for testing and for small N; the cost is exponential in the arity.
// It panics if the two lists disagree on their arity.
func Equivalent(l1, l2 CubeList) bool {
	if l1.arity != l2.arity {
		panic(fmt.Sprintf("pcn: Equivalent of arity %d with arity %d", l1.arity, l2.arity))
	}
	assignment := make([]bool, l1.arity)
	for a := 0; a < 1<<uint(l1.arity); a++ {
		for i := range assignment {
			assignment[i] = a&(1<<uint(i)) != 0
		}
		if l1.Eval(assignment) != l2.Eval(assignment) {
			return false
		}
	}
	return true
}

// Satcount returns the number of variable assignments that satisfy the
// function. Like Equivalent it enumerates all 2^N assignments, so it is
// only practical for small arities; the result uses arbitrary-precision
// arithmetic so that the count itself never overflows.
func (l CubeList) Satcount() *big.Int {
	count := new(big.Int)
	assignment := make([]bool, l.arity)
	for a := 0; a < 1<<uint(l.arity); a++ {
		for i := range assignment {
			assignment[i] = a&(1<<uint(i)) != 0
		}
		if l.Eval(assignment) {
			count.Add(count, big.NewInt(1))
		}
	}
	return count
}
