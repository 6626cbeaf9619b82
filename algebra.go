// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import "fmt"

// AndCube returns the conjunction of a Literal with a product term: a copy
// of c where the Factor at the Literal's position has been And'ed with the
// Literal's polarity. All other positions are unchanged. The result is zero
// when the polarities clash (x * x' = 0); callers decide whether to drop it.
// AndCube panics if the Literal's index is outside the Cube.
func AndCube(lit Literal, c Cube) Cube {
	if int(lit.Index) >= len(c) {
		panic(fmt.Sprintf("pcn: literal index %d out of range in cube of length %d", lit.Index, len(c)))
	}
	d := c.Clone()
	d[lit.Index] = lit.Pol.And(c[lit.Index])
	return d
}

// AndList returns the conjunction of a Literal with an SOP, distributing the
// Literal over every term of the sum. Terms that become zero are dropped;
// the arity of the result equals the arity of l.
func AndList(lit Literal, l CubeList) CubeList {
	product := NewList(l.arity)
	for _, c := range l.cubes {
		product.Append(AndCube(lit, c))
	}
	return product
}

// OrLists returns the disjunction of two SOPs of the same arity: the union
// of their terms with element-wise-equality duplicates suppressed. No
// further simplification is performed, so the result may be non-minimal and
// may be a tautology; callers test with IsTautology when that matters.
// OrLists panics if the two lists disagree on their arity.
func OrLists(l1, l2 CubeList) CubeList {
	if l1.arity != l2.arity {
		panic(fmt.Sprintf("pcn: OrLists of arity %d with arity %d", l1.arity, l2.arity))
	}
	sum := l1.Clone()
	seen := make(map[string]struct{}, len(l1.cubes)+len(l2.cubes))
	for _, c := range l1.cubes {
		seen[c.key()] = struct{}{}
	}
	for _, c := range l2.cubes {
		k := c.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		sum.Append(c.Clone())
	}
	return sum
}

// Complement returns the negation of a single product term as a sum, by De
// Morgan's law: not(x0*x1*x2) = x0' + x1' + x2'. Every enumerated position
// of c contributes one single-literal Cube holding the complemented Factor;
// don't-care positions contribute nothing. The result has one term per
// enumerated variable of c.
func (c Cube) Complement() CubeList {
	sum := NewList(len(c))
	for i, f := range c {
		if f != POS && f != NEG {
			continue
		}
		term := NewCube(len(c))
		term[i] = f.Not()
		sum.Append(term)
	}
	return sum
}
