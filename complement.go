// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

// Complement returns an SOP for the negation of the function, of the same
// arity. Three base cases resolve immediately: the zero function complements
// to the single all-don't-care term; a tautology complements to the empty
// sum; and a single product term complements by De Morgan's law. Any other
// function is handled by the Shannon expansion of the negation,
//
//	not F  =  xi * not(F_xi)  +  xi' * not(F_xi')
//
// where xi is the splitting variable chosen by ChooseRecursionVariable. The
// recursion progresses because each cofactor turns xi into a don't care in
// every term. The result is correct but not minimised: it may contain
// redundant terms.
func (l CubeList) Complement() CubeList {
	if l.Len() == 0 {
		return NewListOf(NewCube(l.arity))
	}
	if l.IsTautology() {
		return NewList(l.arity)
	}
	if l.Len() == 1 {
		return l.cubes[0].Complement()
	}

	i := Analyze(l).ChooseRecursionVariable()
	notPos := l.PositiveCofactor(int(i)).Complement()
	notNeg := l.NegativeCofactor(int(i)).Complement()

	lhs := AndList(Literal{Index: i, Pol: POS}, notPos)
	rhs := AndList(Literal{Index: i, Pol: NEG}, notNeg)
	return OrLists(lhs, rhs)
}
