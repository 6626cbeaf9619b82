// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

// IsTautology reports whether the function is the constant one, that is
// whether every assignment of the variables satisfies it. The decision is
// recursive: a sum holding an all-don't-care term is trivially a tautology;
// a zero sum or a single non-trivial term is not; otherwise F == 1 exactly
// when both Shannon cofactors with respect to the splitting variable are
// tautologies. Each cofactor sets one variable to don't care in every term,
// so the recursion terminates.
func (l CubeList) IsTautology() bool {
	for _, c := range l.cubes {
		if c.IsTautology() {
			return true
		}
	}
	if l.IsZero() {
		return false
	}
	if l.Len() == 1 {
		return false
	}
	i := int(Analyze(l).ChooseRecursionVariable())
	return l.PositiveCofactor(i).IsTautology() && l.NegativeCofactor(i).IsTautology()
}
