// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn

import (
	"fmt"
	"strings"
)

// A MetaVariable holds the statistics of one variable xi across the terms of
// an SOP: in how many terms it appears, and in which polarities. It is the
// raw material for classifying variables as unate or binate and for ranking
// candidate splitting variables.
type MetaVariable struct {
	idx      uint32
	countPos int
	countNeg int
}

// metaVariable collects the statistics of position idx across the Cubes of
// l.
func metaVariable(l CubeList, idx uint32) MetaVariable {
	m := MetaVariable{idx: idx}
	for _, c := range l.cubes {
		switch c[idx] {
		case POS:
			m.countPos++
		case NEG:
			m.countNeg++
		}
	}
	return m
}

// Index returns the index i of the variable xi described by m.
func (m MetaVariable) Index() uint32 {
	return m.idx
}

// HasPos reports whether the variable appears positively in at least one
// term.
func (m MetaVariable) HasPos() bool {
	return m.countPos > 0
}

// HasNeg reports whether the variable appears complemented in at least one
// term.
func (m MetaVariable) HasNeg() bool {
	return m.countNeg > 0
}

// CountPos returns the number of terms where the variable appears
// positively.
func (m MetaVariable) CountPos() int {
	return m.countPos
}

// CountNeg returns the number of terms where the variable appears
// complemented.
func (m MetaVariable) CountNeg() int {
	return m.countNeg
}

// CountTerms returns the number of terms that enumerate the variable in
// either polarity.
func (m MetaVariable) CountTerms() int {
	return m.countPos + m.countNeg
}

// Balance returns |T - C|, the absolute difference between the positive and
// negative appearance counts. A small balance means splitting on the
// variable yields cofactors of comparable size.
func (m MetaVariable) Balance() int {
	if m.countPos > m.countNeg {
		return m.countPos - m.countNeg
	}
	return m.countNeg - m.countPos
}

// IsUnate reports whether the function is unate in the variable: it appears
// in exactly one polarity. A variable that is everywhere don't care is
// neither unate nor binate.
func (m MetaVariable) IsUnate() bool {
	return m.HasPos() != m.HasNeg()
}

// IsBinate reports whether the function is binate in the variable: it
// appears in both polarities.
func (m MetaVariable) IsBinate() bool {
	return m.HasPos() && m.HasNeg()
}

// String returns a one-line description of the statistics of the variable.
func (m MetaVariable) String() string {
	kind := "don't care"
	if m.IsUnate() {
		kind = "unate"
	} else if m.IsBinate() {
		kind = "binate"
	}
	return fmt.Sprintf("x%d: is %s in function and appears in %d term(s). As pos: %d. As neg: %d. |T-C|=%d.",
		m.idx, kind, m.CountTerms(), m.countPos, m.countNeg, m.Balance())
}

// ************************************************************

// A MetaFunction holds the per-variable statistics of an SOP. It answers
// whether the function is unate and selects the variable to recurse on in
// the URP algorithms. Build one with Analyze.
type MetaFunction struct {
	n    int
	vars []MetaVariable
}

// Analyze computes the statistics of every variable of l.
func Analyze(l CubeList) MetaFunction {
	m := MetaFunction{n: l.arity, vars: make([]MetaVariable, l.arity)}
	for i := range m.vars {
		m.vars[i] = metaVariable(l, uint32(i))
	}
	return m
}

// IsUnate reports whether the function is unate as a whole, that is unate in
// every variable.
func (m MetaFunction) IsUnate() bool {
	for _, v := range m.vars {
		if !v.IsUnate() {
			return false
		}
	}
	return true
}

// Variables returns the statistics of each variable, indexed by variable
// number.
func (m MetaFunction) Variables() []MetaVariable {
	return append([]MetaVariable(nil), m.vars...)
}

// ChooseRecursionVariable selects the variable on which the URP algorithms
// split, applying five rules in order:
//
//	Rule 1: among the binate variables, keep those appearing in the most
//	        terms;
//	Rule 2: if tied, keep those with the smallest balance |T-C|;
//	Rule 3: if still tied, pick the lowest index;
//	Rule 4: with no binate variable, keep the unate variables appearing in
//	        the most terms;
//	Rule 5: if tied, pick the lowest index.
//
// The choice depends only on the multiset of Cubes of the function, so the
// result is stable under reordering of terms. The base cases of the
// recursive algorithms fire before selection is ever invoked on a function
// with no enumerated variable.
func (m MetaFunction) ChooseRecursionVariable() uint32 {
	if best, ok := m.pick(MetaVariable.IsBinate, true); ok {
		return best
	}
	best, _ := m.pick(MetaVariable.IsUnate, false)
	return best
}

// pick applies the term-count maximisation, optional balance minimisation,
// and lowest-index tie-break to the variables accepted by keep.
func (m MetaFunction) pick(keep func(MetaVariable) bool, byBalance bool) (uint32, bool) {
	best := MetaVariable{}
	found := false
	for _, v := range m.vars {
		if !keep(v) {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		if v.CountTerms() != best.CountTerms() {
			if v.CountTerms() > best.CountTerms() {
				best = v
			}
			continue
		}
		if byBalance && v.Balance() != best.Balance() {
			if v.Balance() < best.Balance() {
				best = v
			}
			continue
		}
		// equal on every rule: the scan order keeps the lowest index
	}
	return best.idx, found
}

// Report returns a multi-line walkthrough of the splitting rules applied to
// the function, listing the candidates retained at each step. It is meant
// for inspection and debugging of the recursion heuristic.
func (m MetaFunction) Report() string {
	var sb strings.Builder

	binate := m.filter(MetaVariable.IsBinate)
	unate := m.filter(MetaVariable.IsUnate)

	fmt.Fprintf(&sb, "%s function in %d variable(s).\n",
		map[bool]string{true: "Unate", false: "Binate"}[m.IsUnate()], m.n)
	fmt.Fprintf(&sb, "Rule-based choice of recursion variable: x%d.\n\n", m.ChooseRecursionVariable())

	fmt.Fprintf(&sb, "RULE 1: Choose among BINATE variable(s): %s.\n", varnames(binate))
	mostTerms := maxTerms(binate)
	binate = filterVars(binate, func(v MetaVariable) bool { return v.CountTerms() == mostTerms })
	fmt.Fprintf(&sb, "Keep those with max(#terms)=%d: %s.\n", mostTerms, varnames(binate))

	minBal := minBalance(binate)
	binate = filterVars(binate, func(v MetaVariable) bool { return v.Balance() == minBal })
	fmt.Fprintf(&sb, "RULE 2: If tied, keep the best balanced, min|T-C|=%d: %s.\n", minBal, varnames(binate))
	fmt.Fprintf(&sb, "RULE 3: If tied, take the lowest index.\n\n")

	fmt.Fprintf(&sb, "RULE 4: With no binate variables, choose among UNATE variable(s): %s.\n", varnames(unate))
	mostTerms = maxTerms(unate)
	unate = filterVars(unate, func(v MetaVariable) bool { return v.CountTerms() == mostTerms })
	fmt.Fprintf(&sb, "Keep those with max(#terms)=%d: %s.\n", mostTerms, varnames(unate))
	fmt.Fprintf(&sb, "RULE 5: If tied, take the lowest index.\n\n")

	sb.WriteString("Variable enumeration:\n")
	for _, v := range m.vars {
		sb.WriteString(v.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m MetaFunction) filter(keep func(MetaVariable) bool) []MetaVariable {
	return filterVars(m.vars, keep)
}

func filterVars(vars []MetaVariable, keep func(MetaVariable) bool) []MetaVariable {
	res := []MetaVariable{}
	for _, v := range vars {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

func maxTerms(vars []MetaVariable) int {
	res := 0
	for _, v := range vars {
		if v.CountTerms() > res {
			res = v.CountTerms()
		}
	}
	return res
}

func minBalance(vars []MetaVariable) int {
	res := 0
	for i, v := range vars {
		if i == 0 || v.Balance() < res {
			res = v.Balance()
		}
	}
	return res
}

func varnames(vars []MetaVariable) string {
	if len(vars) == 0 {
		return "none"
	}
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = fmt.Sprintf("x%d", v.idx)
	}
	return strings.Join(names, " ")
}
