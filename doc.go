// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

/*
Package pcn implements Boolean functions in Sum-of-Products (SOP) form using
Positional Cube Notation (PCN), together with the family of algorithms known
as the Unate Recursive Paradigm (URP): Shannon cofactors, a tautology
decision procedure, and the recursive computation of the complement of a
function.

# Basics

A function F(x0, ..., xN-1) in SOP form is a disjunction of product terms. In
PCN each product term is a Cube: an N-tuple of two-bit Factors, where the
Factor at position i encodes how variable xi enters the term. The code 01
(POS) means xi appears positively; 10 (NEG) means the complement xi' appears;
11 (ONE) means the term does not constrain xi; and 00 (ZERO) nullifies the
whole term. A CubeList collects Cubes of a common arity N and stands for
their sum. For example, F = x0*x1' + x2 in three variables is the CubeList

	< [ 01 10 11 ], [ 11 11 01 ] >

An empty CubeList denotes the constant-zero function and a CubeList that
contains a Cube of all don't-cares denotes the constant-one function.

# Algorithms

Conjunction, disjunction and negation of Factors are bitwise operations on
the two-bit codes. On top of these the package provides the conjunction of a
Literal (a variable in a fixed polarity) with a Cube or a CubeList, the
deduplicating union of two CubeLists, and the complement of a single Cube by
De Morgan's law.

The recursive operations all progress the same way: pick a splitting
variable (the most binate variable, with deterministic tie-breaking; see
Analyze and MetaFunction), compute the positive and negative Shannon
cofactors with respect to it, solve the two strictly smaller subproblems,
and recombine. Complement implements

	not F  =  xi * not(F_xi)  +  xi' * not(F_xi')

and IsTautology decides F == 1 by checking both cofactors. Results are
correct but not minimised: the complement of a function may contain
redundant terms.

The algorithms on Cubes and CubeLists (the algebra operations, the
cofactors, IsTautology and Complement) are pure: they accept values, return
freshly allocated results that never alias their inputs, and perform no I/O.
Calling them from multiple goroutines is safe without synchronisation.

# Files

ReadList and Fprint exchange functions in the textual PCN file format: a
header with the arity N and the number of terms M, followed by one line per
term listing the count of enumerated variables and their signed 1-based
indices. See the documentation of ReadList for details.
*/
package pcn
