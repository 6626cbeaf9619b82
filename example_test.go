// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package pcn_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/dalzilio/pcn"
)

// This example shows the basic usage of the package: build an SOP function
// in three variables, compute its complement, and check the result against
// the tautology test.
func Example_basic() {
	// F = x0*x1 + x2
	f := pcn.NewListOf(
		pcn.CubeOf(pcn.POS, pcn.POS, pcn.ONE),
		pcn.CubeOf(pcn.ONE, pcn.ONE, pcn.POS),
	)
	g := f.Complement()
	fmt.Printf("F     = %s\n", f.Expr())
	fmt.Printf("not F = %s\n", g.Expr())
	// F + not F covers every assignment
	fmt.Printf("F + not F is a tautology: %v\n", pcn.OrLists(f, g).IsTautology())
	// Output:
	// F     = x0*x1 + x2
	// not F = x0*x1'*x2' + x0'*x2'
	// F + not F is a tautology: true
}

// Functions can be exchanged in the textual PCN format, where each cube
// lists its enumerated variables by signed 1-based index.
func Example_files() {
	input := `3
2
2 1 -2
1 3
`
	f, err := pcn.ReadList(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}
	pcn.Fprint(os.Stdout, f.Complement())
	// Output:
	// 3
	// 2
	// 3 1 2 -3
	// 2 -1 -3
}
