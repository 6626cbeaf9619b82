// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dalzilio/pcn"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Print the meta-analysis of the function in a PCN file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pcn.ReadListFile(args[0])
			if err != nil {
				return err
			}
			printAnalysis(args[0], f)
			return nil
		},
	}
}

func printAnalysis(filename string, f pcn.CubeList) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	title.Printf("%s: N = %d variable(s), M = %d term(s)\n", filename, f.N(), f.Len())
	label.Print("F   = ")
	fmt.Println(f.Expr())
	label.Print("PCN = ")
	fmt.Println(f.String())
	label.Print("SAT = ")
	fmt.Printf("%s of %d assignment(s)\n", f.Satcount(), 1<<uint(f.N()))

	if f.Len() == 0 {
		return
	}
	fmt.Println()
	fmt.Print(pcn.Analyze(f).Report())
}
