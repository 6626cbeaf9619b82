// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

// Command urc computes the complement of Boolean functions stored in PCN
// files. The run subcommand reproduces the historical batch driver: it reads
// part1.pcn ... partK.pcn from an input directory, complements each
// function, and writes the results under the same names in an output
// directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dalzilio/pcn"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "urc: cannot initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := newRootCommand(logger.Sugar())
	if err := root.Execute(); err != nil {
		logger.Sugar().Errorw("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(log *zap.SugaredLogger) *cobra.Command {
	root := &cobra.Command{
		Use:           "urc",
		Short:         "Complement Boolean functions in PCN files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(log))
	root.AddCommand(newComplementCommand(log))
	root.AddCommand(newTautologyCommand(log))
	root.AddCommand(newAnalyzeCommand())
	return root
}

func newRunCommand(log *zap.SugaredLogger) *cobra.Command {
	var inDir, outDir string
	var count int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Complement partN.pcn files from an input directory into an output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 1; i <= count; i++ {
				name := fmt.Sprintf("part%d.pcn", i)
				in := filepath.Join(inDir, name)
				out := filepath.Join(outDir, name)
				if err := complementFile(log, in, out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inDir, "in", "data/in", "directory holding the input PCN files")
	cmd.Flags().StringVar(&outDir, "out", "data/out", "directory receiving the complemented PCN files")
	cmd.Flags().IntVar(&count, "count", 5, "number of partN.pcn files to process")
	return cmd
}

func newComplementCommand(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "complement IN OUT",
		Short: "Complement the function in one PCN file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return complementFile(log, args[0], args[1])
		},
	}
}

func newTautologyCommand(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "tautology FILE",
		Short: "Decide whether the function in a PCN file is the constant one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pcn.ReadListFile(args[0])
			if err != nil {
				return err
			}
			taut := f.IsTautology()
			log.Infow("tautology check", "file", args[0], "n", f.N(), "terms", f.Len(), "tautology", taut)
			if taut {
				fmt.Fprintln(cmd.OutOrStdout(), "tautology")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "not a tautology")
			return nil
		},
	}
}

func complementFile(log *zap.SugaredLogger, in, out string) error {
	f, err := pcn.ReadListFile(in)
	if err != nil {
		return err
	}
	g := f.Complement()
	if err := pcn.WriteListFile(out, g); err != nil {
		return err
	}
	log.Infow("complemented function",
		"in", in, "out", out, "n", f.N(), "terms", f.Len(), "complement_terms", g.Len())
	return nil
}
