package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "compile <grammar file>",
		Short:   "Compile a grammar and report table conflicts",
		Example: `  konoha compile calc.konoha`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cgram, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%v: %v token rules, %v productions, %v states\n",
		cgram.Name, len(cgram.LexRules), len(cgram.Grammar.Productions), cgram.Table.StateCount())

	conflicts := cgram.Table.Conflicts()
	if len(conflicts) == 0 {
		return nil
	}
	fmt.Fprintf(os.Stdout, "%v conflicts\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Fprintf(os.Stdout, "  %v\n", c.Description())
	}
	return nil
}
