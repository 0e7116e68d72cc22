package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mikan9/konoha/grammar"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <grammar file>",
		Short:   "Print the symbols, productions, and ACTION/GOTO table of a grammar",
		Example: `  konoha describe calc.konoha`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cgram, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}
	g := cgram.Grammar
	ptab := cgram.Table

	fmt.Fprintf(os.Stdout, "grammar %v\n\nproductions:\n", cgram.Name)
	for i, prod := range g.Productions {
		fmt.Fprintf(os.Stdout, "  %2d: %v\n", i, prod)
	}

	prodNums := map[*grammar.Production]int{}
	for i, prod := range g.Productions {
		prodNums[prod] = i
	}

	terminals := append([]grammar.Symbol{}, g.Terminals...)
	terminals = append(terminals, grammar.SymbolEOF)

	header := []string{"STATE"}
	for _, sym := range terminals {
		header = append(header, sym.Name)
	}
	for _, sym := range g.NonTerminals {
		header = append(header, sym.Name)
	}

	fmt.Fprintln(os.Stdout)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for state := 0; state < ptab.StateCount(); state++ {
		row := []string{strconv.Itoa(state)}
		for _, sym := range terminals {
			row = append(row, actionCell(ptab, prodNums, state, sym))
		}
		for _, sym := range g.NonTerminals {
			if next, ok := ptab.GoTo(state, sym); ok {
				row = append(row, strconv.Itoa(next))
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}
	table.Render()

	conflicts := ptab.Conflicts()
	if len(conflicts) > 0 {
		fmt.Fprintf(os.Stdout, "\n%v conflicts:\n", len(conflicts))
		for _, c := range conflicts {
			fmt.Fprintf(os.Stdout, "  %v\n", c.Description())
		}
	}

	return nil
}

func actionCell(ptab *grammar.ParsingTable, prodNums map[*grammar.Production]int, state int, sym grammar.Symbol) string {
	act, ok := ptab.Action(state, sym)
	if !ok {
		return ""
	}
	switch act.Type {
	case grammar.ActionTypeShift:
		return fmt.Sprintf("s%v", act.NextState)
	case grammar.ActionTypeReduce:
		return fmt.Sprintf("r%v", prodNums[act.Prod])
	}
	return "acc"
}
