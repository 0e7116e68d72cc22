package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikan9/konoha/driver/lexer"
	"github.com/mikan9/konoha/driver/parser"
)

var parseFlags = struct {
	showTokens *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file> [input file]",
		Short:   "Tokenize and parse an input text (stdin when no input file is given)",
		Example: `  konoha parse calc.konoha input.txt`,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runParse,
	}
	parseFlags.showTokens = cmd.Flags().BoolP("tokens", "t", false, "print the token stream")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cgram, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}

	var src []byte
	if len(args) > 1 {
		src, err = os.ReadFile(args[1])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(string(src), cgram.LexRules)
	if err != nil {
		return err
	}
	if *parseFlags.showTokens {
		for _, tok := range tokens {
			fmt.Fprintf(os.Stdout, "%v %#v\n", tok.Kind, tok.Text)
		}
	}

	p := parser.NewParser(cgram.Table)
	if p.Parse(tokens) {
		fmt.Fprintln(os.Stdout, "accept")
		return nil
	}
	fmt.Fprintln(os.Stdout, "reject")
	return nil
}
