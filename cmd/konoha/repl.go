package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mikan9/konoha/driver/lexer"
	"github.com/mikan9/konoha/driver/parser"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar file>",
		Short:   "Interactively parse one input line at a time",
		Example: `  konoha repl calc.konoha`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cgram, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}
	if n := len(cgram.Table.Conflicts()); n > 0 {
		fmt.Fprintf(os.Stderr, "warning: the parsing table has %v conflicts\n", n)
	}

	rl, err := readline.New(cgram.Name + "> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	p := parser.NewParser(cgram.Table)
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}

		tokens, err := lexer.Tokenize(line, cgram.LexRules)
		if err != nil {
			fmt.Fprintf(os.Stdout, "error: %v\n", err)
			continue
		}
		if p.Parse(tokens) {
			fmt.Fprintln(os.Stdout, "accept")
		} else {
			fmt.Fprintln(os.Stdout, "reject")
		}
	}
}
