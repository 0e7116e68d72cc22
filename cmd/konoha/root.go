package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	verr "github.com/mikan9/konoha/error"
	"github.com/mikan9/konoha/grammar"
	"github.com/mikan9/konoha/spec"
)

var rootCmd = &cobra.Command{
	Use:   "konoha",
	Short: "Compile grammar descriptions into tokenizers and LALR(1) parsing tables",
	Long: `konoha compiles a grammar description into executable recognizers:
- token rules become minimized DFAs driven by a longest-match tokenizer, and
- productions become an LALR(1) parsing table driven by a shift/reduce parser.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

// readCompiledGrammar parses and compiles the grammar description at path,
// decorating spec errors with the source location.
func readCompiledGrammar(path string) (*grammar.CompiledGrammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
	}
	defer f.Close()

	root, err := spec.Parse(f)
	if err != nil {
		if synErr, ok := err.(*spec.SyntaxError); ok {
			return nil, &verr.SpecError{
				Cause:      synErr,
				FilePath:   path,
				SourceName: path,
				Row:        synErr.Row(),
			}
		}
		return nil, err
	}

	cgram, err := grammar.Compile(root)
	if err != nil {
		if specErr, ok := err.(*verr.SpecError); ok {
			specErr.FilePath = path
			specErr.SourceName = path
		}
		return nil, err
	}

	return cgram, nil
}
