package grammar

import (
	"fmt"
	"strings"

	"github.com/mikan9/konoha/driver/lexer"
	verr "github.com/mikan9/konoha/error"
	"github.com/mikan9/konoha/lexical/automata"
	"github.com/mikan9/konoha/lexical/regex"
	"github.com/mikan9/konoha/spec"
)

// CompiledGrammar bundles everything a driver needs: the validated grammar,
// its LALR(1) parsing table, and the token rules compiled to minimized DFAs
// in declaration order (which is their match priority).
type CompiledGrammar struct {
	Name     string
	Grammar  *Grammar
	Table    *ParsingTable
	LexRules []lexer.Rule
}

// Compile builds a CompiledGrammar from a parsed grammar description.
// Table conflicts are not errors; they stay inspectable on the table.
func Compile(root *spec.RootNode) (*CompiledGrammar, error) {
	b := &GrammarBuilder{
		AST: root,
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	rules, err := genLexRules(root)
	if err != nil {
		return nil, err
	}

	ptab, err := GenParsingTable(g)
	if err != nil {
		return nil, err
	}

	tracer().Infof("compiled grammar %v: %d states, %d conflicts", root.Name, ptab.StateCount(), len(ptab.Conflicts()))

	return &CompiledGrammar{
		Name:     root.Name,
		Grammar:  g,
		Table:    ptab,
		LexRules: rules,
	}, nil
}

func genLexRules(root *spec.RootNode) ([]lexer.Rule, error) {
	rules := make([]lexer.Rule, 0, len(root.TokenRules))
	for _, node := range root.TokenRules {
		var dfa *automata.DFA
		if node.Literal {
			dfa = regex.CompileLiteral(node.Pattern)
		} else {
			pattern, err := expandCharClasses(node.Pattern)
			if err != nil {
				return nil, &verr.SpecError{
					Cause: err,
					Row:   node.Row,
				}
			}
			dfa, err = regex.Compile(pattern)
			if err != nil {
				return nil, &verr.SpecError{
					Cause: err,
					Row:   node.Row,
				}
			}
		}
		rules = append(rules, lexer.Rule{
			Kind: node.Kind,
			DFA:  dfa,
		})
	}
	return rules, nil
}

// expandCharClasses rewrites `[a-z0-9_]` shorthand into the union form the
// core regex dialect understands. Classes are a description-format
// convenience; the core surface stays class-free.
func expandCharClasses(pattern string) (string, error) {
	var b strings.Builder
	chars := []rune(pattern)
	for i := 0; i < len(chars); i++ {
		if chars[i] != '[' {
			b.WriteRune(chars[i])
			continue
		}

		end := -1
		for j := i + 1; j < len(chars); j++ {
			if chars[j] == ']' {
				end = j
				break
			}
		}
		if end < 0 {
			return "", fmt.Errorf("unterminated character class in pattern %q", pattern)
		}

		members, err := classMembers(chars[i+1 : end])
		if err != nil {
			return "", fmt.Errorf("%w in pattern %q", err, pattern)
		}
		b.WriteString("(" + strings.Join(members, "|") + ")")
		i = end
	}
	return b.String(), nil
}

func classMembers(body []rune) ([]string, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty character class")
	}
	var members []string
	for i := 0; i < len(body); i++ {
		if i+2 < len(body) && body[i+1] == '-' {
			lo, hi := body[i], body[i+2]
			if lo > hi {
				return nil, fmt.Errorf("invalid character range %c-%c", lo, hi)
			}
			for c := lo; c <= hi; c++ {
				members = append(members, string(c))
			}
			i += 2
			continue
		}
		members = append(members, string(body[i]))
	}
	return members, nil
}
