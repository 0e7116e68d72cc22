package grammar

import (
	"fmt"

	verr "github.com/mikan9/konoha/error"
	"github.com/mikan9/konoha/spec"
)

// GrammarBuilder builds a Grammar from a parsed grammar description. The
// terminals are the token-rule kinds, the non-terminals the production
// left-hand sides, and the start symbol the first production's LHS.
type GrammarBuilder struct {
	AST *spec.RootNode
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	root := b.AST
	if len(root.Productions) == 0 {
		return nil, semErrNoProduction
	}

	var terminals []Symbol
	termNames := map[string]struct{}{}
	for _, rule := range root.TokenRules {
		if _, ok := termNames[rule.Kind]; ok {
			return nil, &verr.SpecError{
				Cause: fmt.Errorf("duplicate token rule: %v", rule.Kind),
				Row:   rule.Row,
			}
		}
		termNames[rule.Kind] = struct{}{}
		terminals = append(terminals, NewTerminal(rule.Kind))
	}

	var nonTerminals []Symbol
	nonTermNames := map[string]struct{}{}
	for _, prod := range root.Productions {
		if _, ok := termNames[prod.LHS]; ok {
			return nil, &verr.SpecError{
				Cause: fmt.Errorf("%w: %v", semErrDuplicateName, prod.LHS),
				Row:   prod.Row,
			}
		}
		if _, ok := nonTermNames[prod.LHS]; ok {
			continue
		}
		nonTermNames[prod.LHS] = struct{}{}
		nonTerminals = append(nonTerminals, NewNonTerminal(prod.LHS))
	}

	var prods []*Production
	for _, prodNode := range root.Productions {
		lhs := NewNonTerminal(prodNode.LHS)
		for _, alt := range prodNode.Alternatives {
			rhs := make([]Symbol, 0, len(alt.Symbols))
			for _, name := range alt.Symbols {
				switch {
				case name == symbolNameEpsilon, name == symbolNameEOF:
					return nil, &verr.SpecError{
						Cause: fmt.Errorf("%w: %v", semErrReservedName, name),
						Row:   alt.Row,
					}
				case hasName(termNames, name):
					rhs = append(rhs, NewTerminal(name))
				case hasName(nonTermNames, name):
					rhs = append(rhs, NewNonTerminal(name))
				default:
					return nil, &verr.SpecError{
						Cause: fmt.Errorf("%w: %v", semErrUndefinedSym, name),
						Row:   alt.Row,
					}
				}
			}
			prods = append(prods, &Production{
				Left:  lhs,
				Right: rhs,
			})
		}
	}

	start := NewNonTerminal(root.Productions[0].LHS)

	return NewGrammar(terminals, nonTerminals, prods, start)
}

func hasName(names map[string]struct{}, name string) bool {
	_, ok := names[name]
	return ok
}
