package grammar

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'konoha.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("konoha.grammar")
}

// Grammar is a context-free grammar. Callers construct one from explicit
// symbol sets and productions; NewGrammar validates the invariants.
type Grammar struct {
	Terminals    []Symbol
	NonTerminals []Symbol
	Productions  []*Production
	Start        Symbol

	prodSet *productionSet
}

// NewGrammar validates and indexes a grammar:
//
//   - the start symbol is one of the non-terminals,
//   - every symbol in a production is declared,
//   - no duplicate productions,
//   - user symbols never reuse the reserved names ε and $ or collide across
//     kinds.
func NewGrammar(terminals, nonTerminals []Symbol, prods []*Production, start Symbol) (*Grammar, error) {
	if len(prods) == 0 {
		return nil, semErrNoProduction
	}

	declared := map[Symbol]struct{}{}
	names := map[string]SymbolKind{}
	for _, syms := range [][]Symbol{terminals, nonTerminals} {
		for _, sym := range syms {
			if sym.Name == symbolNameEpsilon || sym.Name == symbolNameEOF {
				return nil, fmt.Errorf("%w: %v", semErrReservedName, sym.Name)
			}
			if kind, ok := names[sym.Name]; ok && kind != sym.Kind {
				return nil, fmt.Errorf("%w: %v", semErrDuplicateName, sym.Name)
			}
			names[sym.Name] = sym.Kind
			declared[sym] = struct{}{}
		}
	}

	if _, ok := declared[start]; !ok || !start.IsNonTerminal() {
		return nil, ErrMissingStartSymbol
	}

	prodSet := newProductionSet()
	for _, prod := range prods {
		if !prod.Left.IsNonTerminal() {
			return nil, fmt.Errorf("%w: %v", semErrLHSNotNonTerminal, prod.Left)
		}
		if _, ok := declared[prod.Left]; !ok {
			return nil, fmt.Errorf("%w: %v", semErrUndefinedSym, prod.Left)
		}
		for _, sym := range prod.Right {
			if _, ok := declared[sym]; !ok {
				return nil, fmt.Errorf("%w: %v", semErrUndefinedSym, sym)
			}
		}
		if !prodSet.append(prod) {
			return nil, fmt.Errorf("%w: %v", semErrDuplicateProduction, prod)
		}
	}

	return &Grammar{
		Terminals:    terminals,
		NonTerminals: nonTerminals,
		Productions:  prods,
		Start:        start,
		prodSet:      prodSet,
	}, nil
}

func (g *Grammar) productionsFor(lhs Symbol) []*Production {
	prods, _ := g.prodSet.findByLHS(lhs)
	return prods
}

// augmentedStart derives the fresh start symbol S' for table construction.
// Primes are appended until the name is unused, so user symbols never clash
// with it.
func (g *Grammar) augmentedStart() Symbol {
	name := g.Start.Name + "'"
	for {
		clash := false
		for _, sym := range g.NonTerminals {
			if sym.Name == name {
				clash = true
				break
			}
		}
		if !clash {
			for _, sym := range g.Terminals {
				if sym.Name == name {
					clash = true
					break
				}
			}
		}
		if !clash {
			return NewNonTerminal(name)
		}
		name += "'"
	}
}
