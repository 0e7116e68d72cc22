package grammar

import "fmt"

// Analyzer computes and caches the FIRST and FOLLOW sets of a grammar. The
// LR(1) closure reads the internal entries; the exported accessors surface
// the textbook sets with ε and $ as the distinguished symbols.
type Analyzer struct {
	g   *Grammar
	fst *firstSet
	flw *followSet
}

func NewAnalyzer(g *Grammar) (*Analyzer, error) {
	fst, err := genFirstSet(g)
	if err != nil {
		return nil, err
	}
	flw, err := genFollowSet(g, fst)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		g:   g,
		fst: fst,
		flw: flw,
	}, nil
}

// First returns FIRST(sym) in sorted order. For a terminal that is {sym}
// itself; for a nullable non-terminal the set includes SymbolEpsilon.
func (a *Analyzer) First(sym Symbol) ([]Symbol, error) {
	if sym.IsTerminal() {
		return []Symbol{sym}, nil
	}
	e := a.fst.entryOf(sym)
	if e == nil {
		return nil, fmt.Errorf("an entry of FIRST was not found; symbol: %v", sym)
	}
	syms := make([]Symbol, 0, len(e.symbols)+1)
	for s := range e.symbols {
		syms = append(syms, s)
	}
	if e.empty {
		syms = append(syms, SymbolEpsilon)
	}
	sortSymbols(syms)
	return syms, nil
}

// Follow returns FOLLOW(sym) in sorted order, including SymbolEOF where the
// end of input may follow sym.
func (a *Analyzer) Follow(sym Symbol) ([]Symbol, error) {
	e, err := a.flw.find(sym)
	if err != nil {
		return nil, err
	}
	syms := make([]Symbol, 0, len(e.symbols)+1)
	for s := range e.symbols {
		syms = append(syms, s)
	}
	if e.eof {
		syms = append(syms, SymbolEOF)
	}
	sortSymbols(syms)
	return syms, nil
}
