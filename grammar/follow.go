package grammar

import "fmt"

type followEntry struct {
	symbols map[Symbol]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{
		symbols: map[Symbol]struct{}{},
	}
}

func (e *followEntry) add(sym Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if !e.eof {
		e.eof = true
		return true
	}
	return false
}

// merge adds fst's symbols (sans ε) and flw's symbols and EOF flag.
func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false
	if fst != nil {
		for sym := range fst.symbols {
			if e.add(sym) {
				changed = true
			}
		}
	}
	if flw != nil {
		for sym := range flw.symbols {
			if e.add(sym) {
				changed = true
			}
		}
		if flw.eof {
			if e.addEOF() {
				changed = true
			}
		}
	}
	return changed
}

type followSet struct {
	set map[Symbol]*followEntry
}

func newFollowSet(g *Grammar) *followSet {
	flw := &followSet{
		set: map[Symbol]*followEntry{},
	}
	for _, sym := range g.NonTerminals {
		flw.set[sym] = newFollowEntry()
	}
	return flw
}

func (flw *followSet) find(sym Symbol) (*followEntry, error) {
	e, ok := flw.set[sym]
	if !ok {
		return nil, fmt.Errorf("an entry of FOLLOW was not found; symbol: %v", sym)
	}
	return e, nil
}

// genFollowSet computes FOLLOW by fixed point: FOLLOW(start) seeds with $;
// for every occurrence of a non-terminal X in a right-hand side, FIRST of the
// rest of that side flows in, and FOLLOW of the producing LHS flows in when
// the rest is nullable.
func genFollowSet(g *Grammar, fst *firstSet) (*followSet, error) {
	flw := newFollowSet(g)

	startEntry, err := flw.find(g.Start)
	if err != nil {
		return nil, err
	}
	startEntry.addEOF()

	for {
		more := false
		for _, prod := range g.Productions {
			for i, sym := range prod.Right {
				if !sym.IsNonTerminal() {
					continue
				}
				e, err := flw.find(sym)
				if err != nil {
					return nil, err
				}
				rest, err := fst.ofSuffix(prod, i+1)
				if err != nil {
					return nil, err
				}
				if e.merge(rest, nil) {
					more = true
				}
				if rest.empty {
					lhsEntry, err := flw.find(prod.Left)
					if err != nil {
						return nil, err
					}
					if e.merge(nil, lhsEntry) {
						more = true
					}
				}
			}
		}
		if !more {
			break
		}
	}

	return flw, nil
}
