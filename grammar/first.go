package grammar

import "fmt"

// firstEntry is the FIRST set of one non-terminal: the terminals a
// derivation can begin with, plus a flag marking nullability.
type firstEntry struct {
	symbols map[Symbol]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{
		symbols: map[Symbol]struct{}{},
	}
}

func (e *firstEntry) add(sym Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if e.empty {
		return false
	}
	e.empty = true
	return true
}

// firstSet holds one entry per non-terminal of the grammar.
type firstSet struct {
	set map[Symbol]*firstEntry
}

// genFirstSet computes FIRST for every non-terminal of g. Each production
// contributes the FIRST of its whole right-hand side to its LHS entry, so
// the per-production transfer is just ofSuffix at head 0; the sets only
// grow and are bounded by the terminal count, which makes the fixpoint
// terminate.
func genFirstSet(g *Grammar) (*firstSet, error) {
	fst := &firstSet{
		set: map[Symbol]*firstEntry{},
	}
	for _, prod := range g.Productions {
		if fst.set[prod.Left] == nil {
			fst.set[prod.Left] = newFirstEntry()
		}
	}

	for changed := true; changed; {
		changed = false
		for _, prod := range g.Productions {
			entry := fst.set[prod.Left]
			rhs, err := fst.ofSuffix(prod, 0)
			if err != nil {
				return nil, err
			}
			for sym := range rhs.symbols {
				if entry.add(sym) {
					changed = true
				}
			}
			if rhs.empty && entry.addEmpty() {
				changed = true
			}
		}
	}

	return fst, nil
}

// ofSuffix computes FIRST of the suffix prod.Right[head:] against the
// current entries. Symbols accumulate until the first one that cannot
// vanish; empty is set only when the whole suffix can.
func (fst *firstSet) ofSuffix(prod *Production, head int) (*firstEntry, error) {
	entry := newFirstEntry()
	for _, sym := range prod.Right[head:] {
		if sym.IsTerminal() {
			entry.add(sym)
			return entry, nil
		}
		sub, ok := fst.set[sym]
		if !ok {
			return nil, fmt.Errorf("an entry of FIRST was not found; symbol: %v", sym)
		}
		for s := range sub.symbols {
			entry.add(s)
		}
		if !sub.empty {
			return entry, nil
		}
	}
	entry.addEmpty()
	return entry, nil
}

func (fst *firstSet) entryOf(sym Symbol) *firstEntry {
	return fst.set[sym]
}
