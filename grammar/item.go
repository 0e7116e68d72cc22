package grammar

import (
	"encoding/hex"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// itemCore identifies an LR item without its lookaheads. Item equality
// compares cores only; lookaheads are associated data merged set-wise.
type itemCore struct {
	prod productionID
	dot  int
}

// lrItem is an LR(1) item in the set-valued lookahead shape: one core with
// the whole set of lookahead terminals attached. This makes the LALR merge a
// plain union.
type lrItem struct {
	prod       *Production
	dot        int
	lookaheads map[Symbol]struct{}
}

func (i *lrItem) core() itemCore {
	return itemCore{
		prod: i.prod.id(),
		dot:  i.dot,
	}
}

// dottedSymbol returns the symbol immediately after the dot. ok is false when
// the dot is at the end of the production.
func (i *lrItem) dottedSymbol() (Symbol, bool) {
	if i.dot < len(i.prod.Right) {
		return i.prod.Right[i.dot], true
	}
	return Symbol{}, false
}

func (i *lrItem) reducible() bool {
	return i.dot == len(i.prod.Right)
}

func (i *lrItem) addLookaheads(syms map[Symbol]struct{}) bool {
	changed := false
	for sym := range syms {
		if _, ok := i.lookaheads[sym]; ok {
			continue
		}
		i.lookaheads[sym] = struct{}{}
		changed = true
	}
	return changed
}

func (i *lrItem) sortedLookaheads() []Symbol {
	syms := make([]Symbol, 0, len(i.lookaheads))
	for sym := range i.lookaheads {
		syms = append(syms, sym)
	}
	sortSymbols(syms)
	return syms
}

func (i *lrItem) String() string {
	var b strings.Builder
	b.WriteString(i.prod.Left.Name)
	b.WriteString(" →")
	for n, sym := range i.prod.Right {
		if n == i.dot {
			b.WriteString(" ・")
		}
		b.WriteString(" " + sym.Name)
	}
	if i.reducible() {
		b.WriteString(" ・")
	}
	b.WriteString(", {")
	for n, sym := range i.sortedLookaheads() {
		if n > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name)
	}
	b.WriteString("}")
	return b.String()
}

// itemSet is an item set keyed by core; each core carries a lookahead set.
type itemSet struct {
	items map[itemCore]*lrItem
}

func newItemSet() *itemSet {
	return &itemSet{
		items: map[itemCore]*lrItem{},
	}
}

// add merges the lookaheads into the item with the given core, creating the
// item first when the core is new. changed is true when anything was added.
func (s *itemSet) add(prod *Production, dot int, lookaheads map[Symbol]struct{}) (*lrItem, bool) {
	core := itemCore{prod: prod.id(), dot: dot}
	item, ok := s.items[core]
	if !ok {
		item = &lrItem{
			prod:       prod,
			dot:        dot,
			lookaheads: map[Symbol]struct{}{},
		}
		s.items[core] = item
		item.addLookaheads(lookaheads)
		return item, true
	}
	return item, item.addLookaheads(lookaheads)
}

func (s *itemSet) size() int {
	return len(s.items)
}

// sortedItems returns the items in a deterministic order so that table
// filling and state numbering never depend on map iteration.
func (s *itemSet) sortedItems() []*lrItem {
	items := make([]*lrItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b *lrItem) int {
		if c := strings.Compare(a.prod.id().String(), b.prod.id().String()); c != 0 {
			return c
		}
		return a.dot - b.dot
	})
	return items
}

// dottedSymbols returns the distinct symbols appearing immediately after a
// dot, sorted.
func (s *itemSet) dottedSymbols() []Symbol {
	seen := map[Symbol]struct{}{}
	var syms []Symbol
	for _, item := range s.items {
		sym, ok := item.dottedSymbol()
		if !ok {
			continue
		}
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		syms = append(syms, sym)
	}
	sortSymbols(syms)
	return syms
}

type itemFingerprint struct {
	Prod       string
	Dot        int
	Lookaheads []string
}

type itemSetFingerprint struct {
	Items []itemFingerprint
}

// signature gives the item set a canonical hash. With lookaheads it is the
// identity used to intern states of the canonical LR(1) collection; without
// them it is the core signature the LALR merge groups by.
func (s *itemSet) signature(withLookaheads bool) string {
	fp := itemSetFingerprint{
		Items: make([]itemFingerprint, 0, len(s.items)),
	}
	for _, item := range s.sortedItems() {
		ifp := itemFingerprint{
			Prod: item.prod.id().String(),
			Dot:  item.dot,
		}
		if withLookaheads {
			for _, sym := range item.sortedLookaheads() {
				ifp.Lookaheads = append(ifp.Lookaheads, sym.Name)
			}
		}
		fp.Items = append(fp.Items, ifp)
	}
	return hex.EncodeToString(structhash.Sha1(fp, 1))
}
