package grammar

// lrState is one state of an LR automaton: an item set with a state number.
// Numbers equal the state's index in the automaton's state list.
type lrState struct {
	num   int
	items *itemSet
}

// lr1Automaton is the canonical collection of LR(1) item sets for an
// augmented grammar, plus the transition relation on state numbers.
type lr1Automaton struct {
	augStart    Symbol
	augProd     *Production
	states      []*lrState
	transitions map[int]map[Symbol]int
}

// genLR1Automaton builds the canonical LR(1) collection by BFS from
// CLOSURE({[S' → ・S, $]}). States are interned by their full item-set
// signature (cores and lookaheads), and state numbers follow discovery
// order, which is deterministic given the grammar's production order.
func genLR1Automaton(g *Grammar, fst *firstSet) (*lr1Automaton, error) {
	augStart := g.augmentedStart()
	augProd := &Production{
		Left:  augStart,
		Right: []Symbol{g.Start},
	}

	seed := newItemSet()
	seed.add(augProd, 0, map[Symbol]struct{}{SymbolEOF: {}})
	initial, err := genClosure(seed, g, fst)
	if err != nil {
		return nil, err
	}

	automaton := &lr1Automaton{
		augStart:    augStart,
		augProd:     augProd,
		states:      []*lrState{{num: 0, items: initial}},
		transitions: map[int]map[Symbol]int{},
	}
	knownStates := map[string]int{
		initial.signature(true): 0,
	}
	uncheckedStates := []*lrState{automaton.states[0]}

	for len(uncheckedStates) > 0 {
		var nextUncheckedStates []*lrState
		for _, state := range uncheckedStates {
			for _, sym := range state.items.dottedSymbols() {
				j, err := genGoTo(state.items, sym, g, fst)
				if err != nil {
					return nil, err
				}
				if j.size() == 0 {
					continue
				}
				sig := j.signature(true)
				num, ok := knownStates[sig]
				if !ok {
					num = len(automaton.states)
					next := &lrState{num: num, items: j}
					knownStates[sig] = num
					automaton.states = append(automaton.states, next)
					nextUncheckedStates = append(nextUncheckedStates, next)
				}
				if automaton.transitions[state.num] == nil {
					automaton.transitions[state.num] = map[Symbol]int{}
				}
				automaton.transitions[state.num][sym] = num
			}
		}
		uncheckedStates = nextUncheckedStates
	}

	tracer().Debugf("LR(1) canonical collection: %d states", len(automaton.states))

	return automaton, nil
}

// genClosure computes CLOSURE(seed): for every item [A → α・Bβ, a] and every
// production B → γ, the item [B → ・γ, b] joins the set for each terminal
// b ∈ FIRST(βa). Items whose lookahead set grows are re-examined, so the
// result is the least fixed point.
func genClosure(seed *itemSet, g *Grammar, fst *firstSet) (*itemSet, error) {
	closure := newItemSet()
	var uncheckedItems []*lrItem
	for _, item := range seed.sortedItems() {
		it, _ := closure.add(item.prod, item.dot, item.lookaheads)
		uncheckedItems = append(uncheckedItems, it)
	}

	for len(uncheckedItems) > 0 {
		var nextUncheckedItems []*lrItem
		for _, item := range uncheckedItems {
			dotted, ok := item.dottedSymbol()
			if !ok || !dotted.IsNonTerminal() {
				continue
			}

			rest, err := fst.ofSuffix(item.prod, item.dot+1)
			if err != nil {
				return nil, err
			}
			lookaheads := map[Symbol]struct{}{}
			for sym := range rest.symbols {
				lookaheads[sym] = struct{}{}
			}
			if rest.empty {
				for sym := range item.lookaheads {
					lookaheads[sym] = struct{}{}
				}
			}

			for _, prod := range g.productionsFor(dotted) {
				it, changed := closure.add(prod, 0, lookaheads)
				if changed {
					nextUncheckedItems = append(nextUncheckedItems, it)
				}
			}
		}
		uncheckedItems = nextUncheckedItems
	}

	return closure, nil
}

// genGoTo computes GOTO(items, sym): the closure of all items of the set with
// the dot advanced over sym.
func genGoTo(items *itemSet, sym Symbol, g *Grammar, fst *firstSet) (*itemSet, error) {
	moved := newItemSet()
	for _, item := range items.sortedItems() {
		dotted, ok := item.dottedSymbol()
		if !ok || dotted != sym {
			continue
		}
		moved.add(item.prod, item.dot+1, item.lookaheads)
	}
	return genClosure(moved, g, fst)
}
