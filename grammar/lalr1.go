package grammar

// lalr1Automaton is the LALR(1) automaton obtained by merging LR(1) states
// that share a core. Its state list is separate from the LR(1) one; numbers
// follow the first occurrence of each core among the LR(1) states.
type lalr1Automaton struct {
	augStart    Symbol
	augProd     *Production
	states      []*lrState
	transitions map[int]map[Symbol]int
}

// genLALR1Automaton groups the LR(1) states by core signature and unions the
// lookahead sets of matching cores. Two LR(1) states with identical cores
// have identical outgoing-core transitions, so remapping every LR(1)
// transition through the old→new map is unambiguous.
func genLALR1Automaton(lr1 *lr1Automaton) *lalr1Automaton {
	automaton := &lalr1Automaton{
		augStart:    lr1.augStart,
		augProd:     lr1.augProd,
		transitions: map[int]map[Symbol]int{},
	}

	coreGroups := map[string]int{}
	oldToNew := make([]int, len(lr1.states))
	for _, state := range lr1.states {
		sig := state.items.signature(false)
		num, ok := coreGroups[sig]
		if !ok {
			num = len(automaton.states)
			coreGroups[sig] = num
			automaton.states = append(automaton.states, &lrState{
				num:   num,
				items: newItemSet(),
			})
		}
		merged := automaton.states[num].items
		for _, item := range state.items.sortedItems() {
			merged.add(item.prod, item.dot, item.lookaheads)
		}
		oldToNew[state.num] = num
	}

	for from, edges := range lr1.transitions {
		newFrom := oldToNew[from]
		if automaton.transitions[newFrom] == nil {
			automaton.transitions[newFrom] = map[Symbol]int{}
		}
		for sym, to := range edges {
			automaton.transitions[newFrom][sym] = oldToNew[to]
		}
	}

	tracer().Debugf("LALR(1) merge: %d states -> %d states", len(lr1.states), len(automaton.states))

	return automaton
}
