package automata

import (
	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/exp/slices"
)

// statePair is an unordered pair of DFA state numbers, stored low-high so it
// can key the distinguishability table.
type statePair [2]int

func newStatePair(p, q *DFAState) statePair {
	if p.num <= q.num {
		return statePair{p.num, q.num}
	}
	return statePair{q.num, p.num}
}

// Minimize reduces a DFA to its minimal equivalent form over the given
// alphabet using the table-filling algorithm: pairs of states are marked
// distinguishable (seeded by final/non-final disagreement, propagated through
// transitions), and the unmarked pairs are merged into equivalence classes by
// union-find. A DFA with at most one state is returned unchanged.
func Minimize(dfa *DFA, alphabet []rune) *DFA {
	if len(dfa.States) <= 1 {
		return dfa
	}

	syms := append([]rune{}, alphabet...)
	slices.Sort(syms)

	states := dfa.States
	marked := map[statePair]bool{}
	for i := 0; i < len(states); i++ {
		for j := i + 1; j < len(states); j++ {
			p := newStatePair(states[i], states[j])
			marked[p] = states[i].final != states[j].final
		}
	}

	for {
		changed := false
		for i := 0; i < len(states); i++ {
			for j := i + 1; j < len(states); j++ {
				p := newStatePair(states[i], states[j])
				if marked[p] {
					continue
				}
				if distinguishable(states[i], states[j], syms, marked) {
					marked[p] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	classes := genEquivalenceClasses(states, marked)

	oldToNew := map[*DFAState]*DFAState{}
	newStates := make([]*DFAState, 0, len(classes))
	for _, class := range classes {
		merged := hashset.New()
		for _, member := range class {
			for _, s := range member.nfaStates {
				merged.Add(s)
			}
		}
		newState := newDFAState(len(newStates), merged)
		for _, member := range class {
			if member.final {
				newState.final = true
			}
			oldToNew[member] = newState
		}
		newStates = append(newStates, newState)
	}

	// All members of a class have equivalent outgoing behavior, so remapping
	// every member's edges through the class map is well-defined; duplicate
	// edges collapse.
	for _, old := range states {
		from := oldToNew[old]
		for _, sym := range old.Symbols() {
			from.next[sym] = oldToNew[old.next[sym]]
		}
	}

	tracer().Debugf("minimization: %d states -> %d states", len(states), len(newStates))

	return &DFA{
		Start:  oldToNew[dfa.Start],
		States: newStates,
	}
}

// distinguishable reports whether p and q can be told apart by one more input
// symbol: either exactly one of them moves, or both move to an already
// distinguishable pair.
func distinguishable(p, q *DFAState, syms []rune, marked map[statePair]bool) bool {
	for _, sym := range syms {
		pNext := p.next[sym]
		qNext := q.next[sym]
		switch {
		case pNext == nil && qNext == nil:
			continue
		case pNext == nil || qNext == nil:
			return true
		case pNext == qNext:
			continue
		case marked[newStatePair(pNext, qNext)]:
			return true
		}
	}
	return false
}

// genEquivalenceClasses partitions states along the unmarked-pair relation
// using union-find with path compression. Classes are ordered by their
// lowest-numbered member, so the result is deterministic.
func genEquivalenceClasses(states []*DFAState, marked map[statePair]bool) [][]*DFAState {
	parent := make([]int, len(states))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(n int) int {
		if parent[n] == n {
			return n
		}
		root := find(parent[n])
		parent[n] = root
		return root
	}

	for i := 0; i < len(states); i++ {
		for j := i + 1; j < len(states); j++ {
			if marked[newStatePair(states[i], states[j])] {
				continue
			}
			ri, rj := find(i), find(j)
			if ri != rj {
				parent[rj] = ri
			}
		}
	}

	classIdx := map[int]int{}
	var classes [][]*DFAState
	for i, s := range states {
		root := find(i)
		idx, ok := classIdx[root]
		if !ok {
			idx = len(classes)
			classIdx[root] = idx
			classes = append(classes, nil)
		}
		classes[idx] = append(classes[idx], s)
	}

	return classes
}
