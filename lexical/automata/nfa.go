// Package automata implements the finite automata underlying the lexical
// analyzer: NFAs built by Thompson's construction, DFAs derived from them by
// the subset construction, and DFA minimization by the table-filling
// algorithm.
package automata

import (
	"sync/atomic"

	"github.com/emirpasic/gods/sets/hashset"
)

var stateNumSeq int64

// State is a state of an NFA. States have identity; two states are the same
// state only when they are the same object. The number is used solely to give
// sets of states a canonical representation.
type State struct {
	num         int
	transitions []*transition
	final       bool
}

type transition struct {
	epsilon bool
	symbol  rune
	to      *State
}

func NewState() *State {
	return &State{
		num: int(atomic.AddInt64(&stateNumSeq, 1)),
	}
}

func (s *State) Num() int {
	return s.num
}

func (s *State) IsFinal() bool {
	return s.final
}

func (s *State) SetFinal(final bool) {
	s.final = final
}

// AddTransition adds a transition labeled with sym.
func (s *State) AddTransition(sym rune, to *State) {
	s.transitions = append(s.transitions, &transition{
		symbol: sym,
		to:     to,
	})
}

// AddEpsilonTransition adds an unlabeled transition.
func (s *State) AddEpsilonTransition(to *State) {
	s.transitions = append(s.transitions, &transition{
		epsilon: true,
		to:      to,
	})
}

// NFA is a pair of a start state and an accept state. The accept state is
// flagged final on construction; combinators in the regex package may clear
// the flag again when an NFA is embedded into a larger one.
type NFA struct {
	Start  *State
	Accept *State
}

func NewNFA(start, accept *State) *NFA {
	accept.final = true
	return &NFA{
		Start:  start,
		Accept: accept,
	}
}

// Accepts simulates the NFA on input and reports whether the whole input is
// accepted. The simulation tracks the ε-closed set of active states.
func (n *NFA) Accepts(input string) bool {
	states := epsilonClosure(newStateSet(n.Start))
	for _, c := range input {
		states = epsilonClosure(move(states, c))
		if states.Size() == 0 {
			return false
		}
	}
	return containsFinal(states)
}

func newStateSet(states ...*State) *hashset.Set {
	set := hashset.New()
	for _, s := range states {
		set.Add(s)
	}
	return set
}

// epsilonClosure computes the least set containing states and closed under
// unlabeled transitions.
func epsilonClosure(states *hashset.Set) *hashset.Set {
	closure := hashset.New(states.Values()...)
	stack := states.Values()
	for len(stack) > 0 {
		s := stack[len(stack)-1].(*State)
		stack = stack[:len(stack)-1]
		for _, t := range s.transitions {
			if !t.epsilon {
				continue
			}
			if closure.Contains(t.to) {
				continue
			}
			closure.Add(t.to)
			stack = append(stack, t.to)
		}
	}
	return closure
}

// move computes the set of states reachable from states by one transition
// labeled sym.
func move(states *hashset.Set, sym rune) *hashset.Set {
	result := hashset.New()
	for _, v := range states.Values() {
		for _, t := range v.(*State).transitions {
			if t.epsilon || t.symbol != sym {
				continue
			}
			result.Add(t.to)
		}
	}
	return result
}

func containsFinal(states *hashset.Set) bool {
	for _, v := range states.Values() {
		if v.(*State).final {
			return true
		}
	}
	return false
}
