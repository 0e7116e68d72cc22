package automata

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'konoha.automata'.
func tracer() tracing.Trace {
	return tracing.Select("konoha.automata")
}

// DFAState represents a set of NFA states. The set is the state's value
// identity and is used to intern states during the subset construction; the
// struct pointer is its graph identity.
type DFAState struct {
	num       int
	nfaStates []*State
	key       string
	next      map[rune]*DFAState
	final     bool
}

func newDFAState(num int, nfaStates *hashset.Set) *DFAState {
	states := make([]*State, 0, nfaStates.Size())
	final := false
	for _, v := range nfaStates.Values() {
		s := v.(*State)
		states = append(states, s)
		if s.final {
			final = true
		}
	}
	slices.SortFunc(states, func(a, b *State) int {
		return a.num - b.num
	})
	return &DFAState{
		num:       num,
		nfaStates: states,
		key:       nfaSetKey(states),
		next:      map[rune]*DFAState{},
		final:     final,
	}
}

// nfaSetKey gives a set of NFA states a canonical string representation.
func nfaSetKey(states []*State) string {
	var b strings.Builder
	for i, s := range states {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.Itoa(s.num))
	}
	return b.String()
}

func (s *DFAState) Num() int {
	return s.num
}

func (s *DFAState) IsFinal() bool {
	return s.final
}

// Next returns the successor state on sym, or nil when the transition is
// absent (the dead state).
func (s *DFAState) Next(sym rune) *DFAState {
	return s.next[sym]
}

// Symbols returns the symbols s has outgoing transitions on, in sorted order.
func (s *DFAState) Symbols() []rune {
	syms := make([]rune, 0, len(s.next))
	for sym := range s.next {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	return syms
}

// DFA is a deterministic finite automaton. States hold at most one transition
// per symbol; absent transitions are dead. State numbers are assigned in
// discovery order, and the start state is always a member of States.
type DFA struct {
	Start  *DFAState
	States []*DFAState
}

// GenDFA converts an NFA into an equivalent DFA over the given alphabet using
// the subset construction. The initial state is the ε-closure of the NFA's
// start state; every generated state is final iff its set contains a final
// NFA state.
func GenDFA(nfa *NFA, alphabet []rune) *DFA {
	syms := append([]rune{}, alphabet...)
	slices.Sort(syms)

	startSet := epsilonClosure(newStateSet(nfa.Start))
	start := newDFAState(0, startSet)
	states := []*DFAState{start}
	knownStates := map[string]*DFAState{
		start.key: start,
	}
	uncheckedStates := []*DFAState{start}

	for len(uncheckedStates) > 0 {
		var nextUncheckedStates []*DFAState
		for _, state := range uncheckedStates {
			src := newStateSet(state.nfaStates...)
			for _, sym := range syms {
				u := epsilonClosure(move(src, sym))
				if u.Size() == 0 {
					continue
				}
				target := newDFAState(len(states), u)
				if known, ok := knownStates[target.key]; ok {
					target = known
				} else {
					knownStates[target.key] = target
					states = append(states, target)
					nextUncheckedStates = append(nextUncheckedStates, target)
				}
				state.next[sym] = target
			}
		}
		uncheckedStates = nextUncheckedStates
	}

	tracer().Debugf("subset construction: %d NFA-set states", len(states))

	return &DFA{
		Start:  start,
		States: states,
	}
}

// Simulate runs the DFA on input and reports whether the whole input is
// accepted.
func (d *DFA) Simulate(input string) bool {
	state := d.Start
	for _, c := range input {
		state = state.Next(c)
		if state == nil {
			return false
		}
	}
	return state.final
}
