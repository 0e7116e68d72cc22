package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genTestNFA builds the Thompson NFA of a(b|c)* by hand: the `a` fragment,
// the union of `b` and `c`, the star around the union, and the splice
// between the two.
func genTestNFA() *NFA {
	aStart, aAccept := NewState(), NewState()
	aStart.AddTransition('a', aAccept)

	bStart, bAccept := NewState(), NewState()
	bStart.AddTransition('b', bAccept)
	cStart, cAccept := NewState(), NewState()
	cStart.AddTransition('c', cAccept)

	uStart, uAccept := NewState(), NewState()
	uStart.AddEpsilonTransition(bStart)
	uStart.AddEpsilonTransition(cStart)
	bAccept.AddEpsilonTransition(uAccept)
	cAccept.AddEpsilonTransition(uAccept)

	sStart, sAccept := NewState(), NewState()
	sStart.AddEpsilonTransition(uStart)
	sStart.AddEpsilonTransition(sAccept)
	uAccept.AddEpsilonTransition(uStart)
	uAccept.AddEpsilonTransition(sAccept)

	aAccept.AddEpsilonTransition(sStart)

	return NewNFA(aStart, sAccept)
}

func TestNFA_Accepts(t *testing.T) {
	nfa := genTestNFA()

	for _, s := range []string{"a", "ab", "ac", "abccb", "acbcb"} {
		assert.Truef(t, nfa.Accepts(s), "NFA must accept %q", s)
	}
	for _, s := range []string{"", "b", "ad", "abd", "ba"} {
		assert.Falsef(t, nfa.Accepts(s), "NFA must reject %q", s)
	}
}

func TestGenDFA(t *testing.T) {
	alphabet := []rune{'a', 'b', 'c', 'd'}
	dfa := GenDFA(genTestNFA(), alphabet)

	require.NotNil(t, dfa.Start)
	assert.Contains(t, dfa.States, dfa.Start)

	// a(b|c)* yields the start set, the set after `a`, and one set per branch
	// of the union.
	assert.Len(t, dfa.States, 4)

	for _, s := range []string{"a", "ab", "ac", "abccb"} {
		assert.Truef(t, dfa.Simulate(s), "DFA must accept %q", s)
	}
	for _, s := range []string{"", "b", "ad", "abd"} {
		assert.Falsef(t, dfa.Simulate(s), "DFA must reject %q", s)
	}
}

func TestGenDFA_statesAreInterned(t *testing.T) {
	dfa := GenDFA(genTestNFA(), []rune{'a', 'b', 'c'})

	keys := map[string]struct{}{}
	for i, s := range dfa.States {
		assert.Equalf(t, i, s.Num(), "state numbers must follow discovery order")
		_, dup := keys[s.key]
		assert.Falsef(t, dup, "duplicate NFA-set key %v", s.key)
		keys[s.key] = struct{}{}
	}
}

func TestDFA_SimulateDeadTransition(t *testing.T) {
	dfa := GenDFA(genTestNFA(), []rune{'a', 'b', 'c'})
	assert.False(t, dfa.Simulate("ax"))
	assert.False(t, dfa.Simulate("x"))
}
