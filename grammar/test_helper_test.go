package grammar

import "testing"

// genExprGrammar builds the textbook expression grammar:
//
//	E → E + T | T
//	T → T * F | F
//	F → ( E ) | id
func genExprGrammar(t *testing.T) *Grammar {
	t.Helper()

	add := NewTerminal("+")
	mul := NewTerminal("*")
	lParen := NewTerminal("(")
	rParen := NewTerminal(")")
	id := NewTerminal("id")
	e := NewNonTerminal("E")
	tt := NewNonTerminal("T")
	f := NewNonTerminal("F")

	g, err := NewGrammar(
		[]Symbol{add, mul, lParen, rParen, id},
		[]Symbol{e, tt, f},
		[]*Production{
			{Left: e, Right: []Symbol{e, add, tt}},
			{Left: e, Right: []Symbol{tt}},
			{Left: tt, Right: []Symbol{tt, mul, f}},
			{Left: tt, Right: []Symbol{f}},
			{Left: f, Right: []Symbol{lParen, e, rParen}},
			{Left: f, Right: []Symbol{id}},
		},
		e,
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// genDanglingElseGrammar builds the ambiguous conditional grammar:
//
//	S → if e then S | if e then S else S | a
func genDanglingElseGrammar(t *testing.T) *Grammar {
	t.Helper()

	kwIf := NewTerminal("if")
	kwThen := NewTerminal("then")
	kwElse := NewTerminal("else")
	e := NewTerminal("e")
	a := NewTerminal("a")
	s := NewNonTerminal("S")

	g, err := NewGrammar(
		[]Symbol{kwIf, kwThen, kwElse, e, a},
		[]Symbol{s},
		[]*Production{
			{Left: s, Right: []Symbol{kwIf, e, kwThen, s}},
			{Left: s, Right: []Symbol{kwIf, e, kwThen, s, kwElse, s}},
			{Left: s, Right: []Symbol{a}},
		},
		s,
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func symbolNames(syms []Symbol) []string {
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.Name
	}
	return names
}

func testSymbolSet(t *testing.T, actual []Symbol, expected []string) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Fatalf("unexpected symbol set\nwant: %+v\ngot: %+v", expected, symbolNames(actual))
	}
	for _, want := range expected {
		found := false
		for _, sym := range actual {
			if sym.Name == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected symbol set\nwant: %+v\ngot: %+v", expected, symbolNames(actual))
		}
	}
}
