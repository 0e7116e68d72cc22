package grammar

import "testing"

func TestAnalyzerFirst(t *testing.T) {
	g := genExprGrammar(t)
	a, err := NewAnalyzer(g)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		symbol  string
		symbols []string
	}{
		{symbol: "E", symbols: []string{"(", "id"}},
		{symbol: "T", symbols: []string{"(", "id"}},
		{symbol: "F", symbols: []string{"(", "id"}},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			fst, err := a.First(NewNonTerminal(tt.symbol))
			if err != nil {
				t.Fatal(err)
			}
			testSymbolSet(t, fst, tt.symbols)
		})
	}
}

func TestAnalyzerFirst_terminal(t *testing.T) {
	g := genExprGrammar(t)
	a, err := NewAnalyzer(g)
	if err != nil {
		t.Fatal(err)
	}

	fst, err := a.First(NewTerminal("id"))
	if err != nil {
		t.Fatal(err)
	}
	testSymbolSet(t, fst, []string{"id"})
}

func TestAnalyzerFirst_nullable(t *testing.T) {
	aTerm := NewTerminal("a")
	bTerm := NewTerminal("b")
	s := NewNonTerminal("S")
	aSym := NewNonTerminal("A")
	bSym := NewNonTerminal("B")

	g, err := NewGrammar(
		[]Symbol{aTerm, bTerm},
		[]Symbol{s, aSym, bSym},
		[]*Production{
			{Left: s, Right: []Symbol{aSym, bSym}},
			{Left: aSym, Right: []Symbol{aTerm}},
			{Left: aSym, Right: []Symbol{}},
			{Left: bSym, Right: []Symbol{bTerm}},
		},
		s,
	)
	if err != nil {
		t.Fatal(err)
	}
	analyzer, err := NewAnalyzer(g)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		symbol  string
		symbols []string
	}{
		{symbol: "S", symbols: []string{"a", "b"}},
		{symbol: "A", symbols: []string{"a", symbolNameEpsilon}},
		{symbol: "B", symbols: []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			fst, err := analyzer.First(NewNonTerminal(tt.symbol))
			if err != nil {
				t.Fatal(err)
			}
			testSymbolSet(t, fst, tt.symbols)
		})
	}
}

// Adding a production can only grow FIRST sets.
func TestFirst_monotonicity(t *testing.T) {
	g := genExprGrammar(t)
	base, err := NewAnalyzer(g)
	if err != nil {
		t.Fatal(err)
	}

	sub := NewTerminal("-")
	e := NewNonTerminal("E")
	extended, err := NewGrammar(
		append([]Symbol{sub}, g.Terminals...),
		g.NonTerminals,
		append(append([]*Production{}, g.Productions...), &Production{
			Left:  e,
			Right: []Symbol{sub, e},
		}),
		g.Start,
	)
	if err != nil {
		t.Fatal(err)
	}
	grown, err := NewAnalyzer(extended)
	if err != nil {
		t.Fatal(err)
	}

	for _, sym := range g.NonTerminals {
		before, err := base.First(sym)
		if err != nil {
			t.Fatal(err)
		}
		after, err := grown.First(sym)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range before {
			found := false
			for _, got := range after {
				if got == want {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("FIRST(%v) lost %v after adding a production", sym, want)
			}
		}
	}
}
