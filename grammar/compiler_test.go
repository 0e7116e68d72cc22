package grammar

import (
	"strings"
	"testing"

	"github.com/mikan9/konoha/spec"
)

func TestExpandCharClasses(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "[a-c]+", want: "(a|b|c)+"},
		{pattern: "x[0-2]", want: "x(0|1|2)"},
		{pattern: "[ab]", want: "(a|b)"},
		{pattern: "abc", want: "abc"},
		{pattern: "[a-b][0-1]", want: "(a|b)(0|1)"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := expandCharClasses(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("unexpected expansion\nwant: %v\ngot: %v", tt.want, got)
			}
		})
	}
}

func TestExpandCharClasses_invalid(t *testing.T) {
	for _, pattern := range []string{"[a-c", "[]", "[z-a]"} {
		t.Run(pattern, func(t *testing.T) {
			if _, err := expandCharClasses(pattern); err == nil {
				t.Fatal("expandCharClasses must fail")
			}
		})
	}
}

const calcSpecSrc = `
#name calc;

expr
    : expr add term
    | term
    ;
term
    : term mul factor
    | factor
    ;
factor
    : l_paren expr r_paren
    | id
    ;

add = "+";
mul = "*";
l_paren = "(";
r_paren = ")";
id = /[a-z]+/;
`

func TestCompile(t *testing.T) {
	root, err := spec.Parse(strings.NewReader(calcSpecSrc))
	if err != nil {
		t.Fatal(err)
	}
	cgram, err := Compile(root)
	if err != nil {
		t.Fatal(err)
	}

	if cgram.Name != "calc" {
		t.Fatalf("unexpected grammar name; want: calc, got: %v", cgram.Name)
	}
	if cgram.Grammar.Start.Name != "expr" {
		t.Fatalf("the start symbol must be the first production's LHS; got: %v", cgram.Grammar.Start)
	}
	if len(cgram.LexRules) != 5 {
		t.Fatalf("unexpected lex rule count; want: 5, got: %v", len(cgram.LexRules))
	}
	if len(cgram.Table.Conflicts()) != 0 {
		t.Fatalf("the calc grammar must be conflict-free; got: %v", describeConflicts(cgram.Table))
	}

	// Token rules compile in declaration order, which is match priority.
	if cgram.LexRules[0].Kind != "add" || cgram.LexRules[4].Kind != "id" {
		t.Fatalf("lex rules must keep declaration order; got: %v, %v", cgram.LexRules[0].Kind, cgram.LexRules[4].Kind)
	}
	if !cgram.LexRules[4].DFA.Simulate("abc") {
		t.Fatal("the id rule must accept a lowercase word")
	}
	if !cgram.LexRules[0].DFA.Simulate("+") {
		t.Fatal("the add rule must accept its literal")
	}
}

func TestGrammarBuilder_undefinedSymbol(t *testing.T) {
	src := `
#name broken;

s
    : a b
    ;

a = "a";
`
	root, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	b := &GrammarBuilder{
		AST: root,
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("Build must fail for an undefined symbol")
	}
}
