package spec

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	src := `
#name calc;

// The start symbol is the first production's LHS.
expr
    : expr add term
    | term
    ;
opt
    : expr
    |
    ;

add = "+";
id  = /[a-z]+/;
`
	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	if root.Name != "calc" {
		t.Fatalf("unexpected name; want: calc, got: %v", root.Name)
	}
	if len(root.Productions) != 2 {
		t.Fatalf("unexpected production count; want: 2, got: %v", len(root.Productions))
	}
	if len(root.TokenRules) != 2 {
		t.Fatalf("unexpected token rule count; want: 2, got: %v", len(root.TokenRules))
	}

	expr := root.Productions[0]
	if expr.LHS != "expr" {
		t.Fatalf("unexpected LHS; want: expr, got: %v", expr.LHS)
	}
	if len(expr.Alternatives) != 2 {
		t.Fatalf("unexpected alternative count; want: 2, got: %v", len(expr.Alternatives))
	}
	if got := strings.Join(expr.Alternatives[0].Symbols, " "); got != "expr add term" {
		t.Fatalf("unexpected alternative; want: expr add term, got: %v", got)
	}

	// The second alternative of opt is empty: an ε-production.
	opt := root.Productions[1]
	if len(opt.Alternatives) != 2 || len(opt.Alternatives[1].Symbols) != 0 {
		t.Fatalf("an empty alternative must parse as an ε-production; got: %+v", opt.Alternatives)
	}

	add := root.TokenRules[0]
	if !add.Literal || add.Pattern != "+" {
		t.Fatalf("unexpected token rule; want literal +, got: %+v", add)
	}
	id := root.TokenRules[1]
	if id.Literal || id.Pattern != "[a-z]+" {
		t.Fatalf("unexpected token rule; want pattern [a-z]+, got: %+v", id)
	}
}

func TestParse_syntaxErrors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{
			caption: "a directive needs a known name",
			src:     "#foo bar;\ns: ;",
		},
		{
			caption: "a rule needs : or =",
			src:     "s | a;",
		},
		{
			caption: "a production must be terminated",
			src:     "s: a",
		},
		{
			caption: "a literal must be terminated",
			src:     "a = \"x\ns: a;",
		},
		{
			caption: "a pattern must be terminated",
			src:     "a = /x\ns: a;",
		},
		{
			caption: "a description needs at least one production",
			src:     "a = \"x\";",
		},
		{
			caption: "an invalid character is rejected",
			src:     "s: a @;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Parse must fail")
			}
			if _, ok := err.(*SyntaxError); !ok {
				t.Fatalf("the error must be a syntax error; got: %T (%v)", err, err)
			}
		})
	}
}

func TestParse_rows(t *testing.T) {
	src := "#name x;\ns\n    : a\n    ;\na = \"a\";"
	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if root.Productions[0].Row != 2 {
		t.Fatalf("unexpected production row; want: 2, got: %v", root.Productions[0].Row)
	}
	if root.TokenRules[0].Row != 5 {
		t.Fatalf("unexpected token rule row; want: 5, got: %v", root.TokenRules[0].Row)
	}
}
