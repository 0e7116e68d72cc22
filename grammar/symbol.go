// Package grammar models context-free grammars and compiles them into
// LALR(1) parsing tables: FIRST/FOLLOW analysis, the canonical LR(1)
// collection, core-based state merging, and ACTION/GOTO table filling with
// conflict reporting.
package grammar

import (
	"strings"

	"golang.org/x/exp/slices"
)

type SymbolKind string

const (
	SymbolKindTerminal    = SymbolKind("terminal")
	SymbolKindNonTerminal = SymbolKind("non-terminal")
)

func (k SymbolKind) String() string {
	return string(k)
}

// Symbol is a grammar symbol. Symbols are values; two symbols are equal iff
// their names and kinds match, so Symbol can key maps directly.
type Symbol struct {
	Name string
	Kind SymbolKind
}

const (
	symbolNameEpsilon = "ε"
	symbolNameEOF     = "$"
)

var (
	// SymbolEpsilon is the distinguished terminal marking nullability. It
	// never appears in production right-hand sides; an empty right-hand side
	// is the nullable marker.
	SymbolEpsilon = Symbol{Name: symbolNameEpsilon, Kind: SymbolKindTerminal}

	// SymbolEOF is the distinguished end-of-input terminal. The parser driver
	// appends it to every token stream, and it is the lookahead of the accept
	// action.
	SymbolEOF = Symbol{Name: symbolNameEOF, Kind: SymbolKindTerminal}
)

func NewTerminal(name string) Symbol {
	return Symbol{Name: name, Kind: SymbolKindTerminal}
}

func NewNonTerminal(name string) Symbol {
	return Symbol{Name: name, Kind: SymbolKindNonTerminal}
}

func (s Symbol) IsTerminal() bool {
	return s.Kind == SymbolKindTerminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.Kind == SymbolKindNonTerminal
}

func (s Symbol) IsEpsilon() bool {
	return s == SymbolEpsilon
}

func (s Symbol) IsEOF() bool {
	return s == SymbolEOF
}

func (s Symbol) String() string {
	return s.Name
}

// sortSymbols orders symbols by name, terminals before non-terminals on a
// name tie. All iteration orders that reach observable output go through it.
func sortSymbols(syms []Symbol) {
	slices.SortFunc(syms, compareSymbols)
}

func compareSymbols(a, b Symbol) int {
	if a.Name != b.Name {
		return strings.Compare(a.Name, b.Name)
	}
	if a.Kind == b.Kind {
		return 0
	}
	if a.Kind == SymbolKindTerminal {
		return -1
	}
	return 1
}
