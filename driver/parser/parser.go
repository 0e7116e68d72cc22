// Package parser drives a finalized LALR(1) parsing table over a token
// stream. The driver only answers accept/reject; it never fails on input.
package parser

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/mikan9/konoha/driver/lexer"
	"github.com/mikan9/konoha/grammar"
)

// tracer traces with key 'konoha.driver'.
func tracer() tracing.Trace {
	return tracing.Select("konoha.driver")
}

type ParserOption func(p *Parser)

// OnReduce registers a callback invoked at every reduction with the reduced
// production. Callbacks run before the GOTO transition is taken.
func OnReduce(fn func(prod *grammar.Production)) ParserOption {
	return func(p *Parser) {
		p.onReduce = fn
	}
}

// Parser is an LALR(1) shift/reduce parser. The table it drives is
// read-only; the per-parse state is reset by every Parse call, and since the
// state stack is kept on the Parser itself, a single Parser must not run
// concurrent parses, but the underlying table may back any number of parsers.
type Parser struct {
	ptab       *grammar.ParsingTable
	stateStack []int
	onReduce   func(prod *grammar.Production)
}

func NewParser(ptab *grammar.ParsingTable, opts ...ParserOption) *Parser {
	p := &Parser{
		ptab: ptab,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the shift/reduce loop over tokens (a $ sentinel is appended
// internally) and reports whether the stream is a sentence of the grammar.
// The first missing ACTION or GOTO cell rejects; there is no error recovery.
func (p *Parser) Parse(tokens []lexer.Token) bool {
	input := make([]grammar.Symbol, 0, len(tokens)+1)
	for _, tok := range tokens {
		input = append(input, grammar.NewTerminal(tok.Kind))
	}
	input = append(input, grammar.SymbolEOF)

	p.stateStack = p.stateStack[:0]
	p.push(p.ptab.InitialState)
	ip := 0

	for {
		sym := input[ip]
		act, ok := p.ptab.Action(p.top(), sym)
		if !ok {
			tracer().Debugf("reject: no action for state %d on %v", p.top(), sym)
			return false
		}

		switch act.Type {
		case grammar.ActionTypeShift:
			p.push(act.NextState)
			ip++
		case grammar.ActionTypeReduce:
			// An ε-production pops nothing.
			p.pop(len(act.Prod.Right))
			next, ok := p.ptab.GoTo(p.top(), act.Prod.Left)
			if !ok {
				tracer().Debugf("reject: no goto for state %d on %v", p.top(), act.Prod.Left)
				return false
			}
			if p.onReduce != nil {
				p.onReduce(act.Prod)
			}
			p.push(next)
		case grammar.ActionTypeAccept:
			return true
		}
	}
}

func (p *Parser) top() int {
	return p.stateStack[len(p.stateStack)-1]
}

func (p *Parser) push(state int) {
	p.stateStack = append(p.stateStack, state)
}

func (p *Parser) pop(n int) {
	p.stateStack = p.stateStack[:len(p.stateStack)-n]
}
