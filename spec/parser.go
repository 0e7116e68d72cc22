package spec

import "io"

// RootNode is the AST of a grammar description.
type RootNode struct {
	Name        string
	Productions []*ProductionNode
	TokenRules  []*TokenRuleNode
}

type ProductionNode struct {
	LHS          string
	Alternatives []*AlternativeNode
	Row          int
}

type AlternativeNode struct {
	Symbols []string
	Row     int
}

type TokenRuleNode struct {
	Kind    string
	Pattern string
	Literal bool
	Row     int
}

// Parse reads a grammar description. The returned error is a *SyntaxError
// when the description itself is malformed.
func Parse(src io.Reader) (*RootNode, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		lex: lex,
	}
	return p.parseRoot()
}

type parser struct {
	lex *lexer
}

func (p *parser) next() (*token, error) {
	return p.lex.next()
}

func (p *parser) expect(kind tokenKind) (*token, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != kind {
		return nil, newSyntaxError(tok.row, "expected %v but got %v", kind, tok.kind)
	}
	return tok, nil
}

func (p *parser) parseRoot() (*RootNode, error) {
	root := &RootNode{}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenKindEOF:
			if len(root.Productions) == 0 {
				return nil, newSyntaxError(tok.row, "a grammar description needs at least one production")
			}
			return root, nil
		case tokenKindDirective:
			if err := p.parseDirective(root, tok); err != nil {
				return nil, err
			}
		case tokenKindIdent:
			if err := p.parseRule(root, tok); err != nil {
				return nil, err
			}
		default:
			return nil, newSyntaxError(tok.row, "expected a production or a token rule but got %v", tok.kind)
		}
	}
}

func (p *parser) parseDirective(root *RootNode, dir *token) error {
	if dir.text != "name" {
		return newSyntaxError(dir.row, "invalid directive name: %v", dir.text)
	}
	name, err := p.expect(tokenKindIdent)
	if err != nil {
		return err
	}
	if _, err := p.expect(tokenKindSemicolon); err != nil {
		return err
	}
	root.Name = name.text
	return nil
}

// parseRule dispatches on the token after the rule name: ':' introduces a
// production, '=' a token rule.
func (p *parser) parseRule(root *RootNode, name *token) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	switch tok.kind {
	case tokenKindColon:
		prod, err := p.parseProduction(name)
		if err != nil {
			return err
		}
		root.Productions = append(root.Productions, prod)
		return nil
	case tokenKindEq:
		rule, err := p.parseTokenRule(name)
		if err != nil {
			return err
		}
		root.TokenRules = append(root.TokenRules, rule)
		return nil
	}
	return newSyntaxError(tok.row, "expected : or = but got %v", tok.kind)
}

func (p *parser) parseProduction(name *token) (*ProductionNode, error) {
	prod := &ProductionNode{
		LHS: name.text,
		Row: name.row,
	}
	alt := &AlternativeNode{Row: name.row}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenKindIdent:
			alt.Symbols = append(alt.Symbols, tok.text)
		case tokenKindOr:
			prod.Alternatives = append(prod.Alternatives, alt)
			alt = &AlternativeNode{Row: tok.row}
		case tokenKindSemicolon:
			prod.Alternatives = append(prod.Alternatives, alt)
			return prod, nil
		default:
			return nil, newSyntaxError(tok.row, "expected a symbol, | or ; but got %v", tok.kind)
		}
	}
}

func (p *parser) parseTokenRule(name *token) (*TokenRuleNode, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenKindPattern && tok.kind != tokenKindLiteral {
		return nil, newSyntaxError(tok.row, "expected a pattern or a literal but got %v", tok.kind)
	}
	if _, err := p.expect(tokenKindSemicolon); err != nil {
		return nil, err
	}
	return &TokenRuleNode{
		Kind:    name.text,
		Pattern: tok.text,
		Literal: tok.kind == tokenKindLiteral,
		Row:     name.row,
	}, nil
}
