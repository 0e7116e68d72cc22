// Package lexer drives compiled DFAs over input text: a longest-match
// (maximal munch) scan across an ordered list of token rules.
package lexer

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/schuko/tracing"

	"github.com/mikan9/konoha/lexical/automata"
)

// tracer traces with key 'konoha.driver'.
func tracer() tracing.Trace {
	return tracing.Select("konoha.driver")
}

// Token is a lexeme recognized by one of the rules.
type Token struct {
	// Kind is the token-kind name of the rule that matched.
	Kind string

	// Text is the matched lexeme.
	Text string
}

// Rule binds a token-kind name to the DFA recognizing its lexemes. Rule
// order is priority order: on a match-length tie the earlier rule wins.
type Rule struct {
	Kind string
	DFA  *automata.DFA
}

// UnexpectedCharacterError is returned when no rule matches at a position.
// Pos counts code points from the start of the input.
type UnexpectedCharacterError struct {
	Pos  int
	Char rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character at position %v: %q", e.Pos, e.Char)
}

// Tokenize scans input into tokens. At each position every rule's DFA is
// simulated to find its longest accepting prefix; the rule with the greatest
// match length wins, ties going to the lowest rule index. Whitespace between
// tokens is skipped.
func Tokenize(input string, rules []Rule) ([]Token, error) {
	chars := []rune(input)
	var tokens []Token
	pos := 0

	for pos < len(chars) {
		if unicode.IsSpace(chars[pos]) {
			pos++
			continue
		}

		maxLen := 0
		kind := ""
		for _, rule := range rules {
			length := maximalMatchLength(rule.DFA, chars, pos)
			if length > maxLen {
				maxLen = length
				kind = rule.Kind
			}
		}
		if maxLen == 0 {
			return nil, &UnexpectedCharacterError{
				Pos:  pos,
				Char: chars[pos],
			}
		}

		tokens = append(tokens, Token{
			Kind: kind,
			Text: string(chars[pos : pos+maxLen]),
		})
		pos += maxLen
	}

	tracer().Debugf("tokenized %d tokens from %d characters", len(tokens), len(chars))

	return tokens, nil
}

// maximalMatchLength simulates the DFA from position pos and returns the
// length of the longest prefix that left the DFA in a final state, or 0 when
// the DFA never accepted.
func maximalMatchLength(dfa *automata.DFA, chars []rune, pos int) int {
	state := dfa.Start
	lastAccept := -1
	for i := pos; i < len(chars); i++ {
		state = state.Next(chars[i])
		if state == nil {
			break
		}
		if state.IsFinal() {
			lastAccept = i
		}
	}
	if lastAccept < 0 {
		return 0
	}
	return lastAccept - pos + 1
}
