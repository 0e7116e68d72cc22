// Package regex compiles the toolkit's regular expression dialect into
// finite automata. The dialect has the operators `|` (union), `·` (explicit
// concatenation, inserted automatically), `*`, `+`, `?`, and parentheses;
// every other character is a literal operand. There is no escape mechanism;
// escaping is a preprocessor responsibility of the caller.
package regex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/slices"
)

const concatOp = '·'

var (
	// ErrUnbalancedParentheses is returned when a pattern contains an
	// unmatched '(' or ')'.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

	// ErrMalformedRegex is returned when a postfix expression does not reduce
	// to a single NFA.
	ErrMalformedRegex = errors.New("malformed regular expression")
)

var precedence = map[rune]int{
	'|':      1,
	concatOp: 2,
	'*':      3,
	'+':      3,
	'?':      3,
}

func isOperand(c rune) bool {
	switch c {
	case '|', '*', '+', '?', '(', ')', concatOp:
		return false
	}
	return true
}

// insertConcatenation makes the implicit concatenations of a pattern
// explicit. The operator is emitted between c1 and c2 exactly when c1 can end
// a subexpression (operand, ')', '*', '+', '?') and c2 can begin one
// (operand, '(').
func insertConcatenation(pattern string) string {
	var b strings.Builder
	chars := []rune(pattern)
	for i, c1 := range chars {
		b.WriteRune(c1)
		if i+1 >= len(chars) {
			continue
		}
		c2 := chars[i+1]
		if (isOperand(c1) || c1 == ')' || c1 == '*' || c1 == '+' || c1 == '?') &&
			(isOperand(c2) || c2 == '(') {
			b.WriteRune(concatOp)
		}
	}
	return b.String()
}

// toPostfix converts an infix pattern to postfix notation using the
// Shunting-Yard algorithm. All operators are left-associative; the postfix
// repetition operators share the highest precedence level.
func toPostfix(pattern string) (string, error) {
	infix := insertConcatenation(pattern)

	var b strings.Builder
	stack := arraystack.New()
	for _, c := range infix {
		switch {
		case isOperand(c):
			b.WriteRune(c)
		case c == '(':
			stack.Push(c)
		case c == ')':
			for {
				top, ok := stack.Peek()
				if !ok || top.(rune) == '(' {
					break
				}
				op, _ := stack.Pop()
				b.WriteRune(op.(rune))
			}
			if _, ok := stack.Pop(); !ok {
				return "", fmt.Errorf("%w: %v", ErrUnbalancedParentheses, pattern)
			}
		default:
			for {
				top, ok := stack.Peek()
				if !ok || top.(rune) == '(' || precedence[top.(rune)] < precedence[c] {
					break
				}
				op, _ := stack.Pop()
				b.WriteRune(op.(rune))
			}
			stack.Push(c)
		}
	}
	for {
		op, ok := stack.Pop()
		if !ok {
			break
		}
		if op.(rune) == '(' {
			return "", fmt.Errorf("%w: %v", ErrUnbalancedParentheses, pattern)
		}
		b.WriteRune(op.(rune))
	}

	return b.String(), nil
}

// Alphabet returns the distinct operand characters of a pattern in sorted
// order. It is the working alphabet for automata compiled from the pattern.
func Alphabet(pattern string) []rune {
	seen := map[rune]struct{}{}
	var syms []rune
	for _, c := range pattern {
		if !isOperand(c) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		syms = append(syms, c)
	}
	slices.Sort(syms)
	return syms
}
