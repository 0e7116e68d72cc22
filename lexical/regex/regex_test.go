package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertConcatenation(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "ab", want: "a·b"},
		{pattern: "a|b", want: "a|b"},
		{pattern: "a(b|c)", want: "a·(b|c)"},
		{pattern: "(a)(b)", want: "(a)·(b)"},
		{pattern: "a*b", want: "a*·b"},
		{pattern: "a+b?c", want: "a+·b?·c"},
		{pattern: "a", want: "a"},
		{pattern: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, insertConcatenation(tt.pattern))
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "ab", want: "ab·"},
		{pattern: "a|b", want: "ab|"},
		{pattern: "a(b|c)*", want: "abc|*·"},
		{pattern: "ab|c", want: "ab·c|"},
		{pattern: "(a|b)c", want: "ab|c·"},
		{pattern: "a*", want: "a*"},
		{pattern: "ab+", want: "ab+·"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			postfix, err := toPostfix(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, postfix)
		})
	}
}

func TestToPostfix_unbalancedParentheses(t *testing.T) {
	for _, pattern := range []string{"(a", "a)", "((a)", "a(b))"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := toPostfix(pattern)
			assert.ErrorIs(t, err, ErrUnbalancedParentheses)
		})
	}
}

func TestGenNFA_malformed(t *testing.T) {
	for _, postfix := range []string{"ab", "a·", "·", "*"} {
		t.Run(postfix, func(t *testing.T) {
			_, err := genNFAFromPostfix(postfix)
			assert.ErrorIs(t, err, ErrMalformedRegex)
		})
	}
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, []rune{'a', 'b', 'c'}, Alphabet("a(b|c)*"))
	assert.Equal(t, []rune{'a'}, Alphabet("a+a?"))
	assert.Empty(t, Alphabet(""))
}
