package regex

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/mikan9/konoha/lexical/automata"
)

// GenNFA builds an NFA recognizing the pattern's language using Thompson's
// construction over the postfix form of the pattern.
func GenNFA(pattern string) (*automata.NFA, error) {
	postfix, err := toPostfix(pattern)
	if err != nil {
		return nil, err
	}
	return genNFAFromPostfix(postfix)
}

func genNFAFromPostfix(postfix string) (*automata.NFA, error) {
	stack := arraystack.New()
	for _, c := range postfix {
		switch c {
		case concatOp:
			b, a, err := popOperands(stack, c)
			if err != nil {
				return nil, err
			}
			stack.Push(concatNFA(a, b))
		case '|':
			b, a, err := popOperands(stack, c)
			if err != nil {
				return nil, err
			}
			stack.Push(unionNFA(a, b))
		case '*':
			a, err := popOperand(stack, c)
			if err != nil {
				return nil, err
			}
			stack.Push(starNFA(a))
		case '+':
			a, err := popOperand(stack, c)
			if err != nil {
				return nil, err
			}
			stack.Push(plusNFA(a))
		case '?':
			a, err := popOperand(stack, c)
			if err != nil {
				return nil, err
			}
			stack.Push(optionalNFA(a))
		default:
			stack.Push(basicNFA(c))
		}
	}
	if stack.Size() != 1 {
		return nil, fmt.Errorf("%w: postfix expression %q did not reduce to one NFA", ErrMalformedRegex, postfix)
	}
	nfa, _ := stack.Pop()
	return nfa.(*automata.NFA), nil
}

func popOperand(stack *arraystack.Stack, op rune) (*automata.NFA, error) {
	v, ok := stack.Pop()
	if !ok {
		return nil, fmt.Errorf("%w: operator %q lacks an operand", ErrMalformedRegex, op)
	}
	return v.(*automata.NFA), nil
}

func popOperands(stack *arraystack.Stack, op rune) (*automata.NFA, *automata.NFA, error) {
	second, err := popOperand(stack, op)
	if err != nil {
		return nil, nil, err
	}
	first, err := popOperand(stack, op)
	if err != nil {
		return nil, nil, err
	}
	return second, first, nil
}

// basicNFA builds `start -c→ accept`.
func basicNFA(c rune) *automata.NFA {
	start := automata.NewState()
	accept := automata.NewState()
	start.AddTransition(c, accept)
	return automata.NewNFA(start, accept)
}

// concatNFA splices a's accept state onto b's start state.
func concatNFA(a, b *automata.NFA) *automata.NFA {
	a.Accept.SetFinal(false)
	a.Accept.AddEpsilonTransition(b.Start)
	return automata.NewNFA(a.Start, b.Accept)
}

func unionNFA(a, b *automata.NFA) *automata.NFA {
	start := automata.NewState()
	accept := automata.NewState()

	start.AddEpsilonTransition(a.Start)
	start.AddEpsilonTransition(b.Start)

	a.Accept.SetFinal(false)
	b.Accept.SetFinal(false)
	a.Accept.AddEpsilonTransition(accept)
	b.Accept.AddEpsilonTransition(accept)

	return automata.NewNFA(start, accept)
}

func starNFA(a *automata.NFA) *automata.NFA {
	start := automata.NewState()
	accept := automata.NewState()

	start.AddEpsilonTransition(a.Start)
	start.AddEpsilonTransition(accept)

	a.Accept.SetFinal(false)
	a.Accept.AddEpsilonTransition(a.Start)
	a.Accept.AddEpsilonTransition(accept)

	return automata.NewNFA(start, accept)
}

// plusNFA is starNFA without the empty-string shortcut.
func plusNFA(a *automata.NFA) *automata.NFA {
	start := automata.NewState()
	accept := automata.NewState()

	start.AddEpsilonTransition(a.Start)

	a.Accept.SetFinal(false)
	a.Accept.AddEpsilonTransition(a.Start)
	a.Accept.AddEpsilonTransition(accept)

	return automata.NewNFA(start, accept)
}

// optionalNFA is starNFA without the repetition back-edge.
func optionalNFA(a *automata.NFA) *automata.NFA {
	start := automata.NewState()
	accept := automata.NewState()

	start.AddEpsilonTransition(a.Start)
	start.AddEpsilonTransition(accept)

	a.Accept.SetFinal(false)
	a.Accept.AddEpsilonTransition(accept)

	return automata.NewNFA(start, accept)
}

// Compile builds a minimized DFA for the pattern. The working alphabet is the
// set of operand characters appearing in the pattern; callers needing a wider
// alphabet can run the subset construction themselves via GenNFA.
func Compile(pattern string) (*automata.DFA, error) {
	nfa, err := GenNFA(pattern)
	if err != nil {
		return nil, err
	}
	alphabet := Alphabet(pattern)
	dfa := automata.GenDFA(nfa, alphabet)
	return automata.Minimize(dfa, alphabet), nil
}

// CompileLiteral builds a DFA accepting exactly the given string. Literals
// bypass the pattern dialect entirely, so operator characters need no
// escaping.
func CompileLiteral(text string) *automata.DFA {
	start := automata.NewState()
	state := start
	for _, c := range text {
		next := automata.NewState()
		state.AddTransition(c, next)
		state = next
	}
	nfa := automata.NewNFA(start, state)

	seen := map[rune]struct{}{}
	var alphabet []rune
	for _, c := range text {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		alphabet = append(alphabet, c)
	}

	return automata.GenDFA(nfa, alphabet)
}
