package nfa

import (
	"fmt"

	"github.com/shadowCow/lexgen/internal/rule"
)

// fragment is a partial NFA on the construction stack: a start state and the
// single accept state of that fragment, per the classical Thompson
// construction.
type fragment struct {
	start, accept StateID
}

// builder accumulates states for one rule's NFA construction.
type builder struct {
	alloc  idAllocator
	states map[StateID]*State
}

func newBuilder() *builder {
	return &builder{states: make(map[StateID]*State)}
}

func (b *builder) newState() StateID {
	id := b.alloc.alloc()
	b.states[id] = newState(id)
	return id
}

func (b *builder) addTransition(from StateID, c rune, to StateID) {
	st := b.states[from]
	if st.Trans[c] == nil {
		st.Trans[c] = make(map[StateID]bool)
	}
	st.Trans[c][to] = true
}

func (b *builder) addEpsilon(from, to StateID) {
	b.states[from].Epsilon[to] = true
}

// literal pushes a two-state fragment s0 --c--> s1.
func (b *builder) literal(c rune) fragment {
	s0 := b.newState()
	s1 := b.newState()
	b.addTransition(s0, c, s1)
	return fragment{start: s0, accept: s1}
}

// star builds the Kleene-closure fragment over n.
func (b *builder) star(n fragment) fragment {
	s := b.newState()
	f := b.newState()
	b.addEpsilon(s, n.start)
	b.addEpsilon(s, f)
	b.addEpsilon(n.accept, n.start)
	b.addEpsilon(n.accept, f)
	return fragment{start: s, accept: f}
}

// concat builds n1 . n2 by epsilon-joining n1's accept to n2's start.
func (b *builder) concat(n1, n2 fragment) fragment {
	b.addEpsilon(n1.accept, n2.start)
	return fragment{start: n1.start, accept: n2.accept}
}

// alternate builds n1 | n2.
func (b *builder) alternate(n1, n2 fragment) fragment {
	s := b.newState()
	f := b.newState()
	b.addEpsilon(s, n1.start)
	b.addEpsilon(s, n2.start)
	b.addEpsilon(n1.accept, f)
	b.addEpsilon(n2.accept, f)
	return fragment{start: s, accept: f}
}

// Build compiles a postfix regex into an NFA and stamps its single accept
// state with kind. Supported operators are '*' (unary postfix Kleene star),
// '.' (binary concatenation) and '|' (binary alternation); '\' escapes the
// following character into a literal. Whitespace in the regex is skipped.
// Any other character, including an operator with no reserved meaning, is
// a literal.
//
// Build fails if an operator is popped against an empty stack (stack
// underflow) or the regex ends in a trailing unescaped backslash; it
// reports the error to the caller rather than panicking, so the caller can
// diagnose it and continue with the remaining rules.
func Build(kind rule.TokenKind, postfix string) (*NFA, error) {
	b := newBuilder()
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, fmt.Errorf("malformed postfix regex %q: stack underflow", postfix)
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	runes := []rune(postfix)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		case c == '\\':
			i++
			if i >= len(runes) {
				return nil, fmt.Errorf("malformed postfix regex %q: trailing escape", postfix)
			}
			stack = append(stack, b.literal(runes[i]))
		case c == '*':
			n, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.star(n))
		case c == '.':
			n2, err := pop()
			if err != nil {
				return nil, err
			}
			n1, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.concat(n1, n2))
		case c == '|':
			n2, err := pop()
			if err != nil {
				return nil, err
			}
			n1, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.alternate(n1, n2))
		default:
			stack = append(stack, b.literal(c))
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("malformed postfix regex %q: expected exactly one fragment on the stack, got %d", postfix, len(stack))
	}

	frag := stack[0]
	b.states[frag.accept].TokenKind = kind
	b.states[frag.accept].HasKind = true

	return &NFA{
		Start:   frag.start,
		Accepts: map[StateID]bool{frag.accept: true},
		States:  b.states,
	}, nil
}
