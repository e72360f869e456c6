// Package nfa builds per-rule NFAs from postfix regular expressions via
// Thompson's construction, and merges them into one multi-accepting NFA.
package nfa

import "github.com/shadowCow/lexgen/internal/rule"

// StateID is the stable integer identity of an NFA state, assigned by an
// arena-local allocator rather than a process-wide counter.
type StateID int

// State holds a symbol-keyed transition table, an epsilon-successor set,
// and an optional token-kind label. The label is stamped exactly once, on
// the accept state of the rule's fragment, and is never overwritten.
type State struct {
	ID        StateID
	Trans     map[rune]map[StateID]bool
	Epsilon   map[StateID]bool
	TokenKind rule.TokenKind
	HasKind   bool
}

// NFA is a start state plus a set of accept states over an arena of states
// addressed by StateID. Every accept state is reachable from Start.
type NFA struct {
	Start   StateID
	Accepts map[StateID]bool
	States  map[StateID]*State
}

func newState(id StateID) *State {
	return &State{
		ID:      id,
		Trans:   make(map[rune]map[StateID]bool),
		Epsilon: make(map[StateID]bool),
	}
}

// idAllocator assigns monotonically increasing state identities within one
// arena. It replaces a process-wide state-id counter.
type idAllocator struct {
	next StateID
}

func (a *idAllocator) alloc() StateID {
	id := a.next
	a.next++
	return id
}
