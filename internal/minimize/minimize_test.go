package minimize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadowCow/lexgen/internal/dfa"
	"github.com/shadowCow/lexgen/internal/nfa"
	"github.com/shadowCow/lexgen/internal/rule"
)

func buildDFAFromNFA(t *testing.T, kind rule.TokenKind, postfix string) *dfa.DFA {
	t.Helper()
	n, err := nfa.Build(kind, postfix)
	require.NoError(t, err)
	return dfa.Build(n)
}

func TestCompletenessEveryStateHasEverySymbol(t *testing.T) {
	d := buildDFAFromNFA(t, "KW", "if.")
	m := Minimize(d)

	for id, st := range m.States {
		for _, c := range m.Alphabet {
			if _, ok := st.Trans[c]; !ok {
				t.Errorf("state %d missing transition for %q after completion", id, c)
			}
		}
	}
}

func TestSinkIsNonAcceptingAndSelfLooping(t *testing.T) {
	d := buildDFAFromNFA(t, "KW", "if.")
	m := Minimize(d)

	var sinkID dfa.StateID
	found := false
	for id, st := range m.States {
		if st.IsSink {
			sinkID = id
			found = true
		}
	}
	if !found {
		t.Fatal("expected exactly one sink state")
	}
	sink := m.States[sinkID]
	if sink.IsAccepting {
		t.Error("sink must not be accepting")
	}
	for _, c := range m.Alphabet {
		if sink.Trans[c] != sinkID {
			t.Errorf("sink should self-loop on %q, got %d", c, sink.Trans[c])
		}
	}
}

func TestEmptyLanguageYieldsSinkOnlyDFA(t *testing.T) {
	merged := nfa.Merge(nil)
	d := dfa.Build(merged)
	m := Minimize(d)

	if len(m.States) != 1 {
		t.Fatalf("expected exactly one state (the sink), got %d", len(m.States))
	}
	start := m.States[m.Start]
	if start.IsAccepting {
		t.Error("empty language DFA must not accept")
	}
	if !start.IsSink {
		t.Error("empty language DFA's only state should be tagged as sink")
	}
}

func TestMinimizationPreservesAmbiguousLabels(t *testing.T) {
	// Both rules match exactly "if"; minimization must not drop either label
	// off the shared accept state.
	kw, err := nfa.Build("KEYWORD", "if.")
	require.NoError(t, err)
	ident, err := nfa.Build("IDENTIFIER", "if.")
	require.NoError(t, err)
	merged := nfa.Merge([]*nfa.NFA{kw, ident})
	d := dfa.Build(merged)
	m := Minimize(d)

	state := m.States[m.Start]
	mid, ok := state.Trans['i']
	require.True(t, ok)
	end, ok := m.States[mid].Trans['f']
	require.True(t, ok)

	endState := m.States[end]
	if !endState.IsAccepting || len(endState.TokenKinds) != 2 {
		t.Fatalf("expected the ambiguous \"if\" accept state to keep both kinds, got %v", endState.TokenKinds)
	}
}

func TestMinimizeMergesEquivalentAcceptStates(t *testing.T) {
	// "a" one-or-more: every accepting state after the first 'a' behaves
	// identically (self-loop on 'a', same kind), so they should collapse
	// into a single block.
	n, err := nfa.Build("A", "aa*.")
	require.NoError(t, err)
	d := dfa.Build(n)
	m := Minimize(d)

	var acceptingCount int
	for _, st := range m.States {
		if st.IsAccepting {
			acceptingCount++
		}
	}
	if acceptingCount != 1 {
		t.Errorf("expected exactly one accepting state after minimization, got %d", acceptingCount)
	}
}
