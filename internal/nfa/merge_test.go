package nfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeCombinesAccepts(t *testing.T) {
	a, err := Build("KEYWORD", "if.")
	require.NoError(t, err)
	b, err := Build("IDENTIFIER", "aa*.")
	require.NoError(t, err)

	merged := Merge([]*NFA{a, b})

	if len(merged.Accepts) != 2 {
		t.Fatalf("expected 2 accept states after merge, got %d", len(merged.Accepts))
	}
	if len(merged.States[merged.Start].Epsilon) != 2 {
		t.Fatalf("expected 2 epsilon-transitions from the new start state, got %d", len(merged.States[merged.Start].Epsilon))
	}

	// Original NFAs must be untouched by merge (no in-place mutation).
	if _, ok := a.States[a.Start]; !ok {
		t.Fatal("original NFA a was mutated")
	}
	if a.Start != 0 {
		t.Errorf("original NFA a's start id changed: %d", a.Start)
	}
}

func TestMergeEmptyYieldsEmptyLanguage(t *testing.T) {
	merged := Merge(nil)
	if len(merged.Accepts) != 0 {
		t.Errorf("expected no accept states, got %d", len(merged.Accepts))
	}
	if len(merged.States) != 1 {
		t.Errorf("expected a lone start state, got %d states", len(merged.States))
	}
}

func TestMergeNoDuplicateStateIDs(t *testing.T) {
	a, _ := Build("A", "a")
	b, _ := Build("B", "b")
	c, _ := Build("C", "c")
	merged := Merge([]*NFA{a, b, c})

	expected := 1 + len(a.States) + len(b.States) + len(c.States)
	if len(merged.States) != expected {
		t.Errorf("expected %d states after merge, got %d", expected, len(merged.States))
	}
}
