// Package minimize reduces a subset-constructed DFA to a minimal,
// label-respecting DFA and completes it with a sink state so every
// (state, symbol) pair has a defined transition.
//
// The partition refinement here is the straightforward split-until-stable
// algorithm (Aho, Sethi, Ullman), not the O(n*|A|*log n) Hopcroft worklist
// variant: it is O(n^2*|A|), which the design notes call out as adequate
// for typical lexer grammars.
package minimize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shadowCow/lexgen/internal/dfa"
	"github.com/shadowCow/lexgen/internal/nfa"
	"github.com/shadowCow/lexgen/internal/rule"
)

// Minimize returns a new, minimized and completed DFA equivalent to d. d
// itself is never mutated.
func Minimize(d *dfa.DFA) *dfa.DFA {
	reached := reachable(d)
	live := liveStates(d, reached)

	if !live[d.Start] {
		return complete(&dfa.DFA{States: map[dfa.StateID]*dfa.State{}, Alphabet: d.Alphabet})
	}

	blocks := initialPartition(d, live)
	blocks = refine(d, live, blocks)
	minimized := rebuild(d, live, blocks)

	return complete(minimized)
}

// reachable finds every state reachable from d.Start by forward transitions.
func reachable(d *dfa.DFA) map[dfa.StateID]bool {
	seen := map[dfa.StateID]bool{d.Start: true}
	queue := []dfa.StateID{d.Start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, to := range d.States[cur].Trans {
			if !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
	}
	return seen
}

// liveStates finds every reached state that can still reach some accepting
// state, via a reverse-adjacency BFS seeded at the accepting states.
func liveStates(d *dfa.DFA, reached map[dfa.StateID]bool) map[dfa.StateID]bool {
	rev := make(map[dfa.StateID][]dfa.StateID)
	for id := range reached {
		for _, to := range d.States[id].Trans {
			if reached[to] {
				rev[to] = append(rev[to], id)
			}
		}
	}

	live := make(map[dfa.StateID]bool)
	var queue []dfa.StateID
	for id := range reached {
		if d.States[id].IsAccepting {
			live[id] = true
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, from := range rev[cur] {
			if !live[from] {
				live[from] = true
				queue = append(queue, from)
			}
		}
	}
	return live
}

// initialPartition buckets the non-accepting live states into one block and
// the accepting live states by the exact set of token kinds they carry:
// two accepting states start out equivalent only if they accept the same
// set of rules.
func initialPartition(d *dfa.DFA, live map[dfa.StateID]bool) [][]dfa.StateID {
	var nonAccepting []dfa.StateID
	byKinds := make(map[string][]dfa.StateID)

	for id := range live {
		st := d.States[id]
		if st.IsAccepting {
			key := tokenKindsKey(st.TokenKinds)
			byKinds[key] = append(byKinds[key], id)
		} else {
			nonAccepting = append(nonAccepting, id)
		}
	}

	var blocks [][]dfa.StateID
	if len(nonAccepting) > 0 {
		blocks = append(blocks, nonAccepting)
	}
	keys := make([]string, 0, len(byKinds))
	for k := range byKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		blocks = append(blocks, byKinds[k])
	}
	return blocks
}

// refine splits blocks until no block contains two states that transition
// into different blocks on some symbol. A transition into a non-live state
// (dropped by liveness pruning, or simply absent) is treated as a distinct
// "dead" target so states with and without it are never conflated.
func refine(d *dfa.DFA, live map[dfa.StateID]bool, blocks [][]dfa.StateID) [][]dfa.StateID {
	for {
		blockOf := indexBlocks(blocks)
		next := make([][]dfa.StateID, 0, len(blocks))
		changed := false

		for _, block := range blocks {
			if len(block) == 1 {
				next = append(next, block)
				continue
			}
			parts := make(map[string][]dfa.StateID)
			for _, s := range block {
				sig := signature(d, live, blockOf, s)
				parts[sig] = append(parts[sig], s)
			}
			if len(parts) > 1 {
				changed = true
			}
			for _, p := range parts {
				next = append(next, p)
			}
		}

		blocks = next
		if !changed {
			return blocks
		}
	}
}

func indexBlocks(blocks [][]dfa.StateID) map[dfa.StateID]int {
	idx := make(map[dfa.StateID]int)
	for b, block := range blocks {
		for _, s := range block {
			idx[s] = b
		}
	}
	return idx
}

func signature(d *dfa.DFA, live map[dfa.StateID]bool, blockOf map[dfa.StateID]int, s dfa.StateID) string {
	parts := make([]string, len(d.Alphabet))
	for i, c := range d.Alphabet {
		to, ok := d.States[s].Trans[c]
		if !ok || !live[to] {
			parts[i] = "-"
		} else {
			parts[i] = strconv.Itoa(blockOf[to])
		}
	}
	return strings.Join(parts, ",")
}

// rebuild constructs a fresh DFA with one state per final block.
func rebuild(d *dfa.DFA, live map[dfa.StateID]bool, blocks [][]dfa.StateID) *dfa.DFA {
	blockOf := indexBlocks(blocks)

	states := make(map[dfa.StateID]*dfa.State, len(blocks))
	for b, block := range blocks {
		rep := d.States[block[0]]
		newID := dfa.StateID(b)

		trans := make(map[rune]dfa.StateID)
		for c, to := range rep.Trans {
			if live[to] {
				trans[c] = dfa.StateID(blockOf[to])
			}
		}

		states[newID] = &dfa.State{
			Kernel:      unionKernels(d, block),
			Trans:       trans,
			IsAccepting: rep.IsAccepting,
			TokenKinds:  rep.TokenKinds,
		}
	}

	return &dfa.DFA{
		Start:    dfa.StateID(blockOf[d.Start]),
		States:   states,
		Alphabet: d.Alphabet,
	}
}

func unionKernels(d *dfa.DFA, block []dfa.StateID) []nfa.StateID {
	seen := make(map[nfa.StateID]bool)
	for _, s := range block {
		for _, k := range d.States[s].Kernel {
			seen[k] = true
		}
	}
	out := make([]nfa.StateID, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func tokenKindsKey(kinds []rule.TokenKind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}
