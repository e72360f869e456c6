package minimize

import (
	"sort"

	"github.com/shadowCow/lexgen/internal/dfa"
)

// complete adds exactly one sink state to d and fills every missing
// (state, symbol) transition with it, so the result is total over the
// alphabet observed on its own transitions. If d has no transitions at all
// (the empty-language case), the original alphabet is used instead so the
// sink still has explicit self-loops rather than silently degrading to "no
// transition" everywhere.
func complete(d *dfa.DFA) *dfa.DFA {
	alphabet := transitionAlphabet(d)
	if len(alphabet) == 0 {
		alphabet = d.Alphabet
	}

	sinkID := nextFreeID(d)
	sink := &dfa.State{
		Trans:  make(map[rune]dfa.StateID, len(alphabet)),
		IsSink: true,
	}
	for _, c := range alphabet {
		sink.Trans[c] = sinkID
	}

	for _, st := range d.States {
		for _, c := range alphabet {
			if _, ok := st.Trans[c]; !ok {
				st.Trans[c] = sinkID
			}
		}
	}

	d.States[sinkID] = sink
	if len(d.States) == 1 {
		d.Start = sinkID
	}
	d.Alphabet = alphabet

	return d
}

func nextFreeID(d *dfa.DFA) dfa.StateID {
	var max dfa.StateID = -1
	for id := range d.States {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func transitionAlphabet(d *dfa.DFA) []rune {
	seen := make(map[rune]bool)
	for _, st := range d.States {
		for c := range st.Trans {
			seen[c] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
