package dfa

import (
	"sort"

	"github.com/shadowCow/lexgen/internal/dotexport"
)

func sortedStateIDs(states map[StateID]*State) []StateID {
	ids := make([]StateID, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DotNodes implements dotexport.Graph.
func (d *DFA) DotNodes() []dotexport.Node {
	ids := sortedStateIDs(d.States)
	nodes := make([]dotexport.Node, 0, len(ids))
	for _, id := range ids {
		st := d.States[id]
		var labels []string
		for _, k := range st.TokenKinds {
			labels = append(labels, string(k))
		}
		nodes = append(nodes, dotexport.Node{ID: int(id), Accepting: st.IsAccepting, Labels: labels})
	}
	return nodes
}

// DotEdges implements dotexport.Graph.
func (d *DFA) DotEdges() []dotexport.Edge {
	var edges []dotexport.Edge
	for _, id := range sortedStateIDs(d.States) {
		st := d.States[id]
		var symbols []rune
		for c := range st.Trans {
			symbols = append(symbols, c)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, c := range symbols {
			edges = append(edges, dotexport.Edge{From: int(id), To: int(st.Trans[c]), Symbol: string(c)})
		}
	}
	return edges
}
