package nfa

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

func sortedTargets(targets map[StateID]bool) []StateID {
	ids := make([]StateID, 0, len(targets))
	for id := range targets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DotNodes implements dotexport.Graph.
func (n *NFA) DotNodes() []dotexport.Node {
	ids := sortedStateIDs(n.States)
	nodes := make([]dotexport.Node, 0, len(ids))
	for _, id := range ids {
		st := n.States[id]
		var labels []string
		if st.HasKind {
			labels = []string{string(st.TokenKind)}
		}
		nodes = append(nodes, dotexport.Node{ID: int(id), Accepting: n.Accepts[id], Labels: labels})
	}
	return nodes
}

// DotEdges implements dotexport.Graph.
func (n *NFA) DotEdges() []dotexport.Edge {
	var edges []dotexport.Edge
	for _, id := range sortedStateIDs(n.States) {
		st := n.States[id]
		var symbols []rune
		for c := range st.Trans {
			symbols = append(symbols, c)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, c := range symbols {
			for _, to := range sortedTargets(st.Trans[c]) {
				edges = append(edges, dotexport.Edge{From: int(id), To: int(to), Symbol: string(c)})
			}
		}
		for _, to := range sortedTargets(st.Epsilon) {
			edges = append(edges, dotexport.Edge{From: int(id), To: int(to), Epsilon: true})
		}
	}
	return edges
}
