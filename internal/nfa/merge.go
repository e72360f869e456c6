package nfa

// renumbered returns a copy of n with every state id shifted by offset. The
// input NFA is left untouched, matching the rule that a finalized rule NFA
// is never mutated.
func renumbered(n *NFA, offset StateID) *NFA {
	mapping := make(map[StateID]StateID, len(n.States))
	for id := range n.States {
		mapping[id] = id + offset
	}

	states := make(map[StateID]*State, len(n.States))
	for id, st := range n.States {
		ns := newState(mapping[id])
		ns.TokenKind = st.TokenKind
		ns.HasKind = st.HasKind
		for c, targets := range st.Trans {
			set := make(map[StateID]bool, len(targets))
			for to := range targets {
				set[mapping[to]] = true
			}
			ns.Trans[c] = set
		}
		for to := range st.Epsilon {
			ns.Epsilon[mapping[to]] = true
		}
		states[mapping[id]] = ns
	}

	accepts := make(map[StateID]bool, len(n.Accepts))
	for id := range n.Accepts {
		accepts[mapping[id]] = true
	}

	return &NFA{Start: mapping[n.Start], Accepts: accepts, States: states}
}

// Merge combines the NFAs of all rules into one NFA: a fresh start state
// with epsilon-transitions to each rule NFA's (renumbered) start. Each
// accept state keeps the single token-kind label it was stamped with by
// Build; Merge never touches labels, only state identity. No epsilon-closure
// computation happens here, that is the subset constructor's job.
//
// Merge of zero NFAs (no rule produced a valid NFA) yields the empty-
// language NFA: a lone start state with no accepts.
func Merge(nfas []*NFA) *NFA {
	start := StateID(0)
	states := map[StateID]*State{start: newState(start)}
	accepts := make(map[StateID]bool)

	offset := StateID(1)
	for _, n := range nfas {
		rn := renumbered(n, offset)
		for id, st := range rn.States {
			states[id] = st
		}
		for id := range rn.Accepts {
			accepts[id] = true
		}
		states[start].Epsilon[rn.Start] = true
		offset += StateID(len(n.States))
	}

	return &NFA{Start: start, Accepts: accepts, States: states}
}
