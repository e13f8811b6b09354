package automaton

// StateSet is a set of active states. Iteration order is insertion order.
type StateSet struct {
	dense  []StateID
	member []bool
}

// NewStateSet returns a set sized for this automaton containing ids.
func (n *NFA) NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{member: make([]bool, len(n.states))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was new.
func (s *StateSet) Add(id StateID) bool {
	if s.member[id] {
		return false
	}
	s.member[id] = true
	s.dense = append(s.dense, id)
	return true
}

// Contains reports whether id is in the set.
func (s *StateSet) Contains(id StateID) bool {
	return id >= 0 && int(id) < len(s.member) && s.member[id]
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int {
	return len(s.dense)
}

// IDs returns a copy of the members in insertion order.
func (s *StateSet) IDs() []StateID {
	return append([]StateID(nil), s.dense...)
}

// EpsilonClosure extends set in place with every state reachable through
// epsilon transitions. The membership check makes it terminate on epsilon
// cycles; closing an already closed set leaves it unchanged.
func (n *NFA) EpsilonClosure(set *StateSet) {
	for i := 0; i < len(set.dense); i++ {
		for _, t := range n.states[set.dense[i]].Transitions {
			if t.Epsilon() {
				set.Add(t.To)
			}
		}
	}
}

// Step returns the states reached from set by consuming c. States with no
// matching transition are dropped.
func (n *NFA) Step(set *StateSet, c rune) *StateSet {
	next := n.NewStateSet()
	for _, id := range set.dense {
		for _, t := range n.states[id].Transitions {
			if !t.Epsilon() && t.Symbols.Contains(c) {
				next.Add(t.To)
			}
		}
	}
	return next
}

// Run reports whether the automaton accepts the whole of input. There is no
// substring search: every rune must be consumed.
func (n *NFA) Run(input string) bool {
	if n.start == NoState {
		return false
	}
	current := n.NewStateSet(n.start)
	for _, c := range input {
		n.EpsilonClosure(current)
		current = n.Step(current, c)
		if current.Len() == 0 {
			return false
		}
	}
	n.EpsilonClosure(current)
	for _, id := range current.dense {
		if n.states[id].Accepting {
			return true
		}
	}
	return false
}
