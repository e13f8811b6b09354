// Package automaton holds the arena-backed NFA graph together with its
// simulator.
//
// States live in a growable slice indexed by StateID and transitions
// reference their targets by id, so cycles introduced by Star need no
// special ownership handling. Once built, an NFA is only read; Run and the
// analyzer may be called concurrently on the same value.
package automaton

import (
	"fmt"

	"github.com/KromDaniel/regnfa/internal/charset"
)

// StateID identifies a state within one NFA. It doubles as the arena index.
type StateID int

// TransitionID identifies a transition within one NFA. Transition ids are
// used only to tell paths apart during analysis.
type TransitionID int

// NoState is the start of an NFA that has not been given one.
const NoState StateID = -1

// Transition is an outgoing edge. An empty Symbols set is an epsilon move.
type Transition struct {
	ID      TransitionID
	Symbols charset.Set
	To      StateID
}

// Epsilon reports whether the transition consumes no input.
func (t Transition) Epsilon() bool {
	return t.Symbols.Empty()
}

func (t Transition) String() string {
	return fmt.Sprintf("-%s[%d]-> %d", t.Symbols, t.ID, t.To)
}

// State is an automaton node.
type State struct {
	ID          StateID
	Accepting   bool
	Transitions []Transition
}

// NFA is a nondeterministic finite automaton with a single start state.
type NFA struct {
	states      []State
	start       StateID
	transitions int
}

// New returns an empty automaton with no start state.
func New() *NFA {
	return &NFA{start: NoState}
}

// AddState allocates a fresh non-accepting state.
func (n *NFA) AddState() StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, State{ID: id})
	return id
}

// AddTransition appends an edge from one state to another and returns its
// id. Existing transitions are never rewired.
func (n *NFA) AddTransition(from StateID, symbols charset.Set, to StateID) TransitionID {
	n.mustExist(from)
	n.mustExist(to)
	id := TransitionID(n.transitions)
	n.transitions++
	n.states[from].Transitions = append(n.states[from].Transitions, Transition{
		ID:      id,
		Symbols: symbols,
		To:      to,
	})
	return id
}

// AddEpsilon appends an epsilon edge.
func (n *NFA) AddEpsilon(from, to StateID) TransitionID {
	return n.AddTransition(from, nil, to)
}

// SetStart designates the start state.
func (n *NFA) SetStart(id StateID) {
	n.mustExist(id)
	n.start = id
}

// SetAccepting marks a state as accepting.
func (n *NFA) SetAccepting(id StateID) {
	n.mustExist(id)
	n.states[id].Accepting = true
}

func (n *NFA) mustExist(id StateID) {
	if id < 0 || int(id) >= len(n.states) {
		panic(fmt.Sprintf("automaton: state %d out of range [0,%d)", id, len(n.states)))
	}
}

// Start returns the start state id.
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given id. The returned transitions must
// not be modified.
func (n *NFA) State(id StateID) State {
	n.mustExist(id)
	return n.states[id]
}

// Len returns the number of allocated states.
func (n *NFA) Len() int {
	return len(n.states)
}

// TransitionCount returns the number of allocated transitions.
func (n *NFA) TransitionCount() int {
	return n.transitions
}

// States returns the ids of all states reachable from the start, in
// breadth-first discovery order.
func (n *NFA) States() []StateID {
	if n.start == NoState {
		return nil
	}
	seen := make([]bool, len(n.states))
	order := []StateID{n.start}
	seen[n.start] = true
	for i := 0; i < len(order); i++ {
		for _, t := range n.states[order[i]].Transitions {
			if !seen[t.To] {
				seen[t.To] = true
				order = append(order, t.To)
			}
		}
	}
	return order
}

// Accepting returns the ids of all accepting states in id order.
func (n *NFA) Accepting() []StateID {
	var ids []StateID
	for _, s := range n.states {
		if s.Accepting {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
