package analysis

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/KromDaniel/regnfa/internal/automaton"
)

// Loop is the transition-id sequence of a path from a state back to itself.
type Loop []automaton.TransitionID

func (l Loop) uses(id automaton.TransitionID) bool {
	return slices.Contains(l, id)
}

// InputLoops maps consumed input to the loops that consume it.
type InputLoops map[string][]Loop

func (m InputLoops) add(input []rune, path Loop) {
	key := string(input)
	m[key] = append(m[key], path)
}

// Report maps a state id to its loops keyed by consumed input.
type Report map[automaton.StateID]InputLoops

// Ambiguity is a state and input with two or more distinct loops.
type Ambiguity struct {
	State automaton.StateID
	Input string
	Loops []Loop
}

// Ambiguities lists every flagged (state, input) pair ordered by state id
// then input.
func (r Report) Ambiguities() []Ambiguity {
	var out []Ambiguity
	ids := maps.Keys(r)
	slices.Sort(ids)
	for _, id := range ids {
		inputs := maps.Keys(r[id])
		slices.Sort(inputs)
		for _, input := range inputs {
			if loops := r[id][input]; len(loops) > 1 {
				out = append(out, Ambiguity{State: id, Input: input, Loops: loops})
			}
		}
	}
	return out
}

// Ambiguous reports whether any state has two loops consuming the same
// input.
func (r Report) Ambiguous() bool {
	for _, loops := range r {
		for _, l := range loops {
			if len(l) > 1 {
				return true
			}
		}
	}
	return false
}

// LoopCount returns the number of loops recorded at state for input.
func (r Report) LoopCount(state automaton.StateID, input string) int {
	return len(r[state][input])
}
