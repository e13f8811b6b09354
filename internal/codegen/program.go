package codegen

import (
	"golang.org/x/exp/slices"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/charset"
)

// bitset is a state set with bit i standing for state id i.
type bitset []uint64

func newBitset(words int) bitset {
	return make(bitset, words)
}

func (b bitset) set(id automaton.StateID) {
	b[id/64] |= 1 << (uint(id) % 64)
}

func (b bitset) has(id automaton.StateID) bool {
	return b[id/64]&(1<<(uint(id)%64)) != 0
}

func (b bitset) or(other bitset) {
	for i := range b {
		b[i] |= other[i]
	}
}

// step is one symbol transition with its target's epsilon closure
// precomputed.
type step struct {
	from    automaton.StateID
	symbols charset.Set
	closure bitset
}

// program is the table form of an NFA the generated matcher encodes.
// Every state set it tracks is epsilon closed, so stepping is a union of
// precomputed closures.
type program struct {
	words        int
	startClosure bitset
	acceptMask   bitset
	steps        []step
}

func newProgram(n *automaton.NFA) program {
	p := program{words: (n.Len() + 63) / 64}
	if p.words == 0 {
		p.words = 1
	}
	p.acceptMask = newBitset(p.words)
	for _, id := range n.Accepting() {
		p.acceptMask.set(id)
	}

	closures := make(map[automaton.StateID]bitset)
	closure := func(id automaton.StateID) bitset {
		if b, ok := closures[id]; ok {
			return b
		}
		set := n.NewStateSet(id)
		n.EpsilonClosure(set)
		b := newBitset(p.words)
		for _, member := range set.IDs() {
			b.set(member)
		}
		closures[id] = b
		return b
	}

	if n.Start() == automaton.NoState {
		p.startClosure = newBitset(p.words)
		return p
	}
	p.startClosure = closure(n.Start())

	ids := n.States()
	slices.Sort(ids)
	for _, id := range ids {
		for _, t := range n.State(id).Transitions {
			if t.Epsilon() {
				continue
			}
			p.steps = append(p.steps, step{from: id, symbols: t.Symbols, closure: closure(t.To)})
		}
	}
	return p
}
