// Package analysis detects structural ambiguity in Thompson NFAs: states
// that can be returned to by two different transition paths consuming the
// same input. Repeating that input multiplies live simulation threads, the
// precondition for exponential blow-up in a backtracking engine.
//
// Enumeration visits every transition-distinct path and is exponential in
// graph density in the worst case. Options.MaxPaths bounds the work.
package analysis

import (
	"errors"

	"github.com/KromDaniel/regnfa/internal/automaton"
)

// ErrTruncated is returned with a partial report when Options.MaxPaths is
// exhausted.
var ErrTruncated = errors.New("analysis truncated: path budget exhausted")

// Logger receives verbose analysis output. *compiler.Logger satisfies it.
type Logger interface {
	Log(format string, args ...interface{})
}

// Options tunes loop enumeration.
type Options struct {
	// MaxPaths caps the number of path extensions explored across all
	// states. Zero means unbounded.
	MaxPaths int
	Logger   Logger
}

// frame is one pending path of the depth-first traversal.
type frame struct {
	at    automaton.StateID
	path  Loop   // transitions taken so far, none repeated
	input []rune // symbols consumed so far
}

type finder struct {
	nfa    *automaton.NFA
	opts   Options
	pushes int
}

// FindLoops enumerates the loops of every state reachable from the start of
// n. The report has an entry for each such state, even when it has no loops.
// If the path budget runs out the partial report is returned with
// ErrTruncated.
func FindLoops(n *automaton.NFA, opts Options) (Report, error) {
	f := &finder{nfa: n, opts: opts}
	report := make(Report)
	for _, id := range n.States() {
		loops := make(InputLoops)
		report[id] = loops
		if !f.loopsAt(id, loops) {
			f.log("Stopped at state %d after %d paths", id, f.pushes)
			return report, ErrTruncated
		}
	}
	for _, amb := range report.Ambiguities() {
		f.log("State %d: %d loops consume %q", amb.State, len(amb.Loops), amb.Input)
	}
	return report, nil
}

// loopsAt records into loops every path that leaves start and returns to
// it. Traversal continues through start to find longer loops and stops only
// when a path has no unused outgoing transition. It reports false when the
// budget is exhausted.
func (f *finder) loopsAt(start automaton.StateID, loops InputLoops) bool {
	stack := []frame{{at: start}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var next []frame
		for _, t := range f.nfa.State(top.at).Transitions {
			if top.path.uses(t.ID) {
				continue
			}
			path := append(top.path[:len(top.path):len(top.path)], t.ID)

			if t.Epsilon() {
				next = append(next, frame{at: t.To, path: path, input: top.input})
				if t.To == start {
					loops.add(top.input, path)
				}
				continue
			}
			// each member symbol extends the consumed input separately
			for _, sym := range t.Symbols {
				input := append(top.input[:len(top.input):len(top.input)], sym)
				next = append(next, frame{at: t.To, path: path, input: input})
				if t.To == start {
					loops.add(input, path)
				}
			}
		}
		// reversed so the first transition is explored first
		for i := len(next) - 1; i >= 0; i-- {
			if !f.push(&stack, next[i]) {
				return false
			}
		}
	}
	return true
}

func (f *finder) push(stack *[]frame, fr frame) bool {
	if f.opts.MaxPaths > 0 && f.pushes >= f.opts.MaxPaths {
		return false
	}
	f.pushes++
	*stack = append(*stack, fr)
	return true
}

func (f *finder) log(format string, args ...interface{}) {
	if f.opts.Logger != nil {
		f.opts.Logger.Log(format, args...)
	}
}
