// Package compiler translates syntax trees into NFAs using Thompson's
// construction.
package compiler

import (
	"fmt"

	"github.com/KromDaniel/regnfa/internal/ast"
	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/charset"
)

// Config holds the configuration for NFA construction.
type Config struct {
	Alphabet charset.Alphabet // universe for Any and complemented classes
	Verbose  bool             // log construction statistics
	Logger   *Logger          // overrides Verbose when set
}

// Compiler builds automata. Each Compile call uses a fresh arena, so state
// and transition ids are unique within a build, and a Compiler may be used
// from several goroutines at once.
type Compiler struct {
	config Config
	logger *Logger
}

// build is the state of one Compile call.
type build struct {
	nfa      *automaton.NFA
	alphabet charset.Alphabet
	logger   *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	logger := config.Logger
	if logger == nil {
		logger = NewLogger(config.Verbose)
	}
	return &Compiler{
		config: config,
		logger: logger,
	}
}

// Logger returns the compiler's verbose logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Compile builds the automaton for tree. Construction is total: every
// well-formed tree yields an automaton with one start and one accepting
// state. A nil tree is treated as Epsilon.
func (c *Compiler) Compile(tree *ast.Node) *automaton.NFA {
	b := &build{nfa: automaton.New(), alphabet: c.config.Alphabet, logger: c.logger}

	start, end := b.convert(tree)
	b.nfa.SetStart(start)
	// the only place accepting is ever assigned
	b.nfa.SetAccepting(end)

	c.logger.Section("NFA Construction")
	c.logger.Log("Tree: %s", tree)
	c.logger.Log("Alphabet: %s", c.config.Alphabet)
	c.logger.Log("States: %d, transitions: %d", b.nfa.Len(), b.nfa.TransitionCount())
	c.logger.Log("Start: %d, accepting: %d", start, end)
	return b.nfa
}

// Compile builds tree over alphabet with a throwaway compiler.
func Compile(tree *ast.Node, alphabet charset.Alphabet) *automaton.NFA {
	return New(Config{Alphabet: alphabet}).Compile(tree)
}

// convert returns the entry and exit state of the fragment for n.
// Composition only adds epsilon edges between existing exits and entries.
func (b *build) convert(n *ast.Node) (automaton.StateID, automaton.StateID) {
	if n == nil {
		n = ast.Epsilon()
	}

	switch n.Op {
	case ast.OpEpsilon:
		start, end := b.nfa.AddState(), b.nfa.AddState()
		b.nfa.AddEpsilon(start, end)
		return start, end

	case ast.OpAny:
		return b.consume(b.alphabet.Symbols())

	case ast.OpLiteral:
		return b.consume(charset.New(n.Rune))

	case ast.OpCharClass:
		chars := charset.New(n.Chars...)
		if n.Complement {
			chars = b.alphabet.Complement(chars)
		}
		return b.consume(chars)

	case ast.OpConcat:
		start := b.nfa.AddState()
		s1, e1 := b.convert(n.Sub[0])
		s2, e2 := b.convert(n.Sub[1])
		end := b.nfa.AddState()
		b.nfa.AddEpsilon(start, s1)
		b.nfa.AddEpsilon(e1, s2)
		b.nfa.AddEpsilon(e2, end)
		return start, end

	case ast.OpOr:
		start := b.nfa.AddState()
		s1, e1 := b.convert(n.Sub[0])
		s2, e2 := b.convert(n.Sub[1])
		end := b.nfa.AddState()
		b.nfa.AddEpsilon(start, s1)
		b.nfa.AddEpsilon(start, s2)
		b.nfa.AddEpsilon(e1, end)
		b.nfa.AddEpsilon(e2, end)
		return start, end

	case ast.OpStar:
		start := b.nfa.AddState()
		bodyStart, bodyEnd := b.convert(n.Sub[0])
		end := b.nfa.AddState()
		b.nfa.AddEpsilon(start, bodyStart)
		b.nfa.AddEpsilon(bodyStart, bodyEnd) // zero iterations
		b.nfa.AddEpsilon(bodyEnd, bodyStart) // repeat
		b.nfa.AddEpsilon(bodyEnd, end)
		return start, end

	default:
		panic(fmt.Sprintf("compiler: unknown syntax tree op %v", n.Op))
	}
}

// consume builds entry -ε-> mid -symbols-> exit. An empty symbol set would
// read as epsilon, so the symbol edge is left out and exit is unreachable.
func (b *build) consume(symbols charset.Set) (automaton.StateID, automaton.StateID) {
	start, mid, end := b.nfa.AddState(), b.nfa.AddState(), b.nfa.AddState()
	b.nfa.AddEpsilon(start, mid)
	if symbols.Empty() {
		b.logger.Log("Empty character set at state %d matches nothing", mid)
		return start, end
	}
	b.nfa.AddTransition(mid, symbols, end)
	return start, end
}
