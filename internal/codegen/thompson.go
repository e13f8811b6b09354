package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/compiler"
)

// DefaultMaxStates bounds the automaton size accepted for generation.
const DefaultMaxStates = 4096

// Options configures matcher generation.
type Options struct {
	Name       string           // matcher type name, exported with UpperFirst
	Package    string           // package clause of the generated file
	Pattern    string           // recorded in the file header when set
	OutputFile string           // used by Generate only
	MaxStates  int              // 0 = DefaultMaxStates
	Logger     *compiler.Logger // may be nil
}

// Validate checks if the options are valid for Render.
func (o Options) Validate() error {
	if o.Name == "" {
		return errors.New("name cannot be empty")
	}
	// the type, Compiled<Name> and the lowercased table names must all be
	// identifiers, which rules out a leading '_' or digit
	if first, _ := utf8.DecodeRuneInString(o.Name); !unicode.IsLetter(first) {
		return fmt.Errorf("name %q must start with a letter", o.Name)
	}
	for _, id := range []string{UpperFirst(o.Name), StartClosureName(o.Name), AcceptMaskName(o.Name)} {
		if !token.IsIdentifier(id) {
			return fmt.Errorf("name %q is not a valid identifier", o.Name)
		}
	}
	if o.Package == "" {
		return errors.New("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a valid identifier", o.Package)
	}
	if o.MaxStates < 0 {
		return errors.New("max states cannot be negative")
	}
	return nil
}

// ThompsonGenerator renders a bitset simulation of an NFA. Thompson's
// algorithm tracks all active states at once, so the generated matcher runs
// in O(n*m) for n input runes and m states.
type ThompsonGenerator struct {
	nfa    *automaton.NFA
	opts   Options
	prog   program
	name   string
	logger *compiler.Logger
}

// NewThompsonGenerator prepares generation for n.
func NewThompsonGenerator(n *automaton.NFA, opts Options) (*ThompsonGenerator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	limit := opts.MaxStates
	if limit == 0 {
		limit = DefaultMaxStates
	}
	if n.Len() > limit {
		return nil, fmt.Errorf("automaton has %d states, limit is %d", n.Len(), limit)
	}
	return &ThompsonGenerator{
		nfa:    n,
		opts:   opts,
		prog:   newProgram(n),
		name:   UpperFirst(opts.Name),
		logger: opts.Logger,
	}, nil
}

// File builds the generated source file.
func (g *ThompsonGenerator) File() *jen.File {
	g.logger.Section("Code Generation")
	g.logger.Log("Generating Thompson NFA matcher %s (states: %d, words: %d, steps: %d)",
		g.name, g.nfa.Len(), g.prog.words, len(g.prog.steps))

	f := jen.NewFile(g.opts.Package)
	if g.opts.Pattern != "" {
		f.HeaderComment(fmt.Sprintf("Code generated by regnfa for pattern: %s. DO NOT EDIT.", g.opts.Pattern))
	} else {
		f.HeaderComment("Code generated by regnfa. DO NOT EDIT.")
	}

	f.Comment(fmt.Sprintf("%s matches whole strings against a %d-state NFA.", g.name, g.nfa.Len()))
	f.Type().Id(g.name).Struct()
	f.Line()
	f.Var().Id("Compiled" + g.name).Op("=").Id(g.name).Values()
	f.Line()

	f.Var().Id(StartClosureName(g.name)).Op("=").Add(g.words(g.prog.startClosure))
	f.Var().Id(AcceptMaskName(g.name)).Op("=").Add(g.words(g.prog.acceptMask))
	f.Line()

	f.Comment("MatchString reports whether the whole of input is accepted.")
	f.Func().Params(jen.Id(g.name)).Id("MatchString").
		Params(jen.Id(InputName).String()).
		Params(jen.Bool()).
		Block(g.generateMatchFunction()...)
	return f
}

// words renders a bitset as a [words]uint64 composite literal.
func (g *ThompsonGenerator) words(b bitset) *jen.Statement {
	values := make([]jen.Code, len(b))
	for i, w := range b {
		values[i] = jen.Lit(w)
	}
	return jen.Index(jen.Lit(g.prog.words)).Uint64().Values(values...)
}

func (g *ThompsonGenerator) generateMatchFunction() []jen.Code {
	code := []jen.Code{
		jen.Id(CurrentName).Op(":=").Id(StartClosureName(g.name)),
	}

	if len(g.prog.steps) == 0 {
		// nothing consumes input, only the empty string can match
		code = append(code,
			jen.If(jen.Len(jen.Id(InputName)).Op(">").Lit(0)).Block(jen.Return(jen.False())),
		)
	} else {
		code = append(code,
			jen.For(jen.List(jen.Id("_"), jen.Id(CharName)).Op(":=").Range().Id(InputName)).
				Block(g.generateTransitionBlock()...),
		)
	}

	code = append(code,
		jen.Line(),
		jen.Comment("Check if any accepting state is active"),
		jen.For(jen.Id(IndexName).Op(":=").Range().Id(CurrentName)).Block(
			jen.If(
				jen.Id(CurrentName).Index(jen.Id(IndexName)).Op("&").
					Id(AcceptMaskName(g.name)).Index(jen.Id(IndexName)).Op("!=").Lit(0),
			).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
	return code
}

// generateTransitionBlock generates the per-rune step: each symbol
// transition whose source is active ORs in its target's closure.
func (g *ThompsonGenerator) generateTransitionBlock() []jen.Code {
	block := []jen.Code{
		jen.Var().Id(NextName).Index(jen.Lit(g.prog.words)).Uint64(),
	}

	for _, st := range g.prog.steps {
		word, bit := int(st.from)/64, uint64(1)<<(uint(st.from)%64)
		var updates []jen.Code
		for i, w := range st.closure {
			if w != 0 {
				updates = append(updates, jen.Id(NextName).Index(jen.Lit(i)).Op("|=").Lit(w))
			}
		}
		block = append(block,
			jen.Comment(fmt.Sprintf("state %d on %s", st.from, st.symbols)),
			jen.If(
				jen.Id(CurrentName).Index(jen.Lit(word)).Op("&").Lit(bit).Op("!=").Lit(0).
					Op("&&").Add(generateRuneCondition(st.symbols)),
			).Block(updates...),
		)
	}

	block = append(block,
		jen.Line(),
		jen.Comment("Check for dead end"),
		jen.If(jen.Id(NextName).Op("==").Parens(jen.Index(jen.Lit(g.prog.words)).Uint64().Values())).Block(
			jen.Return(jen.False()),
		),
		jen.Id(CurrentName).Op("=").Id(NextName),
	)
	return block
}

// Render writes the generated matcher for n to w.
func Render(w io.Writer, n *automaton.NFA, opts Options) error {
	g, err := NewThompsonGenerator(n, opts)
	if err != nil {
		return err
	}
	if err := g.File().Render(w); err != nil {
		return fmt.Errorf("failed to render matcher: %w", err)
	}
	return nil
}

// Generate writes the generated matcher for n to opts.OutputFile.
func Generate(n *automaton.NFA, opts Options) error {
	if opts.OutputFile == "" {
		return errors.New("output file cannot be empty")
	}
	g, err := NewThompsonGenerator(n, opts)
	if err != nil {
		return err
	}
	if err := g.File().Save(opts.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	g.logger.Log("Wrote %s", opts.OutputFile)
	return nil
}
