// Package regnfa compiles regular-expression syntax trees into Thompson
// NFAs, matches whole strings against them and reports structural
// ambiguity: states reachable by two or more distinct loops consuming the
// same input, the usual cause of exponential backtracking.
package regnfa

import (
	"fmt"

	"github.com/KromDaniel/regnfa/internal/analysis"
	"github.com/KromDaniel/regnfa/internal/ast"
	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/charset"
	"github.com/KromDaniel/regnfa/internal/codegen"
	"github.com/KromDaniel/regnfa/internal/compiler"
	"github.com/KromDaniel/regnfa/internal/config"
	"github.com/KromDaniel/regnfa/internal/parser"
)

type (
	// NFA is a compiled automaton. It is safe for concurrent reads.
	NFA = automaton.NFA
	// Node is a syntax tree node.
	Node = ast.Node
	// Report maps state ids to consumed inputs and the loops consuming them.
	Report = analysis.Report
	// Loop is a transition-distinct path from a state back to itself.
	Loop = analysis.Loop
	// Ambiguity is one (state, input) pair with two or more loops.
	Ambiguity = analysis.Ambiguity
)

var (
	// ErrInvalidPattern is returned for patterns the parser rejects.
	ErrInvalidPattern = parser.ErrInvalidPattern
	// ErrTruncated is returned when Options.MaxPaths is exhausted.
	ErrTruncated = analysis.ErrTruncated
)

// Options configures compilation and analysis. The zero value uses the
// default alphabet (A-Za-z) with an unbounded analyzer.
type Options struct {
	// Alphabet is the symbol universe for '.' and complemented classes,
	// written like a class body, e.g. "a-zA-Z0-9_".
	Alphabet string

	// MaxPaths caps the DFS pushes of FindAmbiguity. 0 means unbounded.
	MaxPaths int

	// Verbose logs construction and analysis to stderr.
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	_, err := o.compilerConfig()
	return err
}

// compilerConfig checks o and resolves it into the builder configuration
// shared by compilation and analysis.
func (o Options) compilerConfig() (compiler.Config, error) {
	alphabet, err := charset.ParseAlphabet(o.Alphabet)
	if err != nil {
		return compiler.Config{}, fmt.Errorf("alphabet: %w", err)
	}
	if o.MaxPaths < 0 {
		return compiler.Config{}, fmt.Errorf("max paths cannot be negative, got %d", o.MaxPaths)
	}
	return compiler.Config{Alphabet: alphabet, Logger: compiler.NewLogger(o.Verbose)}, nil
}

// LoadOptions reads Options from a .toml, .yaml, .yml or .json file.
func LoadOptions(path string) (Options, error) {
	f, err := config.Load(path)
	if err != nil {
		return Options{}, err
	}
	opts := Options{Alphabet: f.Alphabet, MaxPaths: f.MaxPaths, Verbose: f.Verbose}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

func (o Options) prepare() (compiler.Config, error) {
	build, err := o.compilerConfig()
	if err != nil {
		return compiler.Config{}, fmt.Errorf("invalid options: %w", err)
	}
	return build, nil
}

// Compile builds the NFA for tree over the default alphabet. It never fails.
func Compile(tree *Node) *NFA {
	return compiler.Compile(tree, charset.DefaultAlphabet())
}

// CompileWithOptions builds the NFA for tree using opts.
func CompileWithOptions(tree *Node, opts Options) (*NFA, error) {
	build, err := opts.prepare()
	if err != nil {
		return nil, err
	}
	return compiler.New(build).Compile(tree), nil
}

// CompilePattern parses pattern and builds its NFA.
func CompilePattern(pattern string, opts Options) (*NFA, error) {
	tree, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return CompileWithOptions(tree, opts)
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(pattern string) *NFA {
	n, err := CompilePattern(pattern, Options{})
	if err != nil {
		panic(err)
	}
	return n
}

// Matches reports whether n accepts the whole of input.
func Matches(n *NFA, input string) bool {
	return n.Run(input)
}

// FindAmbiguity enumerates the loops of every state in n. A report with
// Ambiguous() == true predicts exponential thread growth on repeated input.
// With MaxPaths set the partial report is returned along with ErrTruncated.
func FindAmbiguity(n *NFA, opts Options) (Report, error) {
	build, err := opts.prepare()
	if err != nil {
		return nil, err
	}
	return analysis.FindLoops(n, analysis.Options{MaxPaths: opts.MaxPaths, Logger: build.Logger})
}

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// Name is the matcher type (e.g., "Ident" generates "type Ident struct{}")
	Name string

	// Package is the Go package name for the generated code
	Package string

	// OutputFile is the path where generated code will be written
	OutputFile string
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	return codegen.Options{Name: o.Name, Package: o.Package}.Validate()
}

// Generate writes a standalone Go matcher for pattern to gen.OutputFile.
func Generate(pattern string, opts Options, gen GenerateOptions) error {
	if err := gen.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	n, err := CompilePattern(pattern, opts)
	if err != nil {
		return err
	}
	if err := codegen.Generate(n, codegen.Options{
		Name:       gen.Name,
		Package:    gen.Package,
		Pattern:    pattern,
		OutputFile: gen.OutputFile,
		Logger:     compiler.NewLogger(opts.Verbose),
	}); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
