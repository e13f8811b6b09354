package analysis

import (
	"errors"

	"golang.org/x/exp/slices"

	"github.com/KromDaniel/regnfa/internal/ast"
	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/compiler"
	"github.com/KromDaniel/regnfa/internal/parser"
)

// AmbiguitySummary is one flagged (state, input) pair without the loops.
type AmbiguitySummary struct {
	State int    `json:"state"`
	Input string `json:"input"`
	Loops int    `json:"loops"`
}

// AnalysisResult summarises a pattern: its automaton size and any
// structural ambiguity found in it.
type AnalysisResult struct {
	Pattern string `json:"pattern"`

	// FeatureLabels are derived from the syntax tree (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`

	States               int                `json:"states"`
	Transitions          int                `json:"transitions"`
	HasNestedQuantifiers bool               `json:"has_nested_quantifiers"`
	Ambiguous            bool               `json:"ambiguous"`
	Truncated            bool               `json:"truncated"`
	Ambiguities          []AmbiguitySummary `json:"ambiguities,omitempty"`
}

// AnalyzePattern parses, compiles with build and analyzes pattern. It
// returns an error only if the pattern is invalid; budget exhaustion sets
// Truncated.
func AnalyzePattern(pattern string, build compiler.Config, opts Options) (*AnalysisResult, error) {
	tree, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	nfa := compiler.New(build).Compile(tree)
	return Analyze(pattern, tree, nfa, opts), nil
}

// Analyze summarises an already compiled automaton.
func Analyze(pattern string, tree *ast.Node, nfa *automaton.NFA, opts Options) *AnalysisResult {
	report, err := FindLoops(nfa, opts)

	result := &AnalysisResult{
		Pattern:              pattern,
		FeatureLabels:        deriveFeatureLabels(tree),
		States:               nfa.Len(),
		Transitions:          nfa.TransitionCount(),
		HasNestedQuantifiers: ast.HasNestedStar(tree),
		Ambiguous:            report.Ambiguous(),
		Truncated:            errors.Is(err, ErrTruncated),
	}
	for _, amb := range report.Ambiguities() {
		result.Ambiguities = append(result.Ambiguities, AmbiguitySummary{
			State: int(amb.State),
			Input: amb.Input,
			Loops: len(amb.Loops),
		})
	}
	return result
}

// deriveFeatureLabels extracts feature labels from the tree structure.
// Labels are sorted alphabetically.
func deriveFeatureLabels(tree *ast.Node) []string {
	var labels []string

	if ast.HasOp(tree, ast.OpOr) {
		labels = append(labels, "Alternation")
	}
	if ast.HasOp(tree, ast.OpCharClass) || ast.HasOp(tree, ast.OpAny) {
		labels = append(labels, "CharClass")
	}
	if ast.HasOp(tree, ast.OpStar) {
		labels = append(labels, "Quantifiers")
	}
	if ast.HasNestedStar(tree) {
		labels = append(labels, "NestedQuantifiers")
	}
	if len(labels) == 0 {
		labels = append(labels, "Simple")
	}

	slices.Sort(labels)
	return labels
}
