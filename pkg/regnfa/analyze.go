package regnfa

import (
	"github.com/KromDaniel/regnfa/internal/analysis"
)

// AnalysisResult summarises a pattern without generating code. It carries
// JSON tags so it can be written out directly.
type AnalysisResult = analysis.AnalysisResult

// Analyze parses and compiles pattern and runs the ambiguity analyzer on it.
// An invalid pattern or invalid options return an error; an exhausted
// MaxPaths budget is reported through AnalysisResult.Truncated instead.
//
// Example:
//
//	result, err := regnfa.Analyze("(a|a)*", regnfa.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Ambiguous)     // true
//	fmt.Println(result.FeatureLabels) // ["Alternation", "Quantifiers"]
func Analyze(pattern string, opts Options) (*AnalysisResult, error) {
	build, err := opts.prepare()
	if err != nil {
		return nil, err
	}
	return analysis.AnalyzePattern(pattern, build, analysis.Options{
		MaxPaths: opts.MaxPaths,
		Logger:   build.Logger,
	})
}
