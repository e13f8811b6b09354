package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/charset"
	"github.com/KromDaniel/regnfa/internal/compiler"
	regparser "github.com/KromDaniel/regnfa/internal/parser"
)

func compilePattern(t *testing.T, pattern string) *automaton.NFA {
	t.Helper()
	tree, err := regparser.Parse(pattern)
	require.NoError(t, err)
	return compiler.Compile(tree, charset.DefaultAlphabet())
}

// match interprets the program the way the generated MatchString does.
func (p program) match(input string) bool {
	current := append(bitset(nil), p.startClosure...)
	for _, c := range input {
		next := newBitset(p.words)
		for _, st := range p.steps {
			if current.has(st.from) && st.symbols.Contains(c) {
				next.or(st.closure)
			}
		}
		current = next
	}
	for i := range current {
		if current[i]&p.acceptMask[i] != 0 {
			return true
		}
	}
	return false
}

func TestProgramAgreesWithRun(t *testing.T) {
	tests := []struct {
		pattern string
		inputs  []string
	}{
		{"", []string{"", "a"}},
		{"a", []string{"", "a", "b", "aa"}},
		{"(a*b?)+", []string{"", "a", "b", "ab", "ba", "bab", "c"}},
		{"ab.+c", []string{"abbbc", "abbc", "abc", "ac", "abXyzc"}},
		{"[^a-cA-C]", []string{"a", "d", "D", "C"}},
		{"(foo|bar)*baz", []string{"baz", "foobaz", "barfoobaz", "fooba"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := compilePattern(t, tt.pattern)
			p := newProgram(n)
			for _, in := range tt.inputs {
				assert.Equal(t, n.Run(in), p.match(in), "input %q", in)
			}
		})
	}
}

func TestProgramMultiWord(t *testing.T) {
	// more than 64 states forces several bitset words
	n := compilePattern(t, "abcdefghijklmnopqrstuvwxyz")
	require.Greater(t, n.Len(), 64)

	p := newProgram(n)
	assert.Greater(t, p.words, 1)
	assert.True(t, p.match("abcdefghijklmnopqrstuvwxyz"))
	assert.False(t, p.match("abcdefghijklmnopqrstuvwxy"))
}

func TestRenderProducesValidGo(t *testing.T) {
	patterns := []string{"", "a", "(a*b?)+", "ab.+c", "abcdefghijklmnopqrstuvwxyz"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, compilePattern(t, pattern), Options{
				Name:    "matcher",
				Package: "generated",
				Pattern: pattern,
			})
			require.NoError(t, err)

			src := buf.String()
			assert.Contains(t, src, "package generated")
			assert.Contains(t, src, "type Matcher struct{}")
			assert.Contains(t, src, "var CompiledMatcher = Matcher{}")
			assert.Contains(t, src, "func (Matcher) MatchString(input string) bool")
			assert.Contains(t, src, "DO NOT EDIT.")

			_, err = parser.ParseFile(token.NewFileSet(), "matcher.go", src, 0)
			assert.NoError(t, err)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid", Options{Name: "Email", Package: "gen"}, false},
		{"lower name", Options{Name: "email", Package: "gen"}, false},
		{"no name", Options{Package: "gen"}, true},
		{"bad name", Options{Name: "my matcher", Package: "gen"}, true},
		{"no package", Options{Name: "Email"}, true},
		{"bad package", Options{Name: "Email", Package: "a-b"}, true},
		{"leading underscore", Options{Name: "_x", Package: "gen"}, true},
		{"blank name", Options{Name: "_", Package: "gen"}, true},
		{"leading digit", Options{Name: "9lives", Package: "gen"}, true},
		{"negative limit", Options{Name: "Email", Package: "gen", MaxStates: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRenderRejectsUnformattableName(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, compilePattern(t, "a"), Options{Name: "_x", Package: "gen"})
	assert.ErrorContains(t, err, "must start with a letter")
	assert.Zero(t, buf.Len())
}

func TestRenderStateLimit(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, compilePattern(t, "abc"), Options{Name: "X", Package: "p", MaxStates: 4})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestGenerateWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "matcher.go")
	err := Generate(compilePattern(t, "a|b"), Options{Name: "AorB", Package: "gen", OutputFile: out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (AorB) MatchString(input string) bool")

	assert.Error(t, Generate(compilePattern(t, "a"), Options{Name: "A", Package: "gen"}))
}

func TestGenerateLogs(t *testing.T) {
	var log bytes.Buffer
	logger := compiler.NewLogger(true)
	logger.SetOutput(&log)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, compilePattern(t, "a"), Options{Name: "A", Package: "gen", Logger: logger}))
	assert.Contains(t, log.String(), "Generating Thompson NFA matcher A")
}
