package compiler

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/regnfa/internal/ast"
	"github.com/KromDaniel/regnfa/internal/charset"
)

func TestCompileShapes(t *testing.T) {
	a, b := ast.Literal('a'), ast.Literal('b')

	tests := []struct {
		name            string
		tree            *ast.Node
		wantStates      int
		wantTransitions int
	}{
		{"epsilon", ast.Epsilon(), 2, 1},
		{"literal", a, 3, 2},
		{"any", ast.Any(), 3, 2},
		{"class", ast.CharClass(false, 'x', 'y'), 3, 2},
		{"concat", ast.Concat(a, b), 8, 7},
		{"or", ast.Or(a, b), 8, 8},
		{"star", ast.Star(a), 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Compile(tt.tree, charset.DefaultAlphabet())

			assert.Equal(t, tt.wantStates, n.Len())
			assert.Equal(t, tt.wantTransitions, n.TransitionCount())
			assert.Len(t, n.Accepting(), 1, "exactly one accepting state")
			assert.Equal(t, n.Len(), len(n.States()), "every state reachable from start")
		})
	}
}

func TestCompileMatches(t *testing.T) {
	a, b := ast.Literal('a'), ast.Literal('b')

	tests := []struct {
		name   string
		tree   *ast.Node
		accept []string
		reject []string
	}{
		{"literal", a, []string{"a"}, []string{"", "b", "A", "aa"}},
		{"concat", ast.Concat(a, b), []string{"ab"}, []string{"a", "ba", "abb", ""}},
		{"star", ast.Star(a), []string{"", "a", "aaa"}, []string{"b", "ab"}},
		{"or", ast.Or(a, b), []string{"a", "b"}, []string{"ab", "", "c"}},
		{"epsilon", ast.Epsilon(), []string{""}, []string{"a"}},
		{"any", ast.Any(), []string{"a", "Z"}, []string{"", "ab", "1"}},
		{
			"complement class",
			ast.CharClass(true, 'a', 'b', 'c', 'A', 'B', 'C'),
			[]string{"d", "D", "z"},
			[]string{"a", "b", "c", "A", "B", "C", "1"},
		},
		{"plus", ast.Plus(a), []string{"a", "aa"}, []string{""}},
		{"quest", ast.Quest(a), []string{"", "a"}, []string{"aa"}},
		{"nil tree", nil, []string{""}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Compile(tt.tree, charset.DefaultAlphabet())
			for _, in := range tt.accept {
				assert.True(t, n.Run(in), "%s should accept %q", tt.tree, in)
			}
			for _, in := range tt.reject {
				assert.False(t, n.Run(in), "%s should reject %q", tt.tree, in)
			}
		})
	}
}

func TestCompileLiteralEveryLetter(t *testing.T) {
	alpha := charset.DefaultAlphabet()
	for _, c := range alpha.Symbols() {
		n := Compile(ast.Literal(c), alpha)
		require.True(t, n.Run(string(c)))
		for _, other := range alpha.Symbols() {
			if other != c {
				require.False(t, n.Run(string(other)), "literal %q accepted %q", c, other)
			}
		}
	}
}

func TestCompileCustomAlphabet(t *testing.T) {
	alpha := charset.NewAlphabet('0', '1')

	anyChar := Compile(ast.Any(), alpha)
	assert.True(t, anyChar.Run("0"))
	assert.False(t, anyChar.Run("a"))

	notZero := Compile(ast.CharClass(true, '0'), alpha)
	assert.True(t, notZero.Run("1"))
	assert.False(t, notZero.Run("0"))
}

func TestCompileEmptyComplementMatchesNothing(t *testing.T) {
	alpha := charset.NewAlphabet('a')
	n := Compile(ast.CharClass(true, 'a'), alpha)
	assert.False(t, n.Run(""))
	assert.False(t, n.Run("a"))
}

func TestCompileIndependentBuilds(t *testing.T) {
	c := New(Config{})
	first := c.Compile(ast.Literal('a'))
	second := c.Compile(ast.Literal('b'))

	assert.Equal(t, first.Len(), second.Len(), "ids restart per build")
	assert.True(t, first.Run("a"))
	assert.False(t, first.Run("b"))
	assert.True(t, second.Run("b"))
}

func TestCompileDeterministic(t *testing.T) {
	tree := ast.Star(ast.Or(ast.Literal('a'), ast.Concat(ast.Literal('b'), ast.Literal('c'))))
	n := Compile(tree, charset.DefaultAlphabet())
	for i := 0; i < 5; i++ {
		require.True(t, n.Run("abca"))
		require.False(t, n.Run("abcb"))
	}
}

func TestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	c := New(Config{Verbose: true})
	c.Logger().SetOutput(&buf)

	c.Compile(ast.Literal('a'))

	assert.Contains(t, buf.String(), "[regnfa] === NFA Construction ===")
	assert.Contains(t, buf.String(), "[regnfa] States: 3, transitions: 2")
}

func TestCompilerConcurrentUse(t *testing.T) {
	c := New(Config{})
	trees := []*ast.Node{
		ast.Literal('a'),
		ast.Star(ast.Or(ast.Literal('a'), ast.Literal('b'))),
		ast.Concat(ast.Any(), ast.CharClass(true, 'x')),
	}
	want := make([]int, len(trees))
	for i, tree := range trees {
		want[i] = c.Compile(tree).Len()
	}

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for _, tree := range trees {
				results[g] = append(results[g], c.Compile(tree).Len())
			}
		}(g)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(true)
	l.SetOutput(&buf)

	c := New(Config{Logger: l})
	assert.Same(t, l, c.Logger())
	c.Compile(ast.Literal('a'))
	assert.Contains(t, buf.String(), "States: 3, transitions: 2")
}

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false)
	l.SetOutput(&buf)
	l.Log("hidden %d", 1)
	l.Section("hidden")
	assert.Empty(t, buf.String())

	var nilLogger *Logger
	assert.False(t, nilLogger.Enabled())
	nilLogger.Log("no panic")
}
