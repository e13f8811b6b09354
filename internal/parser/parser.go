// Package parser turns textual patterns into syntax trees.
//
// Supported syntax: literals, '\' escapes, '.', groups, '|', and the postfix
// operators '*', '+' and '?', plus bracket classes with ranges and a leading
// '^' for negation. '+' and '?' are desugared onto Concat, Star and Or.
package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/KromDaniel/regnfa/internal/ast"
)

// ErrInvalidPattern is the only error Parse returns; the underlying cause is
// wrapped with it.
var ErrInvalidPattern = errors.New("invalid regex pattern")

// Parse parses pattern into a syntax tree. On failure no partial tree is
// returned.
func Parse(pattern string) (*ast.Node, error) {
	if pattern == "" {
		return ast.Epsilon(), nil
	}
	parsed, err := patternParser.ParseString("", pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	tree, err := parsed.Body.node()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return tree, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) *ast.Node {
	tree, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return tree
}

func (a *alternation) node() (*ast.Node, error) {
	if a == nil {
		return ast.Epsilon(), nil
	}
	left, err := a.Head.node()
	if err != nil {
		return nil, err
	}
	for _, b := range a.Tail {
		right, err := b.Body.node()
		if err != nil {
			return nil, err
		}
		left = ast.Or(left, right)
	}
	return left, nil
}

func (c *concatenation) node() (*ast.Node, error) {
	if c == nil || len(c.Terms) == 0 {
		return ast.Epsilon(), nil
	}
	var left *ast.Node
	for _, term := range c.Terms {
		right, err := term.node()
		if err != nil {
			return nil, err
		}
		if left == nil {
			left = right
		} else {
			left = ast.Concat(left, right)
		}
	}
	return left, nil
}

func (r *repetition) node() (*ast.Node, error) {
	n, err := r.Atom.node()
	if err != nil {
		return nil, err
	}
	for _, op := range r.Ops {
		switch op {
		case "*":
			n = ast.Star(n)
		case "+":
			n = ast.Plus(n)
		case "?":
			n = ast.Quest(n)
		}
	}
	return n, nil
}

func (a *atom) node() (*ast.Node, error) {
	switch {
	case a.Group != nil:
		return a.Group.Body.node()
	case a.Class != nil:
		return a.Class.node()
	case a.Any:
		return ast.Any(), nil
	case a.Char != nil:
		return ast.Literal(literal(*a.Char)), nil
	}
	return nil, fmt.Errorf("empty atom")
}

func (c *class) node() (*ast.Node, error) {
	var chars []rune
	for i := 0; i < len(c.Items); i++ {
		lo := literal(c.Items[i])
		// an unescaped '-' between two items denotes a range
		if i+2 < len(c.Items) && c.Items[i+1] == "-" {
			hi := literal(c.Items[i+2])
			if lo > hi {
				return nil, fmt.Errorf("invalid class range %c-%c", lo, hi)
			}
			for r := lo; r <= hi; r++ {
				chars = append(chars, r)
			}
			i += 2
			continue
		}
		chars = append(chars, lo)
	}
	return ast.CharClass(c.Negate, chars...), nil
}

// literal decodes a Char or Escaped token.
func literal(tok string) rune {
	if len(tok) > 1 && tok[0] == '\\' {
		tok = tok[1:]
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return r
}
