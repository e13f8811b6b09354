package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Every character is its own token so that "ab" concatenates two literals.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Meta", Pattern: `[()|*+?.\[\]^\-]`},
	{Name: "Char", Pattern: `[^()|*+?.\[\]^\-\\]`},
})

type pattern struct {
	Body *alternation `parser:"@@?"`
}

type alternation struct {
	Head *concatenation `parser:"@@?"`
	Tail []*branch      `parser:"@@*"`
}

type branch struct {
	Pipe bool           `parser:"@'|'"`
	Body *concatenation `parser:"@@?"`
}

type concatenation struct {
	Terms []*repetition `parser:"@@+"`
}

type repetition struct {
	Atom *atom    `parser:"@@"`
	Ops  []string `parser:"@('*' | '+' | '?')*"`
}

type atom struct {
	Group *group  `parser:"  @@"`
	Class *class  `parser:"| @@"`
	Any   bool    `parser:"| @'.'"`
	Char  *string `parser:"| @(Char | Escaped | '-')"`
}

type group struct {
	Open bool         `parser:"@'('"`
	Body *alternation `parser:"@@? ')'"`
}

// Inside a class every token but ']' is literal; ranges are resolved by
// class.node so that a leading or trailing '-' stays a plain character.
type class struct {
	Negate bool     `parser:"'[' @'^'?"`
	Items  []string `parser:"@( Char | Escaped | '(' | ')' | '|' | '*' | '+' | '?' | '.' | '[' | '^' | '-' )+ ']'"`
}

var patternParser = participle.MustBuild[pattern](
	participle.Lexer(patternLexer),
)
