// Package ast defines the regular-expression syntax tree the NFA compiler consumes.
//
// The variant set is closed: every Node carries one of the Op constants below
// and only the fields that Op documents are meaningful.
package ast

import (
	"fmt"
	"strings"
)

// Op identifies the syntax tree variant of a Node.
type Op uint8

const (
	OpEpsilon   Op = iota // matches the empty string
	OpAny                 // one character from the alphabet
	OpCharClass           // one character from Chars (or its complement)
	OpLiteral             // the single character Rune
	OpConcat              // Sub[0] followed by Sub[1]
	OpOr                  // Sub[0] or Sub[1]
	OpStar                // zero or more repetitions of Sub[0]
)

var opNames = [...]string{
	OpEpsilon:   "Epsilon",
	OpAny:       "Any",
	OpCharClass: "CharClass",
	OpLiteral:   "Literal",
	OpConcat:    "Concat",
	OpOr:        "Or",
	OpStar:      "Star",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Node is a single syntax tree node. Trees are immutable once built, so a
// subtree may be shared by several parents.
type Node struct {
	Op         Op
	Rune       rune    // OpLiteral
	Complement bool    // OpCharClass
	Chars      []rune  // OpCharClass
	Sub        []*Node // OpConcat, OpOr: two children; OpStar: one
}

// Epsilon returns a node matching the empty string.
func Epsilon() *Node { return &Node{Op: OpEpsilon} }

// Any returns a node matching any single alphabet character.
func Any() *Node { return &Node{Op: OpAny} }

// Literal returns a node matching exactly r.
func Literal(r rune) *Node { return &Node{Op: OpLiteral, Rune: r} }

// CharClass returns a node matching one of chars, or when complement is set,
// one alphabet character not in chars.
func CharClass(complement bool, chars ...rune) *Node {
	return &Node{Op: OpCharClass, Complement: complement, Chars: append([]rune(nil), chars...)}
}

// Concat returns a node matching left then right.
func Concat(left, right *Node) *Node { return &Node{Op: OpConcat, Sub: []*Node{left, right}} }

// Or returns a node matching left or right.
func Or(left, right *Node) *Node { return &Node{Op: OpOr, Sub: []*Node{left, right}} }

// Star returns a node matching zero or more repetitions of sub.
func Star(sub *Node) *Node { return &Node{Op: OpStar, Sub: []*Node{sub}} }

// Plus expresses one-or-more as Concat(sub, Star(sub)).
func Plus(sub *Node) *Node { return Concat(sub, Star(sub)) }

// Quest expresses zero-or-one as Or(sub, Epsilon).
func Quest(sub *Node) *Node { return Or(sub, Epsilon()) }

// String renders the tree in a fully parenthesised pattern-like form.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		b.WriteString("ε")
		return
	}
	switch n.Op {
	case OpEpsilon:
		b.WriteString("ε")
	case OpAny:
		b.WriteByte('.')
	case OpLiteral:
		b.WriteRune(n.Rune)
	case OpCharClass:
		b.WriteByte('[')
		if n.Complement {
			b.WriteByte('^')
		}
		b.WriteString(string(n.Chars))
		b.WriteByte(']')
	case OpConcat:
		b.WriteByte('(')
		n.Sub[0].write(b)
		n.Sub[1].write(b)
		b.WriteByte(')')
	case OpOr:
		b.WriteByte('(')
		n.Sub[0].write(b)
		b.WriteByte('|')
		n.Sub[1].write(b)
		b.WriteByte(')')
	case OpStar:
		b.WriteByte('(')
		n.Sub[0].write(b)
		b.WriteString(")*")
	default:
		panic(fmt.Sprintf("ast: unknown op %v", n.Op))
	}
}
