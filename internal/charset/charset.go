// Package charset implements the symbol sets carried on NFA transitions and
// the finite alphabet used for Any and complemented character classes.
package charset

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Set is a sorted, duplicate-free set of runes. The empty Set labels an
// epsilon transition.
type Set []rune

// New returns the set of the given runes.
func New(runes ...rune) Set {
	s := append(Set(nil), runes...)
	slices.Sort(s)
	return slices.Compact(s)
}

// Empty reports whether s has no members.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Contains reports whether r is a member of s.
func (s Set) Contains(r rune) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= r })
	return i < len(s) && s[i] == r
}

// Minus returns the members of s that are not in other.
func (s Set) Minus(other Set) Set {
	out := make(Set, 0, len(s))
	for _, r := range s {
		if !other.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// Equal reports whether s and other have the same members.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s, other)
}

// Ranges groups consecutive members into inclusive [lo, hi] pairs.
func (s Set) Ranges() [][2]rune {
	var ranges [][2]rune
	for i := 0; i < len(s); {
		j := i
		for j+1 < len(s) && s[j+1] == s[j]+1 {
			j++
		}
		ranges = append(ranges, [2]rune{s[i], s[j]})
		i = j + 1
	}
	return ranges
}

func (s Set) String() string {
	if s.Empty() {
		return "ε"
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, rg := range s.Ranges() {
		b.WriteRune(rg[0])
		if rg[1] > rg[0]+1 {
			b.WriteByte('-')
		}
		if rg[1] > rg[0] {
			b.WriteRune(rg[1])
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Expand parses a compact set description such as "a-zA-Z0-9_" into a Set.
// A '-' between two characters denotes an inclusive range; a leading or
// trailing '-' is literal.
func Expand(desc string) (Set, error) {
	runes := []rune(desc)
	var out []rune
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '-' {
			lo, hi := runes[i], runes[i+2]
			if lo > hi {
				return nil, fmt.Errorf("invalid range %c-%c", lo, hi)
			}
			for r := lo; r <= hi; r++ {
				out = append(out, r)
			}
			i += 2
			continue
		}
		out = append(out, runes[i])
	}
	return New(out...), nil
}
