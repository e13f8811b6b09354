package charset

import "fmt"

// DefaultAlphabetRanges is the alphabet used when none is configured: the
// ASCII Latin letters.
const DefaultAlphabetRanges = "A-Za-z"

// Alphabet is the finite character universe shared by the builder (for Any)
// and complement expansion. The zero value behaves as the default alphabet.
type Alphabet struct {
	symbols Set
}

// NewAlphabet returns an alphabet of the given symbols.
func NewAlphabet(symbols ...rune) Alphabet {
	return Alphabet{symbols: New(symbols...)}
}

// ParseAlphabet builds an alphabet from a description accepted by Expand. An
// empty description yields the default alphabet.
func ParseAlphabet(desc string) (Alphabet, error) {
	if desc == "" {
		return DefaultAlphabet(), nil
	}
	set, err := Expand(desc)
	if err != nil {
		return Alphabet{}, fmt.Errorf("alphabet %q: %w", desc, err)
	}
	return Alphabet{symbols: set}, nil
}

var defaultSymbols = func() Set {
	set, err := Expand(DefaultAlphabetRanges)
	if err != nil {
		panic(err)
	}
	return set
}()

// DefaultAlphabet returns the ASCII Latin letters.
func DefaultAlphabet() Alphabet {
	return Alphabet{symbols: defaultSymbols}
}

// Symbols returns the full symbol set. Callers must not modify it.
func (a Alphabet) Symbols() Set {
	if a.symbols == nil {
		return defaultSymbols
	}
	return a.symbols
}

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	return a.Symbols().Contains(r)
}

// Complement returns the alphabet symbols not in chars.
func (a Alphabet) Complement(chars Set) Set {
	return a.Symbols().Minus(chars)
}

func (a Alphabet) String() string {
	return a.Symbols().String()
}
