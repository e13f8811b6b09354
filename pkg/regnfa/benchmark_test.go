package regnfa

import (
	"regexp"
	"strings"
	"testing"
)

// Whole-string matching against the standard library for comparison.
var benchPatterns = []struct {
	name    string
	pattern string
	input   string
}{
	{"Literal", "abc", "abc"},
	{"Star", "(ab)*", strings.Repeat("ab", 32)},
	{"Class", "[a-z]+", strings.Repeat("q", 64)},
	{"Nested", "(a*b?)+", strings.Repeat("ab", 16)},
}

func BenchmarkMatches(b *testing.B) {
	for _, bp := range benchPatterns {
		n := MustCompilePattern(bp.pattern)
		b.Run(bp.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if !Matches(n, bp.input) {
					b.Fatal("no match")
				}
			}
		})
	}
}

func BenchmarkStandardRegexp(b *testing.B) {
	for _, bp := range benchPatterns {
		re := regexp.MustCompile("^(?:" + bp.pattern + ")$")
		b.Run(bp.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if !re.MatchString(bp.input) {
					b.Fatal("no match")
				}
			}
		})
	}
}

func BenchmarkFindAmbiguity(b *testing.B) {
	for _, pattern := range []string{"(a|a)*", "(a+)+", "ab.+c"} {
		n := MustCompilePattern(pattern)
		b.Run(pattern, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := FindAmbiguity(n, Options{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
