// Package codegen renders a standalone Go matcher for a compiled NFA.
package codegen

import (
	"unicode"
	"unicode/utf8"
)

// Variable names used in generated code
const (
	InputName   = "input"
	CharName    = "c"
	CurrentName = "current"
	NextName    = "next"
	IndexName   = "i"
)

// StartClosureName returns the package-level variable holding the start
// state's epsilon closure for the matcher called name.
func StartClosureName(name string) string {
	return LowerFirst(name) + "StartClosure"
}

// AcceptMaskName returns the package-level variable holding the accepting
// state bits for the matcher called name.
func AcceptMaskName(name string) string {
	return LowerFirst(name) + "AcceptMask"
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(fn(r)) + s[size:]
}
