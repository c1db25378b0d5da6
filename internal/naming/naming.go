// Package naming maps OpenRPC and JSON Schema names onto Go identifiers.
package naming

import (
	"strings"
	"unicode"
)

// Pascal converts a schema, method or enum value name into an exported Go identifier.
// Separators (anything that is not a letter or digit) are dropped and the following
// word is capitalized. Words written entirely in upper case, eg. EXPERIMENTAL,
// are title cased; mixed case words keep their inner casing.
//
//	JsonRpcRequest_for_status -> JsonRpcRequestForStatus
//	EXPERIMENTAL_view_account -> ExperimentalViewAccount
//	near-final                -> NearFinal
func Pascal(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		rs := []rune(w)
		if len(rs) > 1 && isUpperWord(rs) {
			rs = []rune(strings.ToLower(w))
		}
		rs[0] = unicode.ToUpper(rs[0])
		b.WriteString(string(rs))
	}
	out := b.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "N" + out
	}
	return out
}

// Identifier returns s unchanged when it already is an exported Go identifier,
// and Pascal(s) otherwise. Names produced by an earlier Pascal call, eg. AB,
// survive a second pass.
func Identifier(s string) string {
	rs := []rune(s)
	if len(rs) == 0 || !unicode.IsUpper(rs[0]) {
		return Pascal(s)
	}
	for _, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return Pascal(s)
		}
	}
	return s
}

// Unexported returns the Pascal form of s with a lower case first letter.
func Unexported(s string) string {
	p := []rune(Identifier(s))
	if len(p) == 0 {
		return ""
	}
	p[0] = unicode.ToLower(p[0])
	return string(p)
}

func isUpperWord(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
