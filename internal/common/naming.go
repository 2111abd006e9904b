package common

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// LowerCamel lowers the leading upper-case run of an identifier so it can be
// used as a parameter name.
// Examples:
//   - "Name" -> "name"
//   - "ID" -> "id"
//   - "HTTPAddr" -> "httpAddr"
//   - "value" -> "value"
func LowerCamel(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == 0:
		return s
	case upper == len(runes):
		return strings.ToLower(s)
	case upper > 1 && unicode.IsLower(runes[upper]):
		// Keep the last upper-case rune: it starts the next word ("HTTPAddr").
		upper--
	}

	for i := range upper {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// IsExported reports whether the identifier starts with an upper-case letter.
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// SafeIdent returns name unchanged unless it is a Go keyword or already
// taken, in which case underscores are appended until it is free.
func SafeIdent(name string, taken map[string]bool) string {
	for token.IsKeyword(name) || taken[name] {
		name += "_"
	}

	return name
}
