package match

import (
	"strings"
	"unicode"
)

// accessorPrefixes are leading tokens dropped by NormalizeMemberStripped.
var accessorPrefixes = []string{"get", "set", "is", "has"}

// NormalizeMember normalizes a field or method name for fuzzy matching:
// CamelCase is split, tokens are lowercased and separators ('_', '$', '-')
// are removed.
func NormalizeMember(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeMemberStripped is NormalizeMember without a leading accessor
// token, so "getWorld" and "world" normalize alike.
func NormalizeMemberStripped(s string) string {
	tokens := TokenizeIdent(s)
	if len(tokens) > 1 {
		for _, p := range accessorPrefixes {
			if tokens[0] == p {
				tokens = tokens[1:]
				break
			}
		}
	}

	return strings.Join(tokens, "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
// Examples:
//   - "getHandle" -> ["get", "handle"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "field_1234_a" -> ["field", "1234", "a"]
//   - "access$000" -> ["access", "000"]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '$' || r == '-' || r == ' '
}

// startsToken reports whether a new token begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	switch {
	case unicode.IsDigit(r) != unicode.IsDigit(prev) && !isSeparator(prev):
		// "field1234" -> "field" + "1234"
		return true
	case unicode.IsUpper(r) && unicode.IsLower(prev):
		// "getHandle" -> "get" + "Handle"
		return true
	case unicode.IsUpper(r) && unicode.IsUpper(prev):
		// "XMLParser" -> "XML" + "Parser"
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	default:
		return false
	}
}
