package ldapcodec

import (
	"strings"
)

// reservedChars are the characters that must be backslash-escaped wherever
// they occur inside a DN attribute value.
const reservedChars = ",#+<>;\"=\\"

// EscapeValue escapes reserved characters in a DN attribute value.
//
// Each occurrence of one of  , # + < > ; " = \  is emitted as a backslash
// followed by that character; all other characters pass through unchanged,
// including non-ASCII input. The function is total: any string, including
// the empty string, produces a result.
//
// Examples:
//   - "John Doe"  → "John Doe"
//   - "Doe, John" → "Doe\, John"
//   - "a=b#c\"    → "a\=b\#c\\"
func EscapeValue(value string) string {
	if !NeedsEscaping(value) {
		return value
	}

	var result strings.Builder
	result.Grow(len(value) + 8)

	for _, r := range value {
		switch r {
		case ',', '#', '+', '<', '>', ';', '"', '=', '\\':
			result.WriteByte('\\')
		}
		result.WriteRune(r)
	}

	return result.String()
}

// UnescapeValue removes escaping from a DN attribute value, inverting
// EscapeValue. A backslash marks the following character as literal; the
// RFC 4514 hex form (backslash followed by two hex digits, e.g. \2C or
// \00) decodes to the corresponding byte. A dangling backslash at the end
// of input is kept as-is.
func UnescapeValue(value string) string {
	if !strings.Contains(value, "\\") {
		return value
	}

	var result strings.Builder
	result.Grow(len(value))

	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' {
			result.WriteByte(c)
			continue
		}
		if i == len(value)-1 {
			// Dangling escape, nothing follows.
			result.WriteByte('\\')
			break
		}
		if i+2 < len(value) && isHexDigit(value[i+1]) && isHexDigit(value[i+2]) {
			result.WriteByte(hexValue(value[i+1])<<4 | hexValue(value[i+2]))
			i += 2
			continue
		}
		result.WriteByte(value[i+1])
		i++
	}

	return result.String()
}

// NeedsEscaping reports whether a value contains reserved characters. When
// it returns false the value can be embedded in a DN unchanged.
func NeedsEscaping(value string) bool {
	return strings.ContainsAny(value, reservedChars)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
