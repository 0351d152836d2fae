package scan

import (
	"strings"
	"unicode"
)

// forcedChars are the characters that always form a field of their own,
// regardless of surrounding text. The set covers every operator symbol,
// both parens, and the reserved ! and ~ marks.
const forcedChars = "!~+-/*^()"

// IsForced reports whether r is one of the forced single-character fields.
// Exported for the lex package, which uses it to recognize fields that
// could not have come out of Split intact.
func IsForced(r rune) bool {
	return strings.ContainsRune(forcedChars, r)
}

// Split breaks text into lexical fields:
//
//  1. a forced character flushes the accumulating field, then emits itself;
//  2. whitespace (unicode.IsSpace) flushes the accumulating field and is
//     dropped;
//  3. any other rune extends the accumulating field;
//  4. end of input flushes whatever is pending.
//
// The result never contains an empty field. Empty input returns nil.
func Split(text string) []string {
	var fields []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			fields = append(fields, buf.String())
			buf.Reset()
		}
	}

	for _, r := range text {
		switch {
		case IsForced(r):
			flush()
			fields = append(fields, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return fields
}
