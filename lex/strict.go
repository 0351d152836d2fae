package lex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/scan"
)

// NumberFormatError reports a digit- or dot-led field that does not have
// the numeric shape, e.g. "1.2.3" or "2x". Raised by Strict only; Tokens
// classifies such fields as references.
type NumberFormatError struct {
	Field string
	Index int
}

func (e NumberFormatError) Error() string {
	return fmt.Sprintf("lex: field %d %q: malformed number", e.Index, e.Field)
}

// UnknownTokenError reports a multi-rune field embedding a forced-split
// character, e.g. "+x" or "a(b". scan.Split can never emit such a field,
// so its presence means the field sequence bypassed the splitter.
type UnknownTokenError struct {
	Field string
	Index int
}

func (e UnknownTokenError) Error() string {
	return fmt.Sprintf("lex: field %d %q: embeds a split character", e.Index, e.Field)
}

// Strict classifies like Tokens but fails fast on fields a well-formed
// pipeline cannot produce:
//
//   - a field longer than one rune containing a forced-split character →
//     UnknownTokenError;
//   - a field starting with a digit or "." that does not classify as a
//     number → NumberFormatError.
//
// A lone forced mark such as "!" is a legitimate splitter product and
// still classifies as a reference, same as in Tokens.
func Strict(fields []string) ([]core.Token, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	toks := make([]core.Token, len(fields))
	for i, field := range fields {
		if embedsForced(field) {
			return nil, UnknownTokenError{Field: field, Index: i}
		}

		tok := classify(field)
		if _, isRef := tok.(core.Reference); isRef && startsNumeric(field) {
			return nil, NumberFormatError{Field: field, Index: i}
		}
		toks[i] = tok
	}

	return toks, nil
}

// embedsForced reports whether field mixes a forced-split character into a
// longer field. A single forced character alone is fine.
func embedsForced(field string) bool {
	if len(field) <= 1 {
		return false
	}

	return strings.IndexFunc(field, scan.IsForced) >= 0
}

// startsNumeric reports whether field opens like a number.
func startsNumeric(field string) bool {
	if field == "" {
		return false
	}
	r := field[0]

	return (r >= '0' && r <= '9') || r == '.'
}
