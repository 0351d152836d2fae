package lex

import (
	"strconv"

	"github.com/katalvlaran/formulath/core"
)

// Tokens classifies fields in order, one Token per field. It is total:
// the reference fallback accepts whatever the earlier classes reject, so
// there is no error path. Empty input returns nil.
func Tokens(fields []string) []core.Token {
	if len(fields) == 0 {
		return nil
	}

	toks := make([]core.Token, len(fields))
	for i, field := range fields {
		toks[i] = classify(field)
	}

	return toks
}

// classify applies the priority order: operator, number, paren, reference.
func classify(field string) core.Token {
	// 1) Operator symbol or alias wins over everything.
	if op, ok := core.Lookup(field); ok {
		return core.Operator{Op: op}
	}

	// 2) Numeric shape. isNumeric admits exactly the shapes ParseFloat
	//    accepts (digits with at most one dot), so the error is impossible.
	if isNumeric(field) {
		v, _ := strconv.ParseFloat(field, 64)
		return core.Number{Value: v}
	}

	// 3) Grouping marks.
	switch field {
	case "(":
		return core.OpenParen{}
	case ")":
		return core.CloseParen{}
	}

	// 4) Reference fallback: names, malformed numerics, reserved marks.
	return core.Reference{Name: field}
}

// isNumeric reports whether field has the numeric shape: at least one
// digit, and nothing but ASCII digits plus at most one dot. "1.2.3" fails
// here and falls through to the reference class.
func isNumeric(field string) bool {
	digits, dots := 0, 0
	for _, r := range field {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}
