// Package scan splits raw formula text into lexical fields, the first stage
// of the formulath pipeline.
//
// What
//
//   - Split turns a string into an ordered []string of fields.
//   - Nine characters are forced singles — ! ~ + - / * ^ ( ) — each always
//     becomes its own field, terminating whatever field was accumulating.
//   - Whitespace terminates the accumulating field and is discarded.
//   - Every other rune accumulates into the current field.
//   - No empty fields are ever emitted; empty input yields an empty result.
//
// Why
//
//   - Splitting is deliberately dumb: it knows nothing about numbers,
//     operators or names. "2+2" and "2 + 2" produce the same fields, and
//     classification mistakes cannot happen here because nothing is
//     classified. The lex package assigns meaning.
//
// Determinism
//
//	Split is a pure function of its input: no options, no state, no errors.
//
// Complexity
//
//   - Time O(len(text)), Space O(len(text)) for the field storage.
//
// Usage
//
//	fields := scan.Split("(margin + 2.5) * units")
//	// ["(", "margin", "+", "2.5", ")", "*", "units"]
package scan
