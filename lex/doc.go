// Package lex classifies scanned fields into typed core.Tokens, the second
// stage of the formulath pipeline.
//
// What
//
//   - Tokens maps each field to exactly one Token variant, trying in order:
//
//     1. operator — canonical symbol or word alias (core.Lookup);
//     2. number   — at least one digit, only digits and at most one dot;
//     3. paren    — "(" or ")";
//     4. reference — everything else, unconditionally.
//
//   - The reference fallback makes Tokens total: no field is rejected.
//     Malformed numerics like "1.2.3" become references and surface later as
//     unknown-reference failures, exactly as if they were unbound names.
//
//   - Strict applies the same classification but refuses two shapes that a
//     total lexer would wave through: a digit- or dot-led field that fails
//     the numeric shape (NumberFormatError), and a multi-rune field
//     embedding a forced-split character, which proves the input never went
//     through scan.Split (UnknownTokenError).
//
// Why
//
//   - Classification priority is the whole grammar at this stage: "plus" is
//     an operator before it could ever be a name, "2" is a number before it
//     could be a name, and nothing else is special.
//
// Determinism
//
//	Both entry points are pure functions of their input.
//
// Complexity
//
//   - Time O(total field bytes), Space O(len(fields)).
//
// Errors
//
//   - NumberFormatError — strict mode only: numeric-led field, non-numeric shape.
//   - UnknownTokenError — strict mode only: field embedding a forced character.
package lex
