// Package core defines the shared vocabulary of the formulath pipeline:
// the Token sum type produced and consumed by every stage, the Op operator
// table, and the ordered variable Bindings used during evaluation.
//
// What
//
//   - Token: a closed set of expression node kinds —
//   - Number: a parsed numeric literal (float64)
//   - Operator: a binary arithmetic operator (pre-parse form)
//   - Reference: a symbolic name resolved against Bindings at evaluation
//   - OpenParen / CloseParen: grouping marks (pre-parse form)
//   - Expr: an applied operator with two sub-expressions (the parsed form)
//   - Op: the five binary operators (Add, Sub, Mul, Div, Pow) with their
//     canonical symbols, word aliases, precedence levels, and semantics.
//   - Variable / Bindings: an ordered name→Token environment with
//     first-match-wins lookup (earlier bindings shadow later duplicates).
//
// Why
//
//   - Every stage (scan → lex → parse → eval) shares exactly one data model;
//     there are no per-stage token dialects to convert between.
//   - Token is sealed: external packages cannot add variants, so stage code
//     may switch exhaustively and treat any unexpected variant as an error
//     rather than silently ignoring it.
//
// Determinism
//
//	All types here are pure values with no hidden state. Bindings are never
//	mutated by the engine; lookup order equals construction order.
//
// Complexity
//
//   - Op lookup and all Op accessors: O(1).
//   - Bindings.Lookup: O(n) linear scan in binding order (n = len(bindings)).
//
// See the scan, lex, parse, eval and bigeval packages for the pipeline stages
// built on top of these types.
package core
