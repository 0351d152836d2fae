// Package formulath is your in-memory calculator for splitting, parsing
// and evaluating arithmetic formulas — from raw text to float64 and
// arbitrary-precision results.
//
// 🚀 What is formulath?
//
//	A small, deterministic expression engine that brings together:
//		• Splitting: whitespace-separated fields + forced single characters
//		• Classification: operators (symbol or word alias), numbers, references
//		• Parsing: two-stack shunting yard, left-associative, tolerant of stray parens
//		• Evaluation: lazy reference resolution with an always-on cycle guard
//		• Precision: the same trees over *big.Float at any mantissa width
//
// ✨ Why choose formulath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same input, same tree, same value, same error
//   - Fail-fast – a checked error at the first impossible step, never half a result
//   - Extensible – add hooks (OnResolve, OnApply…) or plug in a zerolog logger
//
// Under the hood, everything is organized under six subpackages:
//
//	core/    — Token variants, the operator table & ordered Bindings
//	scan/    — text → fields
//	lex/     — fields → tokens, plus a strict mode
//	parse/   — tokens → one Expr tree
//	eval/    — trees → float64, with suggestions, hooks & depth limits
//	bigeval/ — trees → *big.Float at configurable precision
//
// Quick pipeline example:
//
//	"price * (1 + tax)"
//	   │ scan.Split       → [price * ( 1 + tax )]
//	   │ lex.Tokens       → Reference, Operator, OpenParen, …
//	   │ parse.Expression → (price * (1 + tax))
//	   └ eval.Evaluate    → 120
//
// Next up: unary minus, function calls and a spreadsheet-style binding
// store. Dive into README.md for full examples and the feature matrix.
//
//	go get github.com/katalvlaran/formulath
package formulath
