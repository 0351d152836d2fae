// Package bigeval evaluates parsed expression trees in arbitrary-precision
// arithmetic over *big.Float.
//
// What
//
//   - Evaluate and Resolve mirror the eval package's resolution protocol —
//     first-match bindings, recursion against the same environment, the
//     always-on cycle guard — but every arithmetic step runs on big.Float
//     at a configurable precision (WithPrec, default 64 bits).
//   - Pow is computed by zephyrtronium/bigfloat (exp of y·log x).
//
// Why
//
//	float64 loses low-order digits over long chains of dependent formulas.
//	Re-running the same tree through bigeval at 256 or 512 bits shows how
//	much of a result was rounding.
//
// Domain
//
//	big.Float has no NaN, so inputs that IEEE would quietly turn into NaN
//	are checked errors here:
//	  - 0/0 and Inf/Inf → DomainError
//	  - Inf + -Inf and Inf − Inf with like signs → DomainError
//	  - 0 × Inf in either order → DomainError
//	  - Pow with a negative base, or base 1 raised to ±Inf → DomainError
//	  - a NaN literal in the tree → DomainError
//	x/0 for x ≠ 0 stays legal and yields ±Inf, as do same-sign infinite
//	sums and infinite products.
//
// Precision
//
//	Literals enter through SetFloat64, so each literal is exactly the
//	float64 the lexer produced; the added precision pays off in the
//	arithmetic that accumulates on top of them.
//
// Usage
//
//	tree, _ := parse.Expression(lex.Tokens(scan.Split("principal * (1 + rate) ^ years")))
//	v, err := bigeval.Evaluate(tree, vars, bigeval.WithPrec(256))
package bigeval
