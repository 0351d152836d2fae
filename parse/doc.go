// Package parse builds a single expression tree from a token sequence, the
// third stage of the formulath pipeline.
//
// What
//
//   - Expression consumes []core.Token left to right and returns one
//     core.Token: a core.Expr tree for compound input, or the lone operand
//     itself for single-token input.
//   - The algorithm is shunting-yard over two explicit stacks:
//   - operand stack — numbers, references, and built Expr subtrees;
//   - operator stack — pending operators and OpenParen scope marks.
//
// Reduction rules
//
//   - Number/Reference → push onto the operand stack.
//   - OpenParen → push onto the operator stack as a scope boundary.
//   - Operator → first reduce while the operator stack's top is an operator
//     of precedence ≥ the incoming one (ties reduce: left-associative, Pow
//     included), then push.
//   - CloseParen → reduce until the nearest OpenParen, discard it. If the
//     operator stack runs out first, the stray ")" is ignored.
//   - End of input → drain the operator stack, skipping any unmatched
//     OpenParen marks.
//
// One reduction pops two operands and one operator and pushes
// Expr{second-popped, op, first-popped}, preserving left-to-right operand
// order. The result is the top of the operand stack.
//
// Tolerance and failure
//
//	Unbalanced parentheses never fail: "(2+3" and "2+3)" both parse as
//	"2+3". What does fail:
//	  - empty input (or input reducing to nothing, like "()")
//	    → ErrNoExpression;
//	  - an operator with fewer than two operands available ("2+", "*3")
//	    → UnexpectedTokenError;
//	  - a core.Expr arriving in the input stream (only lex output is a
//	    legal source) → UnexpectedTokenError.
//
// Determinism
//
//	Pure function of the token sequence; no options.
//
// Complexity
//
//   - Time O(n) — every token is pushed and popped at most once.
//   - Space O(n) for the two stacks.
package parse
