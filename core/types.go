// Package core defines the Token sum type shared by all formulath stages.
package core

import "strconv"

// Token is the closed set of expression node kinds flowing through the
// pipeline. It is sealed by the unexported marker method: only the six
// variants declared in this package implement it, so consumers may
// type-switch exhaustively and report any other variant as a logic error.
//
// Pre-parse variants: Number, Operator, Reference, OpenParen, CloseParen.
// Post-parse variant: Expr (Operator and parens never survive parsing).
type Token interface {
	// String renders the token for diagnostics and error messages.
	String() string

	token()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Operator is a binary operator in its pre-parse form, before it is folded
// into an Expr by the parser.
type Operator struct {
	Op Op
}

// Reference is a symbolic name, resolved against Bindings at evaluation
// time. Any field that classifies as neither operator, number nor paren
// becomes a Reference; malformed numerics like "1.2.3" land here too.
type Reference struct {
	Name string
}

// OpenParen marks the start of a grouped sub-expression.
type OpenParen struct{}

// CloseParen marks the end of a grouped sub-expression.
type CloseParen struct{}

// Expr is an applied binary operator: Left Op Right.
// It is the only variant the parser produces beyond the operands it was
// given, and the only compound variant the evaluators accept.
type Expr struct {
	Left  Token
	Op    Op
	Right Token
}

func (Number) token()     {}
func (Operator) token()   {}
func (Reference) token()  {}
func (OpenParen) token()  {}
func (CloseParen) token() {}
func (Expr) token()       {}

// String renders the literal in shortest round-trip form (strconv 'g', -1).
func (n Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// String renders the operator's canonical symbol.
func (o Operator) String() string { return o.Op.Symbol() }

// String renders the referenced name verbatim.
func (r Reference) String() string { return r.Name }

func (OpenParen) String() string { return "(" }

func (CloseParen) String() string { return ")" }

// String renders the subtree as fully parenthesized infix, making the
// parsed grouping visible regardless of operator precedence:
//
//	Expr{Number{2}, Add, Expr{Number{2}, Mul, Number{2}}}.String() == "(2 + (2 * 2))"
func (e Expr) String() string {
	return "(" + e.Left.String() + " " + e.Op.Symbol() + " " + e.Right.String() + ")"
}
