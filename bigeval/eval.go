// Package bigeval walks parsed expression trees against ordered bindings
// in arbitrary-precision big.Float arithmetic.
package bigeval

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"

	"github.com/katalvlaran/formulath/core"
)

// evaluator encapsulates mutable evaluation state.
type evaluator struct {
	vars   core.Bindings
	opts   BigEvalOptions
	active []string // names currently being resolved, in entry order
}

// Evaluate computes the big.Float value of expr against vars, applying any
// number of functional Options. Returns ErrOptionViolation for bad
// options, UnknownReferenceError / CyclicReferenceError for resolution
// failures, DomainError for values big.Float cannot represent, or
// InvalidNodeError when expr contains a non-evaluable variant.
func Evaluate(expr core.Token, vars core.Bindings, opts ...Option) (*big.Float, error) {
	e, err := newEvaluator(vars, opts)
	if err != nil {
		return nil, err
	}

	return e.eval(expr)
}

// Resolve evaluates the expression bound to name at working precision.
// The entry name takes part in the cycle guard, exactly as in eval.
func Resolve(name string, vars core.Bindings, opts ...Option) (*big.Float, error) {
	e, err := newEvaluator(vars, opts)
	if err != nil {
		return nil, err
	}

	return e.resolve(name)
}

// newEvaluator builds options and catches any invalid ones immediately.
func newEvaluator(vars core.Bindings, opts []Option) (*evaluator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &evaluator{vars: vars, opts: o}, nil
}

// eval dispatches on the token variant. Only Number, Reference and Expr
// carry a value; everything else is a checked error.
func (e *evaluator) eval(tok core.Token) (*big.Float, error) {
	switch t := tok.(type) {
	case core.Number:
		return e.literal(t.Value)
	case core.Reference:
		return e.resolve(t.Name)
	case core.Expr:
		return e.apply(t)
	case core.Operator:
		return nil, InvalidNodeError{Token: tok, Reason: "bare operator has no value"}
	case core.OpenParen, core.CloseParen:
		return nil, InvalidNodeError{Token: tok, Reason: "grouping mark has no value"}
	default:
		return nil, InvalidNodeError{Token: tok, Reason: "not an expression node"}
	}
}

// literal lifts a float64 leaf to working precision. big.Float has no NaN,
// so a NaN literal is a checked error rather than a SetFloat64 panic.
func (e *evaluator) literal(v float64) (*big.Float, error) {
	if math.IsNaN(v) {
		return nil, DomainError{Op: "literal", Detail: "NaN"}
	}

	return new(big.Float).SetPrec(e.opts.Prec).SetFloat64(v), nil
}

// resolve guards against cycles, then evaluates the bound token against
// the same bindings.
func (e *evaluator) resolve(name string) (*big.Float, error) {
	// 1) Cycle guard: re-entering an active name is a loop.
	for _, seen := range e.active {
		if seen == name {
			chain := make([]string, 0, len(e.active)+1)
			chain = append(chain, e.active...)
			chain = append(chain, name)

			return nil, CyclicReferenceError{Chain: chain}
		}
	}

	// 2) First binding wins.
	bound, ok := e.vars.Lookup(name)
	if !ok {
		return nil, UnknownReferenceError{Name: name}
	}

	// 3) Recurse with name marked active, against the same bindings.
	e.active = append(e.active, name)
	v, err := e.eval(bound)
	e.active = e.active[:len(e.active)-1]

	return v, err
}

// apply evaluates left, then right, then combines at working precision.
func (e *evaluator) apply(x core.Expr) (*big.Float, error) {
	left, err := e.eval(x.Left)
	if err != nil {
		return nil, err
	}

	right, err := e.eval(x.Right)
	if err != nil {
		return nil, err
	}

	return e.combine(x.Op, left, right)
}

// one is the Pow base whose logarithm is zero.
var one = big.NewFloat(1)

// combine runs one operator step. Every operator carries an explicit guard
// for the operand pairs that have no big.Float value; x/0 for x ≠ 0 stays
// legal and yields ±Inf, as do same-sign infinite sums and infinite
// products.
func (e *evaluator) combine(op core.Op, left, right *big.Float) (*big.Float, error) {
	z := new(big.Float).SetPrec(e.opts.Prec)

	switch op {
	case core.Add:
		// Guard against opposite-sign infinite sums, Inf + -Inf.
		if left.IsInf() && right.IsInf() && left.Signbit() != right.Signbit() {
			return nil, DomainError{Op: op.Symbol(), Detail: left.String() + " + " + right.String()}
		}

		return z.Add(left, right), nil
	case core.Sub:
		// Guard against same-sign infinite differences, Inf - Inf.
		if left.IsInf() && right.IsInf() && left.Signbit() == right.Signbit() {
			return nil, DomainError{Op: op.Symbol(), Detail: left.String() + " - " + right.String()}
		}

		return z.Sub(left, right), nil
	case core.Mul:
		// Guard against zero-times-infinity products, in either order.
		if left.Sign() == 0 && right.IsInf() || left.IsInf() && right.Sign() == 0 {
			return nil, DomainError{Op: op.Symbol(), Detail: left.String() + " * " + right.String()}
		}

		return z.Mul(left, right), nil
	case core.Div:
		// Guard against invalid divisions, 0/0 or Inf/Inf.
		if left.Sign() == 0 && right.Sign() == 0 || left.IsInf() && right.IsInf() {
			return nil, DomainError{Op: op.Symbol(), Detail: left.String() + " / " + right.String()}
		}

		return z.Quo(left, right), nil
	case core.Pow:
		// Guard against invalid exponentiations: a negative base has no real
		// logarithm, and base 1 with an infinite exponent reduces to 0 × Inf
		// inside exp(y·log x).
		if left.Signbit() {
			return nil, DomainError{Op: op.Symbol(), Detail: "negative base " + left.String()}
		}
		if right.IsInf() && left.Cmp(one) == 0 {
			return nil, DomainError{Op: op.Symbol(), Detail: left.String() + " ^ " + right.String()}
		}

		return bigfloat.Pow(z, left, right), nil
	default:
		return nil, InvalidNodeError{Token: core.Operator{Op: op}, Reason: "operator not in the table"}
	}
}
