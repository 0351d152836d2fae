// Package eval walks parsed expression trees against ordered bindings,
// resolving references lazily with an always-on cycle guard.
package eval

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/lex"
	"github.com/katalvlaran/formulath/parse"
	"github.com/katalvlaran/formulath/scan"
)

// suggestionRange is the largest edit distance still offered as a
// near-miss suggestion on unknown references.
const suggestionRange = 2

// evaluator encapsulates mutable evaluation state.
type evaluator struct {
	vars   core.Bindings
	opts   EvalOptions
	active []string // names currently being resolved, in entry order
}

// Evaluate computes the value of expr against vars, applying any number of
// functional Options. Returns ErrOptionViolation for bad options,
// UnknownReferenceError / CyclicReferenceError / DepthError for resolution
// failures, or InvalidNodeError when expr contains a non-evaluable variant.
func Evaluate(expr core.Token, vars core.Bindings, opts ...Option) (float64, error) {
	e, err := newEvaluator(vars, opts)
	if err != nil {
		return 0, err
	}

	return e.eval(expr)
}

// Resolve evaluates the expression bound to name, the usual entry point
// when formulas reference each other. The entry name takes part in the
// cycle guard, so Resolve("A") with A = A + 1 reports A → A.
func Resolve(name string, vars core.Bindings, opts ...Option) (float64, error) {
	e, err := newEvaluator(vars, opts)
	if err != nil {
		return 0, err
	}

	return e.resolve(name)
}

// Formula runs the full pipeline on src: split, classify, parse, evaluate.
// Parse failures pass through unchanged (fail-fast, no recovery).
func Formula(src string, vars core.Bindings, opts ...Option) (float64, error) {
	tree, err := parse.Expression(lex.Tokens(scan.Split(src)))
	if err != nil {
		return 0, err
	}

	return Evaluate(tree, vars, opts...)
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
func (e *evaluator) eval(tok core.Token) (float64, error) {
	switch t := tok.(type) {
	case core.Number:
		return t.Value, nil
	case core.Reference:
		return e.resolve(t.Name)
	case core.Expr:
		return e.apply(t)
	case core.Operator:
		return 0, InvalidNodeError{Token: tok, Vars: e.vars, Reason: "bare operator has no value"}
	case core.OpenParen, core.CloseParen:
		return 0, InvalidNodeError{Token: tok, Vars: e.vars, Reason: "grouping mark has no value"}
	default:
		return 0, InvalidNodeError{Token: tok, Vars: e.vars, Reason: "not an expression node"}
	}
}

// resolve guards against cycles and depth, fires the resolve hook, then
// evaluates the bound token against the same bindings.
func (e *evaluator) resolve(name string) (float64, error) {
	// 1) Cycle guard: re-entering an active name is a loop.
	for _, seen := range e.active {
		if seen == name {
			chain := make([]string, 0, len(e.active)+1)
			chain = append(chain, e.active...)
			chain = append(chain, name)

			return 0, CyclicReferenceError{Chain: chain}
		}
	}

	// 2) Optional depth guard.
	if e.opts.MaxDepth > 0 && len(e.active) >= e.opts.MaxDepth {
		return 0, DepthError{Limit: e.opts.MaxDepth}
	}

	e.fireResolve(name, len(e.active))

	// 3) First binding wins; a miss proposes the closest bound name.
	bound, ok := e.vars.Lookup(name)
	if !ok {
		return 0, UnknownReferenceError{Name: name, Suggestion: closest(name, e.vars.Names())}
	}

	// 4) Recurse with name marked active, against the same bindings.
	e.active = append(e.active, name)
	v, err := e.eval(bound)
	e.active = e.active[:len(e.active)-1]

	return v, err
}

// apply evaluates left, then right, then the operator.
func (e *evaluator) apply(x core.Expr) (float64, error) {
	left, err := e.eval(x.Left)
	if err != nil {
		return 0, err
	}

	right, err := e.eval(x.Right)
	if err != nil {
		return 0, err
	}

	result := x.Op.Apply(left, right)
	e.fireApply(x.Op, left, right, result)

	return result, nil
}

func (e *evaluator) fireResolve(name string, depth int) {
	e.opts.OnResolve(name, depth)
	if e.opts.logger != nil {
		e.opts.logger.Debug().
			Str("name", name).
			Int("depth", depth).
			Msg("resolve reference")
	}
}

func (e *evaluator) fireApply(op core.Op, left, right, result float64) {
	e.opts.OnApply(op, left, right, result)
	if e.opts.logger != nil {
		e.opts.logger.Debug().
			Str("op", op.Symbol()).
			Float64("left", left).
			Float64("right", right).
			Float64("result", result).
			Msg("apply operator")
	}
}

// closest returns the candidate within suggestionRange edits of name, ties
// broken by binding order. Empty when nothing is close enough.
func closest(name string, candidates []string) string {
	best, bestDist := "", suggestionRange+1
	for _, cand := range candidates {
		if d := fuzzy.LevenshteinDistance(name, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}

	return best
}
