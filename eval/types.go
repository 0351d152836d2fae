// Package eval provides options and error definitions for expression
// evaluation over core.Bindings.
package eval

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/formulath/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("eval: invalid option supplied")

// Option configures evaluation via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when evaluation is invoked.
type Option func(*EvalOptions)

// EvalOptions holds parameters and callbacks to customize evaluation.
type EvalOptions struct {
	// MaxDepth, if > 0, caps how many reference resolutions may be active
	// at once: a chain A → B → C counts three. A value of 0 explicitly
	// disables the limit; cycles are caught regardless.
	MaxDepth int

	// OnResolve is called before a reference is resolved, after the cycle
	// and depth guards pass. depth is the number of resolutions already
	// active (0 for the outermost reference).
	OnResolve func(name string, depth int)

	// OnApply is called after each operator application with both operands
	// and the result.
	OnApply func(op core.Op, left, right, result float64)

	// logger, when set, traces both events at Debug level.
	logger *zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an EvalOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnResolve, OnApply)
//   - no logger.
func DefaultOptions() EvalOptions {
	return EvalOptions{
		MaxDepth:  0,
		OnResolve: func(string, int) {},
		OnApply:   func(core.Op, float64, float64, float64) {},
		logger:    nil,
		err:       nil,
	}
}

// WithMaxDepth caps the reference-chain depth at d hops.
//
//	d > 0: resolutions nested d deep or more fail with DepthError
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *EvalOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnResolve registers a callback to run before each reference
// resolution.
func WithOnResolve(fn func(name string, depth int)) Option {
	return func(o *EvalOptions) {
		if fn != nil {
			o.OnResolve = fn
		}
	}
}

// WithOnApply registers a callback to run after each operator application.
func WithOnApply(fn func(op core.Op, left, right, result float64)) Option {
	return func(o *EvalOptions) {
		if fn != nil {
			o.OnApply = fn
		}
	}
}

// WithLogger traces resolutions and applications on lg at Debug level.
// The logger runs in addition to any installed hooks.
func WithLogger(lg zerolog.Logger) Option {
	return func(o *EvalOptions) {
		o.logger = &lg
	}
}
