// Package bigeval provides options and error definitions for
// arbitrary-precision evaluation.
package bigeval

import (
	"errors"
	"fmt"
)

// DefaultPrec is the big.Float mantissa precision used when no WithPrec
// option is supplied. 64 bits is a little beyond float64's 53.
const DefaultPrec = 64

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bigeval: invalid option supplied")

// Option configures big.Float evaluation via functional arguments.
type Option func(*BigEvalOptions)

// BigEvalOptions holds parameters for big.Float evaluation.
type BigEvalOptions struct {
	// Prec is the mantissa precision, in bits, of every intermediate and
	// final value.
	Prec uint

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BigEvalOptions with DefaultPrec.
func DefaultOptions() BigEvalOptions {
	return BigEvalOptions{
		Prec: DefaultPrec,
		err:  nil,
	}
}

// WithPrec sets the mantissa precision in bits.
//
//	p > 0: use p bits
//	p == 0: invalid option → ErrOptionViolation (big.Float would collapse
//	        every finite value to zero)
func WithPrec(p uint) Option {
	return func(o *BigEvalOptions) {
		if p == 0 {
			o.err = fmt.Errorf("%w: Prec must be positive", ErrOptionViolation)
			return
		}
		o.Prec = p
	}
}
