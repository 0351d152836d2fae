package bigeval

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/formulath/core"
)

// UnknownReferenceError is returned when a reference names nothing in the
// bindings.
type UnknownReferenceError struct {
	Name string
}

func (e UnknownReferenceError) Error() string {
	return fmt.Sprintf("bigeval: unknown reference %q", e.Name)
}

// CyclicReferenceError is returned when resolution re-enters a name that
// is already being resolved. Chain lists the loop in resolution order.
type CyclicReferenceError struct {
	Chain []string
}

func (e CyclicReferenceError) Error() string {
	return fmt.Sprintf("bigeval: cyclic reference: %s", strings.Join(e.Chain, " → "))
}

// InvalidNodeError is returned when the walk reaches a token variant that
// has no value.
type InvalidNodeError struct {
	Token  core.Token
	Reason string
}

func (e InvalidNodeError) Error() string {
	label := "<nil>"
	if e.Token != nil {
		label = e.Token.String()
	}

	return fmt.Sprintf("bigeval: cannot evaluate %s: %s", label, e.Reason)
}

// DomainError is returned for operand pairs that have no big.Float value:
// 0/0, Inf/Inf, infinite sums and differences that cancel, 0 × Inf, a
// negative Pow base, base 1 raised to ±Inf, or a NaN literal. Op is the
// operator symbol, or "literal" for NaN literals.
type DomainError struct {
	Op     string
	Detail string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("bigeval: outside domain of %s: %s", e.Op, e.Detail)
}
