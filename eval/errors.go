package eval

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/formulath/core"
)

// UnknownReferenceError is returned when a reference names nothing in the
// bindings. Suggestion carries the closest bound name when one is within
// typo range, else it is empty.
type UnknownReferenceError struct {
	Name       string
	Suggestion string
}

func (e UnknownReferenceError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("eval: unknown reference %q (closest binding: %q)", e.Name, e.Suggestion)
	}

	return fmt.Sprintf("eval: unknown reference %q", e.Name)
}

// CyclicReferenceError is returned when resolution re-enters a name that
// is already being resolved. Chain lists the resolution path ending with
// the re-entered name: A → B → A.
type CyclicReferenceError struct {
	Chain []string
}

func (e CyclicReferenceError) Error() string {
	return fmt.Sprintf("eval: cyclic reference: %s", strings.Join(e.Chain, " → "))
}

// InvalidNodeError is returned when the walk reaches a token variant that
// has no value: a bare operator, a grouping mark, or a nil token. Vars
// carries the bindings in effect for diagnosis.
type InvalidNodeError struct {
	Token  core.Token
	Vars   core.Bindings
	Reason string
}

func (e InvalidNodeError) Error() string {
	return fmt.Sprintf("eval: cannot evaluate %s: %s", tokenLabel(e.Token), e.Reason)
}

// DepthError is returned when a reference chain nests deeper than the
// WithMaxDepth limit.
type DepthError struct {
	Limit int
}

func (e DepthError) Error() string {
	return fmt.Sprintf("eval: reference chain exceeds depth limit %d", e.Limit)
}

// tokenLabel renders a token for messages, tolerating nil.
func tokenLabel(tok core.Token) string {
	if tok == nil {
		return "<nil>"
	}

	return tok.String()
}
