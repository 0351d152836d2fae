package parse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/formulath/core"
)

// ErrNoExpression is returned when the token sequence reduces to nothing:
// empty input, or grouping marks with no operands inside.
var ErrNoExpression = errors.New("parse: no expression")

// UnexpectedTokenError is returned when a token appears in a position the
// grammar cannot accept: an operator short of operands, or a variant that
// has no business in the parser's input or on its operator stack.
type UnexpectedTokenError struct {
	Token   core.Token
	Context string
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("parse: unexpected token %s: %s", e.Token, e.Context)
}
