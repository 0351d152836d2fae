package parse

import "github.com/katalvlaran/formulath/core"

// parser holds the two stacks of the shunting-yard reduction.
type parser struct {
	operands  []core.Token // values and built subtrees
	operators []core.Token // pending core.Operator and core.OpenParen marks
}

// Expression parses tokens into a single expression tree.
// Returns ErrNoExpression when the sequence reduces to nothing and
// UnexpectedTokenError when a token is grammatically impossible; unbalanced
// parentheses are tolerated in both directions.
func Expression(tokens []core.Token) (core.Token, error) {
	p := &parser{
		operands:  make([]core.Token, 0, len(tokens)),
		operators: make([]core.Token, 0, len(tokens)),
	}

	// 1) Scan left to right, dispatching on the token variant.
	for _, tok := range tokens {
		if err := p.accept(tok); err != nil {
			return nil, err
		}
	}

	// 2) Drain whatever operators remain, then take the result.
	return p.finish()
}

// accept dispatches one incoming token onto the stacks.
func (p *parser) accept(tok core.Token) error {
	switch t := tok.(type) {
	case core.Number, core.Reference:
		p.operands = append(p.operands, t)
		return nil
	case core.OpenParen:
		p.operators = append(p.operators, t)
		return nil
	case core.CloseParen:
		return p.closeScope()
	case core.Operator:
		return p.pushOperator(t)
	default:
		// Expr (or any future variant) cannot occur in lexer output.
		return UnexpectedTokenError{Token: tok, Context: "not a lexer token"}
	}
}

// pushOperator reduces every stacked operator that binds at least as
// tightly as the incoming one, then pushes it. Equal precedence reduces
// first, which makes every operator left-associative, Pow included.
func (p *parser) pushOperator(in core.Operator) error {
	for len(p.operators) > 0 {
		top, isOp := p.operators[len(p.operators)-1].(core.Operator)
		if !isOp || top.Op.Precedence() < in.Op.Precedence() {
			break
		}
		p.operators = p.operators[:len(p.operators)-1]
		if err := p.reduce(top.Op); err != nil {
			return err
		}
	}
	p.operators = append(p.operators, in)

	return nil
}

// closeScope reduces until the nearest OpenParen mark and discards it.
// A stray ")" with no matching mark empties the stack and stops silently.
func (p *parser) closeScope() error {
	for len(p.operators) > 0 {
		top := p.popOperator()
		switch t := top.(type) {
		case core.OpenParen:
			return nil
		case core.Operator:
			if err := p.reduce(t.Op); err != nil {
				return err
			}
		default:
			return UnexpectedTokenError{Token: top, Context: "on the operator stack"}
		}
	}

	return nil
}

// finish drains the operator stack, skipping unmatched OpenParen marks,
// and returns the top of the operand stack.
func (p *parser) finish() (core.Token, error) {
	for len(p.operators) > 0 {
		top := p.popOperator()
		switch t := top.(type) {
		case core.OpenParen:
			// Unmatched "(": tolerated, same as a stray ")".
		case core.Operator:
			if err := p.reduce(t.Op); err != nil {
				return nil, err
			}
		default:
			return nil, UnexpectedTokenError{Token: top, Context: "on the operator stack"}
		}
	}

	if len(p.operands) == 0 {
		return nil, ErrNoExpression
	}

	return p.operands[len(p.operands)-1], nil
}

// reduce pops two operands and pushes the applied operator:
// Expr{second-popped, op, first-popped}. Fewer than two operands means the
// operator sat in a position with no left or no right value.
func (p *parser) reduce(op core.Op) error {
	n := len(p.operands)
	if n < 2 {
		return UnexpectedTokenError{
			Token:   core.Operator{Op: op},
			Context: "operator missing an operand",
		}
	}

	left, right := p.operands[n-2], p.operands[n-1]
	p.operands = append(p.operands[:n-2], core.Expr{Left: left, Op: op, Right: right})

	return nil
}

// popOperator removes and returns the operator stack's top entry.
// Callers check emptiness first.
func (p *parser) popOperator() core.Token {
	top := p.operators[len(p.operators)-1]
	p.operators = p.operators[:len(p.operators)-1]

	return top
}
