package core

import "math"

// Op identifies one of the five binary arithmetic operators.
type Op int

// The operator set. Precedence groups: {Add, Sub} < {Mul, Div} < {Pow}.
const (
	Add Op = iota // "+", alias "plus"
	Sub           // "-", alias "minus"
	Mul           // "*", alias "times"
	Div           // "/", alias "div"
	Pow           // "^", alias "pow"
)

// opSpec fixes one operator's surface forms and semantics.
type opSpec struct {
	symbol string
	alias  string
	prec   int
	apply  func(left, right float64) float64
}

// opTable is indexed by Op. Keep declaration order in sync with the const block.
var opTable = [...]opSpec{
	Add: {symbol: "+", alias: "plus", prec: 1, apply: func(l, r float64) float64 { return l + r }},
	Sub: {symbol: "-", alias: "minus", prec: 1, apply: func(l, r float64) float64 { return l - r }},
	Mul: {symbol: "*", alias: "times", prec: 2, apply: func(l, r float64) float64 { return l * r }},
	Div: {symbol: "/", alias: "div", prec: 2, apply: func(l, r float64) float64 { return l / r }},
	Pow: {symbol: "^", alias: "pow", prec: 3, apply: math.Pow},
}

// opByText maps every symbol and every alias to its Op.
var opByText = map[string]Op{
	"+": Add, "plus": Add,
	"-": Sub, "minus": Sub,
	"*": Mul, "times": Mul,
	"/": Div, "div": Div,
	"^": Pow, "pow": Pow,
}

// Lookup resolves an input field to its operator, matching either the
// canonical symbol ("+") or the word alias ("plus"). Aliases are exact and
// lowercase; "Plus" is not an operator. The second result reports whether
// text named an operator at all.
func Lookup(text string) (Op, bool) {
	op, ok := opByText[text]
	return op, ok
}

// Symbol returns the canonical single-character form: "+", "-", "*", "/", "^".
func (op Op) Symbol() string { return opTable[op].symbol }

// Alias returns the word form accepted alongside the symbol:
// "plus", "minus", "times", "div", "pow".
func (op Op) Alias() string { return opTable[op].alias }

// Precedence returns the binding strength: 1 for Add/Sub, 2 for Mul/Div,
// 3 for Pow. Higher binds tighter; equal precedence groups left to right.
func (op Op) Precedence() int { return opTable[op].prec }

// Apply computes the operation over two float64 operands under plain
// IEEE-754 semantics: Div by zero yields ±Inf or NaN, Pow delegates to
// math.Pow. No operator here returns an error.
func (op Op) Apply(left, right float64) float64 { return opTable[op].apply(left, right) }

// String returns the canonical symbol, keeping operators compact inside
// rendered expressions and error messages.
func (op Op) String() string { return opTable[op].symbol }
