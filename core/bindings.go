package core

// Variable associates a name with the Token it stands for. The bound Token
// is usually a parsed Expr or a Number, but any Token variant is legal
// here; the evaluator re-enters its own dispatch on whatever it finds.
type Variable struct {
	Name  string
	Value Token
}

// Bind constructs a Variable bound to an arbitrary Token.
func Bind(name string, value Token) Variable {
	return Variable{Name: name, Value: value}
}

// BindNumber constructs a Variable bound to a numeric literal.
func BindNumber(name string, value float64) Variable {
	return Variable{Name: name, Value: Number{Value: value}}
}

// Bindings is an ordered evaluation environment. Order is significant:
// Lookup scans front to back and the first match wins, so earlier bindings
// shadow later ones with the same name. The engine never mutates a
// Bindings value; it only reads it for the duration of one evaluation.
type Bindings []Variable

// Lookup returns the Token bound to name, scanning in binding order.
// The second result reports whether the name is bound at all.
func (b Bindings) Lookup(name string) (Token, bool) {
	for _, v := range b {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Names returns every bound name in binding order, shadowed duplicates
// included. Useful as a candidate list for near-miss suggestions.
func (b Bindings) Names() []string {
	names := make([]string, len(b))
	for i, v := range b {
		names[i] = v.Name
	}
	return names
}
