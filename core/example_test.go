package core_test

import (
	"fmt"

	"github.com/katalvlaran/formulath/core"
)

// ExampleLookup resolves operators from both surface forms.
func ExampleLookup() {
	op, _ := core.Lookup("plus")
	fmt.Println(op.Symbol(), op.Precedence())

	op, _ = core.Lookup("^")
	fmt.Println(op.Alias(), op.Precedence())
	// Output:
	// + 1
	// pow 3
}

// ExampleBindings_Lookup demonstrates first-match-wins shadowing.
func ExampleBindings_Lookup() {
	env := core.Bindings{
		core.BindNumber("rate", 0.5),
		core.BindNumber("rate", 0.9), // shadowed, never seen
	}

	tok, ok := env.Lookup("rate")
	fmt.Println(tok, ok)

	_, ok = env.Lookup("fee")
	fmt.Println(ok)
	// Output:
	// 0.5 true
	// false
}

// ExampleExpr_String renders a parsed tree with its grouping made explicit.
func ExampleExpr_String() {
	tree := core.Expr{
		Left: core.Number{Value: 2},
		Op:   core.Add,
		Right: core.Expr{
			Left:  core.Number{Value: 2},
			Op:    core.Mul,
			Right: core.Number{Value: 2},
		},
	}
	fmt.Println(tree)
	// Output:
	// (2 + (2 * 2))
}
