// Package eval computes float64 results from parsed expression trees, the
// final stage of the formulath pipeline.
//
// What
//
//   - Evaluate walks a core.Token tree against ordered core.Bindings:
//   - Number → its value;
//   - Reference → first-match lookup, then recursive evaluation of the
//     bound token against the same bindings;
//   - Expr → left, then right, then Op.Apply;
//   - any other variant → InvalidNodeError (nothing else is evaluable).
//   - Resolve starts from a bound name instead of a tree: it looks the name
//     up and evaluates what it finds, with the entry name taking part in
//     the cycle guard like any other link.
//   - Formula is the whole pipeline in one call:
//     scan.Split → lex.Tokens → parse.Expression → Evaluate.
//
// Reference semantics
//
//	References resolve lazily at evaluation time, always against the same
//	bindings the call started with. Chains (A = B + C, B = 4, C = B * 2)
//	work to any depth; diamond-shaped sharing is fine. A chain that
//	re-enters a name currently being resolved is reported as a
//	CyclicReferenceError carrying the loop, e.g. A → B → A. The guard
//	tracks the active resolution path only, so it never misfires on
//	diamonds, and it is always on.
//
// Failure model
//
//	Evaluation is fail-fast: the first error aborts the walk unchanged.
//	Arithmetic itself never fails — division follows IEEE 754 (x/0 is ±Inf,
//	0/0 is NaN) and Pow is math.Pow. What fails is resolution and shape:
//	unknown names (UnknownReferenceError, with a near-miss Suggestion when
//	one is close enough), cycles (CyclicReferenceError), non-evaluable
//	variants (InvalidNodeError), and chains deeper than an opted-in limit
//	(DepthError).
//
// Options
//
//   - WithMaxDepth(d) — cap reference-chain depth at d hops (0 = no limit).
//   - WithOnResolve(fn) — called before each reference resolution.
//   - WithOnApply(fn) — called after each operator application.
//   - WithLogger(lg) — zerolog Debug tracing of both events.
//
// Hooks and the logger are pure diagnostics: nothing is observed or logged
// unless installed, and they never change results.
//
// Complexity
//
//   - Time O(nodes visited); each reference hop adds its bound tree.
//     Bindings lookup is O(len(vars)) per reference.
//
// Usage
//
//	vars := core.Bindings{
//		core.BindNumber("price", 100),
//		core.BindNumber("tax", 0.2),
//	}
//	total, err := eval.Formula("price * (1 + tax)", vars)
//	// total == 120, err == nil
package eval
