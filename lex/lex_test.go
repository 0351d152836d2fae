package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/lex"
	"github.com/katalvlaran/formulath/scan"
)

// TestTokens_ClassPriority verifies the per-field priority: operator beats
// everything, then number, then paren, then the reference fallback.
func TestTokens_ClassPriority(t *testing.T) {
	cases := []struct {
		field string
		want  core.Token
	}{
		{"+", core.Operator{Op: core.Add}},
		{"pow", core.Operator{Op: core.Pow}},
		{"div", core.Operator{Op: core.Div}}, // alias, would otherwise read as a name
		{"42", core.Number{Value: 42}},
		{"3.14", core.Number{Value: 3.14}},
		{".5", core.Number{Value: 0.5}},
		{"5.", core.Number{Value: 5}},
		{"007", core.Number{Value: 7}},
		{"(", core.OpenParen{}},
		{")", core.CloseParen{}},
		{"price", core.Reference{Name: "price"}},
		{"x2", core.Reference{Name: "x2"}},
	}

	for _, tc := range cases {
		got := lex.Tokens([]string{tc.field})
		require.Len(t, got, 1, "field %q", tc.field)
		assert.Equal(t, tc.want, got[0], "field %q", tc.field)
	}
}

// TestTokens_ReferenceFallbackIsTotal verifies that every field the first
// three classes reject still classifies, as a reference.
func TestTokens_ReferenceFallbackIsTotal(t *testing.T) {
	for _, field := range []string{"1.2.3", "2x", ".", "..", "!", "~", "Plus", "net_total", "впп"} {
		got := lex.Tokens([]string{field})
		require.Len(t, got, 1, "field %q", field)
		assert.Equal(t, core.Reference{Name: field}, got[0], "field %q", field)
	}
}

// TestTokens_Empty verifies empty input yields no tokens.
func TestTokens_Empty(t *testing.T) {
	assert.Nil(t, lex.Tokens(nil))
	assert.Nil(t, lex.Tokens([]string{}))
}

// TestTokens_PipelineOrder runs scan output through the lexer and checks
// the token sequence preserves field order one to one.
func TestTokens_PipelineOrder(t *testing.T) {
	toks := lex.Tokens(scan.Split("(price + 2) * 3"))

	want := []core.Token{
		core.OpenParen{},
		core.Reference{Name: "price"},
		core.Operator{Op: core.Add},
		core.Number{Value: 2},
		core.CloseParen{},
		core.Operator{Op: core.Mul},
		core.Number{Value: 3},
	}
	assert.Equal(t, want, toks)
}

// TestStrict_NumberFormat verifies strict mode rejects numeric-led fields
// with a broken shape, while Tokens stays total on the same input.
func TestStrict_NumberFormat(t *testing.T) {
	for _, field := range []string{"1.2.3", "2x", ".", "3..14"} {
		_, err := lex.Strict([]string{"1", "+", field})
		require.Error(t, err, "field %q", field)

		var nfe lex.NumberFormatError
		require.ErrorAs(t, err, &nfe, "field %q", field)
		assert.Equal(t, field, nfe.Field)
		assert.Equal(t, 2, nfe.Index)

		// The total lexer classifies the same field as a reference.
		assert.Equal(t, core.Reference{Name: field}, lex.Tokens([]string{field})[0])
	}
}

// TestStrict_UnknownToken verifies strict mode rejects fields that embed a
// forced-split character and thus cannot be splitter output.
func TestStrict_UnknownToken(t *testing.T) {
	for _, field := range []string{"+x", "a(b", "2*3", "--"} {
		_, err := lex.Strict([]string{field})
		require.Error(t, err, "field %q", field)

		var ute lex.UnknownTokenError
		require.ErrorAs(t, err, &ute, "field %q", field)
		assert.Equal(t, field, ute.Field)
		assert.Equal(t, 0, ute.Index)
	}
}

// TestStrict_EmbeddingBeatsNumberFormat verifies the error precedence on a
// field that violates both rules at once.
func TestStrict_EmbeddingBeatsNumberFormat(t *testing.T) {
	_, err := lex.Strict([]string{"1.2+3"})

	var ute lex.UnknownTokenError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "1.2+3", ute.Field)
}

// TestStrict_CleanInputMatchesTokens verifies strict and total modes agree
// on anything the splitter can actually produce.
func TestStrict_CleanInputMatchesTokens(t *testing.T) {
	for _, src := range []string{
		"2 + 2 * 2",
		"( margin plus 2.5 ) times units",
		"15 / 2 ^ 3",
		"! ~",
		"",
	} {
		fields := scan.Split(src)

		strict, err := lex.Strict(fields)
		require.NoError(t, err, "input %q", src)
		assert.Equal(t, lex.Tokens(fields), strict, "input %q", src)
	}
}
