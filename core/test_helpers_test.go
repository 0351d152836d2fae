// Package core_test contains test helpers for formulath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for the
//     core data model.
//   - Keep core tests stdlib-only (no third-party assertion frameworks);
//     the pipeline-stage packages use testify instead.
package core_test

import (
	"testing"

	"github.com/katalvlaran/formulath/core"
)

// Common names used across core tests.
const (
	NamePrice = "price"
	NameTax   = "tax"
	NameTotal = "total"
	NameX     = "X"
)

// Common values used across core tests (avoid magic numbers in test bodies).
const (
	ValPrice = 100.0
	ValTax   = 0.2

	ValFirst  = 1.0
	ValSecond = 2.0
)

// NewShadowedEnv returns bindings where NameX is bound twice; the first
// binding (ValFirst) must win every lookup.
func NewShadowedEnv() core.Bindings {
	return core.Bindings{
		core.BindNumber(NameX, ValFirst),
		core.BindNumber(NameX, ValSecond),
	}
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		t.Fatalf("%s: expected true", op)
	}
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		t.Fatalf("%s: expected false", op)
	}
}

// MustEqual FAILS the test if got != want (same dynamic type and value).
func MustEqual(t *testing.T, want, got interface{}, op string) {
	t.Helper()

	if want != got {
		t.Fatalf("%s: want %v, got %v", op, want, got)
	}
}
