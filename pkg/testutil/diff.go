package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders a value in a deterministic, pointer-address-free form, so
// that two dumps of structurally equal values compare as equal strings.
func Dump(val interface{}) string {
	return spewConfig.Sdump(val)
}

// AssertEqualText compares two multi-line strings and, on mismatch,
// reports a unified diff instead of testify's one-line quoting, which is
// unreadable for larger dumps.
func AssertEqualText(t *testing.T, exp, act, name string) bool {
	t.Helper()
	if exp == act {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(exp),
		B:        difflib.SplitLines(act),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})
	t.Errorf("%s diff:\n%s", name, diff)
	return false
}

// AssertEqualDump deep-compares two values by way of their Dump
// representations.
func AssertEqualDump(t *testing.T, exp, act interface{}, name string) bool {
	t.Helper()
	return AssertEqualText(t, Dump(exp), Dump(act), name)
}
