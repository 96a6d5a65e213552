// Package testutils provides small assertion helpers shared by this
// module's test files, in place of a third-party assertion framework.
package testutils

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"
)

// AssertBigNatsEqual checks that two BigNat-like values render to the same
// string. If not, it reports a test failure with a spew dump of both sides.
func AssertBigNatsEqual(t *testing.T, description string, expected, actual fmt.Stringer) {
	t.Helper()
	if expected.String() != actual.String() {
		t.Errorf(
			"unexpected %s\nexpected: %s\nactual:   %s\n",
			description,
			spew.Sdump(expected),
			spew.Sdump(actual),
		)
	}
}

// AssertBoolsEqual checks if two booleans are equal. If not, it reports a
// test failure.
func AssertBoolsEqual(t *testing.T, description string, expected, actual bool) {
	t.Helper()
	if expected != actual {
		t.Errorf("unexpected %s\nexpected: %v\nactual:   %v\n", description, expected, actual)
	}
}

// AssertBytesEqual checks if the two byte slices are equal. If not, it
// reports a test failure with a diagnostic dump of both sides.
func AssertBytesEqual(t *testing.T, description string, expected, actual []byte) {
	t.Helper()
	if !slices.Equal(expected, actual) {
		t.Errorf(
			"unexpected %s\nexpected: %s\nactual:   %s\n",
			description,
			spew.Sdump(expected),
			spew.Sdump(actual),
		)
	}
}
