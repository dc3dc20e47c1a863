// rtcrack_test_helper_test.go -- shared test assertion helper
//
// (c) 2024 opencoff contributors

package rtcrack

import "testing"

// newAsserter returns a closure that fails the test immediately (via
// t.Fatalf) when cond is false, in the style used throughout this
// package's test files.
func newAsserter(t *testing.T) func(cond bool, f string, v ...interface{}) {
	t.Helper()
	return func(cond bool, f string, v ...interface{}) {
		if !cond {
			t.Helper()
			t.Fatalf(f, v...)
		}
	}
}
