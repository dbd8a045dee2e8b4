package test

import "testing"

// ExpectPanic tests that the supplied function panics. Useful for testing
// functions that treat misuse as a programming error rather than returning an
// error value
func ExpectPanic(t *testing.T, f func()) bool {
	t.Helper()

	panicked := false

	func() {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		f()
	}()

	if !panicked {
		t.Errorf("expected panic but function returned normally")
	}

	return panicked
}

// ExpectNoPanic tests that the supplied function returns without panicking
func ExpectNoPanic(t *testing.T, f func()) bool {
	t.Helper()

	panicked := true

	func() {
		defer func() {
			if v := recover(); v != nil {
				t.Errorf("unexpected panic: %v", v)
			}
		}()
		f()
		panicked = false
	}()

	return !panicked
}
