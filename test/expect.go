package test

import "testing"

func expect(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Supported types are bool and error. A nil value is counted as a
// success
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("expected success (%T)", v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Supported types are bool and error
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("expected failure (%T)", v)
		return false
	}
	return true
}

// DemandSuccess is the same as ExpectSuccess except that the test will fail
// immediately on failure
func DemandSuccess(t *testing.T, v any) {
	t.Helper()
	if !expect(t, v) {
		t.Fatalf("expected success (%T)", v)
	}
}
