// Package test contains helper functions to remove common boilerplate in
// test functions.
//
// The Expect functions record a test error and allow the test to continue.
// The Demand functions end the test immediately on failure; they should be
// used when subsequent testing makes no sense in the presence of the failure.
//
// ExpectPanic and ExpectNoPanic are for functions that enforce their
// contracts with panics rather than error values.
package test
