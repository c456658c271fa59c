// This file is part of the rp2040 kernel.
//
// Package ktest collects small helpers shared by the kernel's test suites:
// equality assertions with readable failure messages, and a couple of
// bounded io.Writer implementations used to capture log output without
// growing without bound.
package ktest

import (
	"reflect"
	"testing"
)

// Equate fails the test if got and want are not deeply equal.
func Equate(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v", got, want)
	}
}

// ExpectEquality is an alias for Equate, matching the name used by some of
// the kernel's older test files.
func ExpectEquality(t *testing.T, got, want interface{}) {
	t.Helper()
	Equate(t, got, want)
}

// ExpectedSuccess fails the test if ok is false.
func ExpectedSuccess(t *testing.T, ok bool) {
	t.Helper()
	if !ok {
		t.Errorf("expected success, got failure")
	}
}

// ExpectedFailure fails the test if ok is true.
func ExpectedFailure(t *testing.T, ok bool) {
	t.Helper()
	if ok {
		t.Errorf("expected failure, got success")
	}
}
