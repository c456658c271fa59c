//go:build !arm

// This file is part of the rp2040 kernel.

package sched_test

import (
	"strings"
	"testing"

	"github.com/armkernel/rp2040/internal/klog"
	"github.com/armkernel/rp2040/internal/ktest"
)

func TestPanicInTaskIsLoggedThenRepanics(t *testing.T) {
	s := newScheduler(t)
	log := klog.NewLogger(10)
	sink := &strings.Builder{}
	uart := klog.NewUART(10, sink)
	_ = log

	s.SetLogger(uart)

	_, err := s.Spawn("boom", func(args uintptr) int32 {
		panic("something went wrong")
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	defer func() {
		r := recover()
		ktest.ExpectedSuccess(t, r != nil)
		ktest.ExpectedSuccess(t, strings.Contains(sink.String(), "something went wrong"))
	}()

	_ = s.Run()
	t.Fatal("expected Run to panic when a task panics")
}
