//go:build !arm

// This file is part of the rp2040 kernel.

package sched_test

import (
	"testing"

	"github.com/armkernel/rp2040/internal/heap"
	"github.com/armkernel/rp2040/internal/kerrors"
	"github.com/armkernel/rp2040/internal/ktest"
	"github.com/armkernel/rp2040/internal/sched"
)

func newScheduler(t *testing.T) *sched.Scheduler {
	t.Helper()
	arena := heap.NewArena(make([]byte, 16*1024))
	s := sched.New(arena)
	s.Init()
	return s
}

const testStackSize = 4096

func TestTwoTaskAlternation(t *testing.T) {
	s := newScheduler(t)

	var trace []string

	spawn := func(name string) {
		_, err := s.Spawn(name, func(args uintptr) int32 {
			trace = append(trace, name+"-a")
			ktest.Equate(t, s.Yield(), nil)
			trace = append(trace, name+"-b")
			return 0
		}, 0, testStackSize)
		ktest.Equate(t, err, nil)
	}

	spawn("one")
	spawn("two")

	ktest.Equate(t, s.Run(), nil)

	ktest.Equate(t, trace, []string{"one-a", "two-a", "one-b", "two-b"})
}

func TestYieldFromKernelRejected(t *testing.T) {
	s := newScheduler(t)
	ktest.ExpectedSuccess(t, kerrors.Is(s.Yield(), kerrors.YieldFromKernel))
}

func TestExitFromKernelRejected(t *testing.T) {
	s := newScheduler(t)
	ktest.ExpectedSuccess(t, kerrors.Is(s.Exit(0), kerrors.ExitFromKernel))
}

func TestExitOrdering(t *testing.T) {
	s := newScheduler(t)
	var trace []string

	_, err := s.Spawn("short", func(args uintptr) int32 {
		trace = append(trace, "short-run")
		return 7
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	_, err = s.Spawn("long", func(args uintptr) int32 {
		trace = append(trace, "long-a")
		ktest.Equate(t, s.Yield(), nil)
		trace = append(trace, "long-b")
		return 0
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	ktest.Equate(t, s.Run(), nil)

	ktest.Equate(t, trace, []string{"short-run", "long-a", "long-b"})
}

func TestExplicitExitSetsCode(t *testing.T) {
	s := newScheduler(t)
	var trace []string

	spawn := func(name string) *sched.Process {
		p, err := s.Spawn(name, func(args uintptr) int32 {
			ktest.Equate(t, s.Yield(), nil)
			trace = append(trace, name)
			ktest.Equate(t, s.Exit(42), nil)
			panic("unreachable: Exit must not return")
		}, 0, testStackSize)
		ktest.Equate(t, err, nil)
		return p
	}

	a := spawn("a")
	b := spawn("b")
	c := spawn("c")

	ktest.Equate(t, s.Run(), nil)

	ktest.Equate(t, trace, []string{"a", "b", "c"})
	for _, p := range []*sched.Process{a, b, c} {
		ktest.Equate(t, p.State, sched.Exited)
		ktest.Equate(t, p.ExitCode, int32(42))
	}
}

func TestTaskReturnIsImplicitExit(t *testing.T) {
	s := newScheduler(t)

	p, err := s.Spawn("returns", func(args uintptr) int32 {
		return 42
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	ktest.Equate(t, s.Run(), nil)
	ktest.Equate(t, p.State, sched.Exited)
	ktest.Equate(t, p.ExitCode, int32(42))
}

func TestArgsPassedThroughTrampoline(t *testing.T) {
	s := newScheduler(t)

	var got uintptr
	_, err := s.Spawn("args", func(args uintptr) int32 {
		got = args
		return 0
	}, 0xABCD, testStackSize)
	ktest.Equate(t, err, nil)

	ktest.Equate(t, s.Run(), nil)
	ktest.Equate(t, got, uintptr(0xABCD))
}

func TestRunCanBeReenteredOnceDrained(t *testing.T) {
	s := newScheduler(t)
	_, err := s.Spawn("first", func(args uintptr) int32 { return 0 }, 0, testStackSize)
	ktest.Equate(t, err, nil)
	ktest.Equate(t, s.Run(), nil)

	// Run drains back to the kernel Process between invocations, so a
	// later batch of work can reuse the same Scheduler.
	_, err = s.Spawn("second", func(args uintptr) int32 { return 0 }, 0, testStackSize)
	ktest.Equate(t, err, nil)
	ktest.Equate(t, s.Run(), nil)
}

func TestReentrantRunRejected(t *testing.T) {
	s := newScheduler(t)

	var innerErr error
	_, err := s.Spawn("reentrant", func(args uintptr) int32 {
		innerErr = s.Run()
		return 0
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	ktest.Equate(t, s.Run(), nil)
	ktest.ExpectedSuccess(t, kerrors.Is(innerErr, kerrors.SchedulerAlreadyRun))
}

func TestRunWithNoProcessesReturnsImmediately(t *testing.T) {
	s := newScheduler(t)
	ktest.Equate(t, s.Run(), nil)
}
