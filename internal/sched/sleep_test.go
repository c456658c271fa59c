//go:build !arm

// This file is part of the rp2040 kernel.

package sched_test

import (
	"testing"

	"github.com/armkernel/rp2040/internal/ktest"
)

func TestSleepYieldsExactTickCount(t *testing.T) {
	s := newScheduler(t)

	var order []string
	_, err := s.Spawn("sleeper", func(args uintptr) int32 {
		order = append(order, "sleeper-start")
		ktest.Equate(t, s.Sleep(3), nil)
		order = append(order, "sleeper-done")
		return 0
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	otherRounds := 0
	_, err = s.Spawn("other", func(args uintptr) int32 {
		for i := 0; i < 3; i++ {
			otherRounds++
			if err := s.Yield(); err != nil {
				return 1
			}
		}
		return 0
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	ktest.Equate(t, s.Run(), nil)

	// Sleep(3) is exactly three Yield calls: the bystander task, which
	// yields the same three times, finishes its own loop in lockstep
	// with the sleeper rather than running ahead or lagging behind.
	ktest.Equate(t, otherRounds, 3)
	ktest.Equate(t, order, []string{"sleeper-start", "sleeper-done"})
}

func TestSleepZeroTicksReturnsImmediately(t *testing.T) {
	s := newScheduler(t)

	ran := false
	_, err := s.Spawn("instant", func(args uintptr) int32 {
		ktest.Equate(t, s.Sleep(0), nil)
		ran = true
		return 0
	}, 0, testStackSize)
	ktest.Equate(t, err, nil)

	ktest.Equate(t, s.Run(), nil)
	ktest.ExpectedSuccess(t, ran)
}
