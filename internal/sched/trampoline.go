// This file is part of the rp2040 kernel.

package sched

import (
	"github.com/armkernel/rp2040/internal/arch/armv6m"
	"github.com/armkernel/rp2040/internal/kerrors"
	"github.com/armkernel/rp2040/internal/klog"
)

// runTrampoline is the hosted backend's launch closure: it is handed to
// armv6m.Spawn directly and plays the role the real target's
// trampoline_armv6m.s plays for a freshly primed Process — call entry
// with args, then retire the Process through Exit when it returns.
//
// On the arm backend this function is never called; armv6m's own
// OnTaskReturn hook, wired up by Init, plays the equivalent role for a
// Process whose entry function returns instead of calling Yield forever.
//
// A panic from entry is recovered here just long enough to log it
// through the scheduler's attached logger, then re-raised: this kernel
// gives a panicking task no isolation from the rest of the image, it
// only makes sure the cause is visible before the image goes down.
func runTrampoline(s *Scheduler, p *Process, entry armv6m.EntryFunc, args uintptr) {
	defer func() {
		if r := recover(); r != nil {
			if s.log != nil {
				s.log.Log(klog.Panic, p.Name, kerrors.Errorf(kerrors.TaskPanic, r))
			}
			panic(r)
		}
	}()

	code := entry(args)
	s.exitWithCode(p, code)
}
