//go:build !arm

// This file is part of the rp2040 kernel.

package armv6m

// TrampolineAddr is carried only for parity with the real backend's
// Context.PC field; the hosted backend never branches through it; Spawn
// instead runs the launch closure the caller supplies directly on its
// own goroutine. Its value is otherwise arbitrary.
const TrampolineAddr = 0xffff0000

// OnTaskReturn exists for API parity with the arm backend. The hosted
// backend has no trampoline to call it from: internal/sched's Create
// passes a launch closure straight to Spawn that calls Scheduler.Exit
// itself when entry returns.
var OnTaskReturn func(code int32)
