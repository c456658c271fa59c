//go:build arm

// This file is part of the rp2040 kernel.

package armv6m

// switchContext is implemented in switch_armv6m.s. It saves r4-r11 and lr
// onto the stack pointed to by *prev's SP field, stores the resulting SP
// back into prev, then reloads r4-r11 and lr from the stack pointed to by
// next's SP field and branches to the restored lr.
//
// The caller (sched.doSwitch) holds a critical section across this call
// and guarantees prev != next.
//
//go:noescape
func switchContext(prev, next *Context)

// SwitchContext is the exported entry point internal/sched calls; it
// forwards directly to the assembly routine.
func SwitchContext(prev, next *Context) {
	switchContext(prev, next)
}

// SwitchContextRetiring is identical to SwitchContext on real hardware:
// there is no goroutine registry to leak here, only a register-save
// frame on prev's own stack that is simply never read again once prev
// is off the run queue. The separate name exists for parity with the
// hosted backend, where retiring a Context takes a genuinely different
// path.
func SwitchContextRetiring(prev, next *Context) {
	switchContext(prev, next)
}

// Bootstrap records ctx as the context the reset handler is already
// running on. On real hardware there is nothing to register: ctx.SP
// already holds the live stack pointer by construction of _start, so
// Bootstrap is a no-op kept only for symmetry with the hosted backend.
func Bootstrap(ctx *Context) {}

// Spawn has nothing to start on real hardware: a Process's first
// resumption is driven entirely by the register-save frame Prime wrote,
// which switchContext's restore sequence reads like any other suspended
// task. Kept for symmetry with the hosted backend's signature.
func Spawn(ctx *Context, body func()) {}

// Retire is a no-op on real hardware; a Process's stack is simply never
// scheduled again once removed from the run queue.
func Retire(ctx *Context) {}
