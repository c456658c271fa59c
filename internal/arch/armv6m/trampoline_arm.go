//go:build arm

// This file is part of the rp2040 kernel.

package armv6m

// trampolineSymbolAddr returns the address of the trampoline label in
// trampoline_armv6m.s, with the Thumb bit already set by the assembler
// (it is only ever referenced via a function symbol, never called
// directly from Go).
//
//go:noescape
func trampolineSymbolAddr() uint32

// TrampolineAddr is the value Prime's trampolineAddr parameter must be
// given for a Process to resume correctly on the real target.
var TrampolineAddr = trampolineSymbolAddr()

// OnTaskReturn is called by taskReturn (below) when an entry function
// returns instead of yielding forever. internal/sched registers this
// during Scheduler.Init to forward into Scheduler.Exit for whichever
// Process is currently running.
var OnTaskReturn func(code int32)

// taskReturn is the Go-side landing point for trampoline_armv6m.s's
// "bl taskReturn": it receives entry's AAPCS return value in the code
// parameter and forwards to OnTaskReturn. It does not return.
func taskReturn(code int32) {
	if OnTaskReturn != nil {
		OnTaskReturn(code)
	}
}
