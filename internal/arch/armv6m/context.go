// This file is part of the rp2040 kernel.

package armv6m

// Context is the saved machine state of a suspended Process, in the
// canonical {sp, fp, pc} shape. switchContext reads and writes only SP:
// r4-r11 (r7, the frame pointer, among them) and LR live on the task's
// own stack, pushed and popped by switchContext — not mirrored here. FP
// and PC are set by Prime for a freshly primed Process and are not
// updated by later switches.
type Context struct {
	SP uint32
	FP uint32
	PC uint32
}

// StackAlignment is the alignment required of SP at every public boundary
// (AAPCS, 8 bytes on ARM).
const StackAlignment = 8

// FrameSize is the size in bytes of the register-save frame switchContext
// pushes on suspend and pops on resume: a pad word, then r8, r9, r10,
// r11, r4, r5, r6, r7, lr (low address to high). r0 is caller-saved
// under AAPCS and is not part of this frame; a freshly primed Process
// instead carries its arguments and entry point in the r8/r9 slots,
// which the trampoline moves into r0 before calling entry. The pad word
// exists only to keep the frame's byte count a multiple of 8: without
// it, nine saved words would leave SP 4-aligned but not 8-aligned after
// every switch, violating AAPCS at the one boundary that must hold it.
// See switch_armv6m.s.
const FrameSize = 10 * 4

// EntryFunc is the ABI a newly primed Process resumes into: the argument
// is delivered in r0 and the exit code is expected back in r0.
type EntryFunc func(args uintptr) int32

// Aligned reports whether sp satisfies StackAlignment.
func Aligned(sp uint32) bool {
	return sp%StackAlignment == 0
}

// Within reports whether sp lies in the inclusive range [base, base+len]
// a stack slice describes, per invariant 1 of the system's data model. The
// upper bound is inclusive because a freshly primed, empty stack has
// SP == base+len before anything is pushed.
func Within(sp, base uint32, length int) bool {
	return sp >= base && sp <= base+uint32(length)
}
