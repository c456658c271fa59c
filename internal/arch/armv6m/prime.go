// This file is part of the rp2040 kernel.

package armv6m

import (
	"encoding/binary"
	"reflect"
	"unsafe"

	"github.com/armkernel/rp2040/internal/kerrors"
)

// frame offsets within the FrameSize-byte register-save block, matching
// the push order in switch_armv6m.s (low address to high: pad, r8, r9,
// r10, r11, r4, r5, r6, r7, lr). Only r8 (args) and r9 (entry) carry
// meaningful values on a freshly primed stack; the trampoline moves
// them into r0 and branches, so the rest are left zeroed.
const (
	offR8 = 1 * 4
	offR9 = 2 * 4
	offLR = 9 * 4
)

// Prime writes a synthetic register-save frame at the top of stack so
// that the first switchContext resuming this Context lands on the
// trampoline with args and entry sitting in the r8/r9 slots the
// trampoline reads (the "stacked-registers" strategy named in the
// scheduler's design notes).
//
// stack must be aligned to StackAlignment and at least FrameSize bytes
// long; trampolineAddr is the address of the trampoline entry point
// (with the Thumb bit already set) that switch_armv6m.s resumes into.
func Prime(stack []byte, entry EntryFunc, args uintptr, trampolineAddr uint32) (Context, error) {
	base := uintptr(unsafe.Pointer(&stack[0]))
	top := base + uintptr(len(stack))

	if uint32(top)%StackAlignment != 0 {
		return Context{}, kerrors.Errorf(kerrors.StackMisaligned, uint32(top), StackAlignment)
	}
	if len(stack) < FrameSize {
		return Context{}, kerrors.Errorf(kerrors.StackTooSmall, len(stack), FrameSize)
	}

	sp := top - FrameSize
	frame := stack[len(stack)-FrameSize:]

	for i := range frame {
		frame[i] = 0
	}
	binary.LittleEndian.PutUint32(frame[offR8:], uint32(args))
	binary.LittleEndian.PutUint32(frame[offR9:], entryCodePointer(entry))
	binary.LittleEndian.PutUint32(frame[offLR:], trampolineAddr|1)

	return Context{
		SP: uint32(sp),
		FP: uint32(sp),
		PC: trampolineAddr,
	}, nil
}

// entryCodePointer extracts the code address backing a non-closure
// EntryFunc value, for encoding into the primed register-save frame's
// scratch-register slot. The trampoline branches to this address with
// args already in r0.
func entryCodePointer(entry EntryFunc) uint32 {
	return uint32(reflect.ValueOf(entry).Pointer())
}
