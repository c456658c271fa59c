// This file is part of the rp2040 kernel.

package armv6m_test

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/armkernel/rp2040/internal/arch/armv6m"
	"github.com/armkernel/rp2040/internal/kerrors"
	"github.com/armkernel/rp2040/internal/ktest"
)

func dummyEntry(args uintptr) int32 { return int32(args) }

// alignedStack returns an n-byte slice whose base is 8-byte aligned, so
// its top meets StackAlignment whenever n is a multiple of 8. A plain
// make([]byte, n) gives no such guarantee.
func alignedStack(n int) []byte {
	words := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n)
}

func TestPrimeTooSmallStack(t *testing.T) {
	// One doubleword short of a frame: the top stays aligned, so only
	// the size precondition is violated.
	stack := alignedStack(armv6m.FrameSize - 8)
	_, err := armv6m.Prime(stack, dummyEntry, 0, 0x1000)
	ktest.ExpectedSuccess(t, kerrors.Is(err, kerrors.StackTooSmall))
}

func TestPrimeLeavesArgsAndTrampolineInFrame(t *testing.T) {
	const stackLen = 256
	stack := alignedStack(stackLen)

	const trampoline = 0x1000_0200
	const args = 0xcafef00d

	ctx, err := armv6m.Prime(stack, dummyEntry, args, trampoline)
	ktest.Equate(t, err, nil)

	ktest.ExpectedSuccess(t, armv6m.Aligned(ctx.SP))
	ktest.Equate(t, ctx.PC, uint32(trampoline))
	ktest.Equate(t, ctx.FP, ctx.SP)

	frame := stack[len(stack)-armv6m.FrameSize:]
	gotArgs := binary.LittleEndian.Uint32(frame[1*4 : 2*4])
	gotLR := binary.LittleEndian.Uint32(frame[9*4 : 10*4])

	ktest.Equate(t, gotArgs, uint32(args))
	ktest.Equate(t, gotLR, uint32(trampoline|1))
}
