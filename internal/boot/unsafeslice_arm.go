//go:build arm

// This file is part of the rp2040 kernel.

package boot

import "unsafe"

// AddrSlice turns a linker-provided [start, end) address range into a
// byte slice backed by that exact memory, mirroring the same
// unsafe.Pointer justification internal/platform/rp2040 relies on for
// MMIO: there is no way to describe "this is the memory at this fixed
// address" through a third-party library. Exported so cmd/kernel's
// arm-tagged entry point can build the same kind of slice over the
// linker's .heap region.
func AddrSlice(start, end uintptr) []byte {
	length := int(end - start)
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(start)), length)
}
