// This file is part of the rp2040 kernel.

// Package heap implements the bump allocator backing Process creation:
// the kernel's only dynamic memory user, and its only fallible
// allocation path.
package heap

import "github.com/armkernel/rp2040/internal/kerrors"

// Arena is a bump allocator over a fixed backing region, typically the
// linker-provided .heap section on the real target or a plain byte
// slice in hosted tests. Arena never frees individual allocations: a
// Process's stack lives for the Process's lifetime, and the kernel
// never reclaims it, matching the system's lifecycle (Processes exit,
// they are not destroyed and recreated at the same address).
type Arena struct {
	region []byte
	offset int
}

// NewArena wraps region as an allocation source. The caller retains
// ownership of region's backing array; Arena never grows it.
func NewArena(region []byte) *Arena {
	return &Arena{region: region}
}

// Alloc returns a zeroed slice of size bytes cut from the arena,
// aligned to align bytes (must be a power of two). It returns
// kerrors.OutOfMemory if the arena cannot satisfy the request.
func (a *Arena) Alloc(size, align int) ([]byte, error) {
	aligned := alignUp(a.offset, align)
	if aligned+size > len(a.region) {
		return nil, kerrors.Errorf(kerrors.OutOfMemory, size, len(a.region)-aligned)
	}

	block := a.region[aligned : aligned+size]
	for i := range block {
		block[i] = 0
	}
	a.offset = aligned + size
	return block, nil
}

// Available reports how many bytes the arena could still hand out,
// ignoring alignment padding.
func (a *Arena) Available() int {
	return len(a.region) - a.offset
}

func alignUp(offset, align int) int {
	if align <= 1 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}
