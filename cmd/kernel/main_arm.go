//go:build arm

// This file is part of the rp2040 kernel.

package main

import (
	"unsafe"

	"github.com/armkernel/rp2040/internal/boot"
	"github.com/armkernel/rp2040/internal/kernelmain"
	"github.com/armkernel/rp2040/internal/platform/rp2040"
)

// heapStartSym and heapEndSym are go:extern-bound to the .heap linker
// section's boundary symbols (internal/boot/linkscript/rp2040.ld); a
// plain Go array here would not actually live in that section, so the
// heap region is addressed through the linker symbols directly rather
// than declared as kernel-side storage.
//
//go:extern _heap_start
var heapStartSym [0]byte

//go:extern _heap_end
var heapEndSym [0]byte

func heapRegion() []byte {
	start := uintptr(unsafe.Pointer(&heapStartSym))
	end := uintptr(unsafe.Pointer(&heapEndSym))
	return boot.AddrSlice(start, end)
}

// main runs the reset sequence over the linker-provided sections
// (boot.Run zeroes .bss and copies .data) and then kernel main. If
// kernel main returns an error, main spins forever; if it returns nil,
// main returns.
func main() {
	p := rp2040.New()
	k := kernelmain.New(p, heapRegion())

	if err := boot.Run(boot.LinkerSections(), k.Main); err != nil {
		for {
		}
	}
}
