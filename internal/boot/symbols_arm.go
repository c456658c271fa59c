//go:build arm

// This file is part of the rp2040 kernel.

package boot

import "unsafe"

// The linker script (internal/boot/linkscript/rp2040.ld) defines these
// as zero-size symbols marking section boundaries, not as Go objects.
// go:extern binds each var's address to the identically-named linker
// symbol instead of allocating storage for it; a plain package-level
// var with the same name would only coincidentally share spelling with
// the linker symbol and would resolve to its own, unrelated storage.
// The declared type is [0]byte purely so taking its address is legal;
// nothing is ever read through the variable itself.

//go:extern bssStart
var bssStartSym [0]byte

//go:extern bssEnd
var bssEndSym [0]byte

//go:extern dataLoadStart
var dataLoadStartSym [0]byte

//go:extern dataRunStart
var dataRunStartSym [0]byte

//go:extern dataRunEnd
var dataRunEndSym [0]byte

func symAddr(sym *[0]byte) uintptr {
	return uintptr(unsafe.Pointer(sym))
}

// LinkerSections builds a Sections value from the linker-provided
// symbol addresses, for cmd/kernel's real entry point to pass to Run.
func LinkerSections() Sections {
	bssStart := symAddr(&bssStartSym)
	bssEnd := symAddr(&bssEndSym)
	dataLoadStart := symAddr(&dataLoadStartSym)
	dataRunStart := symAddr(&dataRunStartSym)
	dataRunEnd := symAddr(&dataRunEndSym)

	return Sections{
		BSS:      AddrSlice(bssStart, bssEnd),
		DataLoad: AddrSlice(dataLoadStart, dataLoadStart+(dataRunEnd-dataRunStart)),
		DataRun:  AddrSlice(dataRunStart, dataRunEnd),
	}
}
