// This file is part of the rp2040 kernel.

// Package boot implements the reset path: zeroing .bss, copying .data's
// initial values out of flash, and handing control to kernel main. On
// real hardware this runs before any Go runtime initialization would
// normally occur; the hosted build runs the same sequence against
// plain byte slices so it stays testable.
package boot

// Sections describes the three memory regions _start is responsible
// for before calling into kernel main: bss (zero-initialized, data
// nil), and data's load/run pair (copied from flash to RAM).
type Sections struct {
	BSS      []byte
	DataLoad []byte
	DataRun  []byte
}

// Run performs the reset sequence against s and then calls main. It
// returns main's error, wrapped, if main returns one, and nil otherwise;
// kernel main returns only after Scheduler.Run has drained every
// Process.
func Run(s Sections, main func() error) error {
	zeroBSS(s.BSS)
	copyData(s.DataLoad, s.DataRun)

	if err := main(); err != nil {
		return wrapMainError(err)
	}
	return nil
}

func zeroBSS(bss []byte) {
	for i := range bss {
		bss[i] = 0
	}
}

func copyData(load, run []byte) {
	copy(run, load)
}
