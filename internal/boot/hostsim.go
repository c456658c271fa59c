//go:build !arm

// This file is part of the rp2040 kernel.

package boot

// RunHostSim runs the same reset sequence Run does, but over freshly
// allocated byte slices sized to resemble the real target's .bss/.data
// regions, so the boot path itself is exercised by "go test" without
// any linker symbols to resolve.
func RunHostSim(bssLen, dataLen int, main func() error) error {
	load := make([]byte, dataLen)
	for i := range load {
		load[i] = byte(i + 1)
	}

	s := Sections{
		BSS:      make([]byte, bssLen),
		DataLoad: load,
		DataRun:  make([]byte, dataLen),
	}
	return Run(s, main)
}
