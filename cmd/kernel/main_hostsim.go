//go:build !arm

// This file is part of the rp2040 kernel.

// Command kernel, built without the "arm" tag, runs the kernel against
// the hosted simulation platform: an in-memory LED and a terminal UART
// sink. It is the development and CI entry point; "go build -tags arm" instead
// produces the real target's image via the external toolchain.
package main

import (
	"fmt"
	"os"

	"github.com/armkernel/rp2040/internal/boot"
	"github.com/armkernel/rp2040/internal/kernelmain"
	"github.com/armkernel/rp2040/internal/platform/hostsim"
)

func main() {
	p := hostsim.New("/dev/tty")
	defer p.Close()

	k := kernelmain.New(p, make([]byte, kernelmain.HeapSize))

	err := boot.RunHostSim(1024, 1024, k.Main)
	if err != nil {
		fmt.Fprintln(os.Stderr, "kernel exited:", err)
		os.Exit(1)
	}
}
