// This file is part of the rp2040 kernel.

// Command gen patches the CRC-32/MPEG-2 checksum into a raw 256-byte
// second-stage bootloader image in place, for use as:
//
//	go run ./internal/bootrom/gen -in stage2.bin -out stage2_patched.bin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/armkernel/rp2040/internal/bootrom"
)

func main() {
	in := flag.String("in", "", "path to the raw 256-byte stage-2 image")
	out := flag.String("out", "", "path to write the patched image")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: gen -in stage2.bin -out stage2_patched.bin")
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read:", err)
		os.Exit(1)
	}

	if err := bootrom.Patch(data); err != nil {
		fmt.Fprintln(os.Stderr, "patch:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}
}
