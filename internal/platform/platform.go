// This file is part of the rp2040 kernel.

// Package platform declares the driver surface the kernel depends on
// and nothing else: boot-time clock/pin setup, a status LED, and a log
// sink. internal/platform/rp2040 implements it against real MMIO;
// internal/platform/hostsim implements it against a host terminal.
package platform

import "io"

// LED is the single on-board status indicator the scheduler's demo
// tasks toggle.
type LED interface {
	On()
	Off()
	Toggle()
}

// Platform is everything internal/kernelmain needs from the board
// before it can hand control to the scheduler.
type Platform interface {
	// Init performs clock-tree and pin setup. It is called once, before
	// Scheduler.Init, from the boot path.
	Init() error

	// LED returns the board's status LED.
	LED() LED

	// LogSink returns the io.Writer internal/klog's UART sink writes
	// formatted log lines to.
	LogSink() io.Writer
}

// Profile describes a board variant the kernel can target: which core
// runs _start, and what the other core is left doing. RP2040 is dual
// core; only core 0 runs this kernel today, but Name lets a boot trace
// record which profile it came up under.
type Profile struct {
	Name          string
	BootCore      int
	ParkOtherCore bool
}

// RP2040 is the only profile this kernel currently boots under: core 0
// runs _start, core 1 is left parked in boot ROM.
var RP2040 = Profile{
	Name:          "rp2040",
	BootCore:      0,
	ParkOtherCore: true,
}
