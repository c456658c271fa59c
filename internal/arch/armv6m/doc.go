// This file is part of the rp2040 kernel.
//
// Package armv6m implements the architecture-specific half of the
// scheduler: the Context shape, stack priming, and the switchContext
// primitive that saves one task's callee-saved register set and resumes
// another's.
//
// Two backends exist side by side, selected by the "arm" build tag:
//
//   - switch_armv6m.s / switch_arm.go (tag: arm) is the real target: a
//     hand-written Thumb routine assembled for the ARMv6-M core, built via
//     the external arm-none-eabi toolchain the RP2040 linker pipeline
//     already requires (go build's own assembler does not encode Thumb).
//   - switch_sim.go (tag: !arm) is the hosted stand-in used on every other
//     GOARCH: a goroutine per Process, parked on a channel until the
//     scheduler "switches" into it. It satisfies the identical pre/post
//     contract and is what internal/sched's test suite runs against.
//
// The two backends are written and must be read together: the register
// layout Prime writes into a freshly created stack is meaningless except
// as input to switch_armv6m.s's restore sequence.
package armv6m
