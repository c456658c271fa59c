// This file is part of the rp2040 kernel.

// Package sched implements the cooperative round-robin scheduler: the
// Process run queue, Create/Spawn/Enqueue/Run/Yield/Exit operations, and
// the critical-section-bracketed switch that hands control from one
// Process to the next.
package sched

import "github.com/armkernel/rp2040/internal/arch/armv6m"

// State is a Process's position in its lifecycle.
type State int

const (
	// Ready means the Process is sitting in the run queue waiting for
	// its turn.
	Ready State = iota
	// Running means the Process is the one currently executing.
	Running
	// Exited means the Process has called Exit and will never run
	// again; it remains reachable only via its own stack's lifetime.
	Exited
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Process is one cooperatively scheduled unit of execution: a saved
// machine Context and the stack memory it runs on, linked into the run
// queue by next/prev.
type Process struct {
	Name     string
	State    State
	ExitCode int32
	ctx      armv6m.Context
	stack    []byte

	next *Process
	prev *Process
}
