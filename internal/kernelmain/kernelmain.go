// This file is part of the rp2040 kernel.

// Package kernelmain wires the platform driver, the heap arena, the
// scheduler, and the demo tasks together into the sequence the boot
// path calls into: platform bring-up, scheduler Init, demo tasks
// spawned, Scheduler.Run, and a final warning if the run queue ever
// drains with nothing left to do.
package kernelmain

import (
	"github.com/armkernel/rp2040/internal/heap"
	"github.com/armkernel/rp2040/internal/klog"
	"github.com/armkernel/rp2040/internal/platform"
	"github.com/armkernel/rp2040/internal/sched"
)

// HeapSize is the size in bytes of the heap region hosted builds and
// tests allocate for the arena backing every Process's stack
// allocation. On the real target the arena instead spans whatever
// internal/boot/linkscript/rp2040.ld's .heap section resolves to at
// link time (cmd/kernel/main_arm.go reads that extent from the
// linker's own _heap_start/_heap_end symbols, currently reserved there
// as 0x8000 bytes to match this constant).
const HeapSize = 0x8000

// TaskStackSize is the stack given to each demo task.
const TaskStackSize = 2048

// Kernel bundles the pieces kernelmain.Main drives.
type Kernel struct {
	Platform platform.Platform
	Log      *klog.UART
	Sched    *sched.Scheduler
}

// New constructs a Kernel over p, with a heap arena spanning heapRegion
// and a scheduler ready for Init.
func New(p platform.Platform, heapRegion []byte) *Kernel {
	arena := heap.NewArena(heapRegion)
	return &Kernel{
		Platform: p,
		Sched:    sched.New(arena),
	}
}

// Main brings the platform up, initializes logging and the scheduler,
// spawns the demo tasks, and runs the scheduler to completion. It
// returns an error if platform Init fails; a run queue that drains to
// empty is reported as a warning on the log, not an error, since it is
// the kernel's normal terminal state in this minimal build.
func (k *Kernel) Main() error {
	if err := k.Platform.Init(); err != nil {
		return err
	}

	k.Log = klog.NewUART(64, k.Platform.LogSink())
	k.Sched.Init()
	k.Sched.SetLogger(k.Log)

	if err := k.spawnDemoTasks(); err != nil {
		return err
	}

	k.Log.Log(klog.Info, "kernelmain", "scheduler starting")
	if err := k.Sched.Run(); err != nil {
		return err
	}

	k.Log.Log(klog.Warn, "kernelmain", "no processes left to run")
	return nil
}

func (k *Kernel) spawnDemoTasks() error {
	led := k.Platform.LED()

	_, err := k.Sched.Spawn("blink", func(args uintptr) int32 {
		return k.blinkTask(led)
	}, 0, TaskStackSize)
	if err != nil {
		return err
	}

	_, err = k.Sched.Spawn("heartbeat", func(args uintptr) int32 {
		return k.heartbeatTask()
	}, 0, TaskStackSize)
	return err
}

// blinkTask toggles the status LED once per scheduling round, yielding
// between toggles so the heartbeat task gets a turn.
func (k *Kernel) blinkTask(led platform.LED) int32 {
	const rounds = 4
	for i := 0; i < rounds; i++ {
		led.Toggle()
		if err := k.Sched.Yield(); err != nil {
			k.Log.Logf(klog.Error, "blink", "yield failed: %v", err)
			return 1
		}
	}
	return 0
}

// heartbeatTask logs once per round so a test or a UART observer can
// see the scheduler alternating between tasks.
func (k *Kernel) heartbeatTask() int32 {
	const rounds = 4
	for i := 0; i < rounds; i++ {
		k.Log.Logf(klog.Info, "heartbeat", "round %d", i)
		if err := k.Sched.Yield(); err != nil {
			k.Log.Logf(klog.Error, "heartbeat", "yield failed: %v", err)
			return 1
		}
	}
	return 0
}
