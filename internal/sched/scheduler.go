// This file is part of the rp2040 kernel.

package sched

import (
	"github.com/armkernel/rp2040/internal/arch/armv6m"
	"github.com/armkernel/rp2040/internal/critsec"
	"github.com/armkernel/rp2040/internal/heap"
	"github.com/armkernel/rp2040/internal/kerrors"
	"github.com/armkernel/rp2040/internal/klog"
)

// Scheduler owns the ready queue and the currently running Process. A
// kernel embeds exactly one Scheduler; internal/kernelmain constructs
// it once at boot.
type Scheduler struct {
	arena   *heap.Arena
	ready   queue
	current *Process
	kernel  *Process
	log     *klog.UART
}

// SetLogger attaches the logger a task panic is reported to before the
// kernel re-panics. Safe to call before or after Init; nil is a valid
// value and simply means a panicking task has nowhere to log to.
func (s *Scheduler) SetLogger(log *klog.UART) {
	s.log = log
}

// New creates a Scheduler whose Process stacks are carved from arena.
func New(arena *heap.Arena) *Scheduler {
	return &Scheduler{arena: arena}
}

// Init bootstraps the Scheduler's notion of "the process that is
// already running": the boot path itself, represented as a Process with
// no stack of its own (it runs on whatever stack _start set up). Init
// must be called exactly once, before any Create, Spawn, or Run.
func (s *Scheduler) Init() {
	s.kernel = &Process{Name: "kernel", State: Running}
	s.current = s.kernel
	armv6m.Bootstrap(&s.kernel.ctx)
	armv6m.OnTaskReturn = func(code int32) {
		s.exitWithCode(s.current, code)
	}
}

const minStackSize = armv6m.FrameSize

// Create allocates a stack of stackSize bytes from the Scheduler's
// arena and primes a new Process to begin executing entry with args on
// its first resumption. The returned Process is not yet scheduled;
// call Enqueue to make it runnable.
func (s *Scheduler) Create(name string, entry armv6m.EntryFunc, args uintptr, stackSize int) (*Process, error) {
	if stackSize < minStackSize {
		return nil, kerrors.Errorf(kerrors.StackTooSmall, stackSize, minStackSize)
	}

	stack, err := s.arena.Alloc(stackSize, armv6m.StackAlignment)
	if err != nil {
		return nil, err
	}

	p := &Process{Name: name, State: Ready, stack: stack}

	ctx, err := armv6m.Prime(stack, entry, args, armv6m.TrampolineAddr)
	if err != nil {
		return nil, err
	}
	p.ctx = ctx

	armv6m.Spawn(&p.ctx, func() { runTrampoline(s, p, entry, args) })

	return p, nil
}

// Enqueue makes p runnable by appending it to the tail of the ready
// queue.
func (s *Scheduler) Enqueue(p *Process) error {
	if err := s.ready.push(p); err != nil {
		return err
	}
	p.State = Ready
	return nil
}

// Spawn is Create followed by Enqueue, the common case of bringing a
// new task online in one step.
func (s *Scheduler) Spawn(name string, entry armv6m.EntryFunc, args uintptr, stackSize int) (*Process, error) {
	p, err := s.Create(name, entry, args, stackSize)
	if err != nil {
		return nil, err
	}
	if err := s.Enqueue(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Run starts the scheduling loop: it switches from the kernel's own
// Context into the head of the ready queue and does not return until
// the ready queue is empty and nothing remains to run. Run must be
// called after Init; once it has returned, it may be called again for a
// later batch of Processes.
func (s *Scheduler) Run() error {
	if s.current != s.kernel {
		return kerrors.Errorf(kerrors.SchedulerAlreadyRun)
	}

	for {
		next := s.ready.pop()
		if next == nil {
			return nil
		}
		next.State = Running
		s.current = next
		s.doSwitch(s.kernel, next)
		s.current = s.kernel
	}
}

// Yield suspends the calling Process, re-enqueues it at the tail of the
// ready queue, and resumes the next Ready Process (or the kernel's own
// run loop if the ready queue is empty). Yield must not be called from
// the kernel Process itself.
func (s *Scheduler) Yield() error {
	prev := s.current
	if prev == s.kernel {
		return kerrors.Errorf(kerrors.YieldFromKernel)
	}

	if err := s.Enqueue(prev); err != nil {
		return err
	}

	next := s.ready.pop()
	if next == nil {
		next = s.kernel
	}

	s.current = next
	next.State = Running
	s.doSwitch(prev, next)
	s.current = prev
	prev.State = Running
	return nil
}

// Exit retires the calling Process with the given exit code: it is
// marked Exited, its Context is released from the switch backend's
// bookkeeping, and control passes to the next Ready Process or back to
// the kernel's run loop. Exit never returns to its caller. Exit must
// not be called from the kernel Process itself.
func (s *Scheduler) Exit(code int32) error {
	if s.current == s.kernel {
		return kerrors.Errorf(kerrors.ExitFromKernel)
	}
	s.exitWithCode(s.current, code)
	return nil
}

// exitWithCode is the shared retirement path used both by Exit and by
// OnTaskReturn, the trampoline's landing point for an entry function
// that returns on its own instead of calling Exit explicitly.
func (s *Scheduler) exitWithCode(prev *Process, code int32) {
	prev.State = Exited
	prev.ExitCode = code

	next := s.ready.pop()
	if next == nil {
		next = s.kernel
	}

	s.current = next
	next.State = Running

	// prev is never switched back into once the retiring switch below
	// runs, so its bookkeeping is released first and the switch itself
	// must not re-register it for a resume that will never come.
	armv6m.Retire(&prev.ctx)
	s.doSwitchRetiring(prev, next)
}

// Current returns the Process presently running, or nil before Init.
func (s *Scheduler) Current() *Process {
	return s.current
}

// doSwitch brackets the architecture-specific context switch in a
// critical section and short-circuits when prev and next are the same
// Process, per the precondition switchContext itself assumes.
func (s *Scheduler) doSwitch(prev, next *Process) {
	if prev == next {
		return
	}

	g := critsec.Enter()
	defer g.Exit()

	armv6m.SwitchContext(&prev.ctx, &next.ctx)
}

// doSwitchRetiring is doSwitch's counterpart for the Exit path: prev is
// already retired (armv6m.Retire has been called) and will never be
// switched into again, so the switch must not re-register it for a
// future resume the way a plain SwitchContext would.
func (s *Scheduler) doSwitchRetiring(prev, next *Process) {
	g := critsec.Enter()
	defer g.Exit()

	armv6m.SwitchContextRetiring(&prev.ctx, &next.ctx)
}
