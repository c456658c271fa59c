//go:build !arm

// This file is part of the rp2040 kernel.

package armv6m

import (
	"runtime"
	"sync"
)

// handoff is the hosted stand-in for a suspended Process: a goroutine
// parked on resume, waiting to be told to run.
type handoff struct {
	resume chan struct{}
	done   chan struct{}
}

var (
	registryMu sync.Mutex
	registry   = map[*Context]*handoff{}
)

func handoffFor(ctx *Context) *handoff {
	registryMu.Lock()
	defer registryMu.Unlock()
	h, ok := registry[ctx]
	if !ok {
		h = &handoff{resume: make(chan struct{}), done: make(chan struct{})}
		registry[ctx] = h
	}
	return h
}

// Bootstrap registers ctx as the currently running context without
// starting a goroutine for it — used once, for the kernel's own initial
// process, which is already "running" on the host's main goroutine.
func Bootstrap(ctx *Context) {
	handoffFor(ctx)
}

// Spawn registers ctx and starts body parked on a goroutine that blocks
// until the first SwitchContext resumes it. body is expected to call
// Exit (via the scheduler) rather than return; a returning body is
// treated as a programming error in the caller, not handled here.
func Spawn(ctx *Context, body func()) {
	h := handoffFor(ctx)
	go func() {
		<-h.resume
		body()
		close(h.done)
	}()
}

// SwitchContext suspends prev and resumes next. The caller (sched.doSwitch)
// guarantees prev != next and that both have been registered via
// Bootstrap or Spawn. The hosted backend has no register file to save;
// the Context values themselves are only used as map keys identifying
// which goroutine to wake and which to block.
func SwitchContext(prev, next *Context) {
	nh := handoffFor(next)
	ph := handoffFor(prev)

	nh.resume <- struct{}{}
	<-ph.resume
}

// SwitchContextRetiring resumes next without re-registering prev: prev
// has already been passed to Retire and its Process will never be
// switched into again, so there is nothing to block on afterward. The
// calling goroutine then ends through runtime.Goexit (its deferred calls
// still run), so neither this function nor the Exit that reached it
// returns. Plain SwitchContext would otherwise call handoffFor(prev)
// itself, silently recreating the entry Retire just deleted and leaking
// a goroutine permanently parked on a resume signal nobody will ever send.
func SwitchContextRetiring(prev, next *Context) {
	nh := handoffFor(next)
	nh.resume <- struct{}{}
	runtime.Goexit()
}

// Retire releases the bookkeeping associated with ctx once its Process
// has exited and will never be switched into again. Must be followed by
// SwitchContextRetiring, not SwitchContext, or ctx's entry is silently
// recreated by the next switch's own lookup.
func Retire(ctx *Context) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, ctx)
}
