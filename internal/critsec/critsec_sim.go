//go:build !arm

// This file is part of the rp2040 kernel.

package critsec

import (
	"golang.org/x/sys/unix"
)

// On the hosted backend there is no PRIMASK: the nearest analogue to
// "nothing can preempt me for a moment" is blocking the signals a host
// test harness might use to simulate an asynchronous interrupt
// (SIGALRM). Like PRIMASK, this is
// thread-local kernel state, not a lock: nested Enter/Exit pairs each
// independently save and restore the mask word in force at the time,
// the same way PRIMASK nesting works on the real target.
func enter() Guard {
	var oldset unix.Sigset_t
	blockset := unix.Sigset_t{}
	addSignal(&blockset, unix.SIGALRM)
	_ = unix.SigprocMask(unix.SIG_BLOCK, &blockset, &oldset)
	return Guard{primask: encodeSigset(oldset)}
}

func exit(g Guard) {
	oldset := decodeSigset(g.primask)
	_ = unix.SigprocMask(unix.SIG_SETMASK, &oldset, nil)
}

// addSignal sets bit (sig-1) in a Sigset_t, matching the layout
// unix.SigprocMask expects on Linux.
func addSignal(set *unix.Sigset_t, sig unix.Signal) {
	set.Val[(sig-1)/64] |= 1 << (uint(sig-1) % 64)
}

// encodeSigset/decodeSigset narrow the host's Sigset_t down to the
// single word Guard carries; this kernel only ever blocks SIGALRM, so
// only the first word of the mask is significant.
func encodeSigset(set unix.Sigset_t) uint32 {
	return uint32(set.Val[0])
}

func decodeSigset(v uint32) unix.Sigset_t {
	var set unix.Sigset_t
	set.Val[0] = uint64(v)
	return set
}
