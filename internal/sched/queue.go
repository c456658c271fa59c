// This file is part of the rp2040 kernel.

package sched

import "github.com/armkernel/rp2040/internal/kerrors"

// queue is an intrusive, doubly-linked FIFO of Process values: Process
// itself carries the next/prev links, so enqueueing never allocates.
type queue struct {
	head *Process
	tail *Process
	len  int
}

func (q *queue) empty() bool {
	return q.head == nil
}

// push appends p to the tail of the queue. Pushing a Process already
// linked into a queue is a caller error; it is reported rather than
// silently corrupting the list.
func (q *queue) push(p *Process) error {
	if p.next != nil || p.prev != nil || q.head == p {
		return kerrors.Errorf(kerrors.ProcessAlreadyQueued, p.Name)
	}

	if q.tail == nil {
		q.head = p
		q.tail = p
	} else {
		p.prev = q.tail
		q.tail.next = p
		q.tail = p
	}
	q.len++
	return nil
}

// pop removes and returns the Process at the head of the queue, or nil
// if the queue is empty.
func (q *queue) pop() *Process {
	p := q.head
	if p == nil {
		return nil
	}

	q.head = p.next
	if q.head != nil {
		q.head.prev = nil
	} else {
		q.tail = nil
	}
	p.next = nil
	p.prev = nil
	q.len--
	return p
}
