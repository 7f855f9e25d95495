package taskpool

import (
	"sync"
	"sync/atomic"
)

// QueueID is an opaque handle to a RunQueue owned by a Pool.
type QueueID uint64

// RunQueue is a bounded-wait FIFO of ready (envelope, post-step) pairs,
// guarded by one mutex and one condition variable. There is no priority
// and no fairness beyond FIFO: the order observed by the one worker
// consuming a given RunQueue is the order entries were pushed to it.
type RunQueue struct {
	mu   sync.Mutex
	cond sync.Cond
	q    []entry
}

// newRunQueue returns an empty, ready-to-use RunQueue.
func newRunQueue() *RunQueue {
	rq := &RunQueue{}
	rq.cond.L = &rq.mu
	return rq
}

// push enqueues e at the tail, and signals one goroutine blocked in
// popBlocking (the signal is sent on every push, not only when the queue
// was empty).
func (rq *RunQueue) push(e entry) {
	rq.mu.Lock()
	rq.q = append(rq.q, e)
	rq.mu.Unlock()
	rq.cond.Signal()
}

// popBlocking pops the head entry, blocking until one is available or
// exit is set. Returns ok=false if it woke because exit was set and the
// queue is (still) empty.
func (rq *RunQueue) popBlocking(exit *atomic.Bool) (e entry, ok bool) {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	for len(rq.q) == 0 {
		if exit.Load() {
			return entry{}, false
		}
		rq.cond.Wait()
	}
	e, rq.q = rq.q[0], rq.q[1:]
	return e, true
}

// wake unblocks every goroutine currently parked in popBlocking on this
// queue, so they can re-check their exit flag. Used by Pool.ExitNextAll.
func (rq *RunQueue) wake() {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	rq.cond.Broadcast()
}

// len reports the current queue depth. For observability only.
func (rq *RunQueue) len() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return len(rq.q)
}
