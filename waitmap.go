package taskpool

import "sync"

// waitResult is the outcome of a single slot write against the WaitMap.
type waitResult uint8

const (
	// waitResultError indicates the write was rejected: unknown id, out
	// of range arg index, or a runtime type mismatch against the
	// declared slot type.
	waitResultError waitResult = iota
	// waitResultPartial indicates the write succeeded, but the target
	// task still has at least one unpopulated slot.
	waitResultPartial
	// waitResultFull indicates the write succeeded and was the last
	// slot the target task needed: the target has been atomically
	// removed from the WaitMap.
	waitResultFull
)

// WaitMap is the shared table of not-yet-ready task envelopes, keyed by
// TaskId. A key is present iff the envelope has at least one unpopulated
// input slot.
type WaitMap struct {
	mu sync.Mutex
	m  map[TaskId]entry
}

// newWaitMap returns an empty WaitMap.
func newWaitMap() *WaitMap {
	return &WaitMap{m: make(map[TaskId]entry)}
}

// tryInsert adds e under id, iff id is not already present. Returns
// whether the insertion happened.
func (w *WaitMap) tryInsert(id TaskId, e entry) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.m[id]; ok {
		return false
	}
	w.m[id] = e
	return true
}

// check reports whether id is currently present.
func (w *WaitMap) check(id TaskId) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.m[id]
	return ok
}

// complete performs a typed slot write against the task whose id is
// addr, and, iff that write completes the task, atomically removes it
// from the map and returns it alongside waitResultFull. The update and
// the conditional removal happen under one critical section, so no other
// updater can observe "full" for the same target twice.
//
// set is called with the waiting entry, after argIdx has been checked
// against the entry's arity, and performs the actual typed write (see
// Carrier.Set); it must return whether the write succeeded.
func (w *WaitMap) complete(addr TaskId, argIdx int, set func(e entry) bool) (waitResult, entry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.m[addr]
	if !ok {
		return waitResultError, entry{}
	}
	if argIdx < 0 || argIdx >= e.env.carrier.Arity() {
		return waitResultError, entry{}
	}
	if !set(e) {
		return waitResultError, entry{}
	}
	if !e.env.carrier.IsFull() {
		return waitResultPartial, entry{}
	}
	delete(w.m, addr)
	return waitResultFull, e
}

// len reports the current number of waiting tasks. For observability only.
func (w *WaitMap) len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.m)
}
