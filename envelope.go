package taskpool

import "github.com/joeycumines/go-taskpool/internal/carrier"

// Kind distinguishes a task that simply runs (Normal) from one that also
// instructs its worker to leave the dispatch loop once it has finished
// (Exit). Marking a task Exit does not cancel any other work; it only
// tells the worker that runs it to stop after this one.
type Kind uint8

const (
	// KindNormal is an ordinary task.
	KindNormal Kind = iota
	// KindExit is a task whose worker leaves the dispatch loop once this
	// task, and its post-step, have completed.
	KindExit
)

// postStep is invoked, exactly once, by the worker that ran an envelope's
// carrier, with the callable's boxed result. It decodes the result,
// applies the user-supplied per-target projections, and routes each
// sub-result to its declared CondAddr, pushing any now-fully-satisfied
// downstream task onto its bound RunQueue.
type postStep func(pool *Pool, result any)

// entry is the (envelope, post-step) pair shared by RunQueue and WaitMap,
// per spec §3.
type entry struct {
	env  *envelope
	post postStep
}

// envelope is the runtime bundle of a task's carrier, id, and kind. An
// envelope is owned by exactly one of: the WaitMap, a RunQueue, or a
// running worker.
type envelope struct {
	carrier *carrier.Carrier
	id      TaskId
	kind    Kind
	// queue is the RunQueue this task's envelope is pushed to once ready.
	// It is the queue bound to the Submitter that submitted the task,
	// which may differ from the queue of whichever task produces one of
	// its inputs (spec §4.6).
	queue QueueID
}

// run consumes the envelope's carrier, invoking the wrapped callable.
func (e *envelope) run() any {
	return e.carrier.CallOnce()
}
