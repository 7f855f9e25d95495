package taskpool

import "fmt"

// Submitter constructs task envelopes and places them into either its
// bound RunQueue (arity 0) or the Pool's shared WaitMap (arity > 0). Get
// one from Pool.TaskSubmitter.
type Submitter struct {
	pool  *Pool
	queue QueueID
}

// buildPostStep captures targets, returning the closure the worker runs
// immediately after the task's carrier is consumed: it downcasts the
// boxed result to R (a mismatch here is a fatal invariant violation, and
// panics, per spec §9 open question 2), then routes each target's
// projection of that result to its declared CondAddr.
func buildPostStep[R any](targets []Target[R]) postStep {
	return func(pool *Pool, result any) {
		var r R
		if result != nil {
			var ok bool
			r, ok = result.(R)
			if !ok {
				panic(fmt.Sprintf(`taskpool: result type assertion failed: got %T, want %T`, result, r))
			}
		}
		for _, t := range targets {
			pool.routeSubResult(t.id, t.argIdx, t.project(r))
		}
	}
}

// submitCore implements spec §4.5 steps 1-4, shared by every SubmitN.
func submitCore[R any](s *Submitter, core planCore, targets []Target[R]) (TaskId, error) {
	post := buildPostStep(targets)
	arity := core.carrier.Arity()

	if arity == 0 {
		// step 1: ids serve only as targets; an id on a zero-arity task
		// is meaningless and is ignored, with a warning.
		if core.hasID {
			s.pool.log.Warning().
				Uint64(`supplied_task_id`, uint64(core.id)).
				Log(`taskpool: task id supplied for a zero-arity task is ignored`)
		}
		env := &envelope{carrier: core.carrier, id: TaskIdNone, kind: core.kind, queue: s.queue}
		s.pool.pushReady(s.queue, entry{env: env, post: post})
		return TaskIdNone, nil
	}

	// step 1: allocate an id if none was supplied.
	id := core.id
	if !core.hasID {
		id = s.pool.nextTaskID()
	}

	env := &envelope{carrier: core.carrier, id: id, kind: core.kind, queue: s.queue}

	// step 2+4: reject on collision, otherwise insert into the WaitMap.
	if !s.pool.wait.tryInsert(id, entry{env: env, post: post}) {
		return TaskIdNone, newTaskIdAlreadyExists(id)
	}
	s.pool.log.Trace().Uint64(`task_id`, uint64(id)).Log(`taskpool: task entered wait map`)

	return id, nil
}
