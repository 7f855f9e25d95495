package taskpool

import (
	"fmt"
	"sync"
)

// WorkerID is an opaque handle to a worker goroutine spawned by a Pool.
type WorkerID uint64

// Pool owns a set of RunQueues, their worker goroutines, the single
// WaitMap shared between them, and the task id counter. Lifecycle:
// NewPool, InsertQueue for each queue, SpawnWorker to bind workers to
// queues, submissions flow in via TaskSubmitter, then ExitNextAll and
// Join to shut down.
type Pool struct {
	mu        sync.Mutex
	queues    map[QueueID]*RunQueue
	workers   map[WorkerID]*Worker
	wait      *WaitMap
	ids       *idCounter
	nextQueue uint64
	nextWrkr  uint64
	log       Logger

	wg      sync.WaitGroup
	panicMu sync.Mutex
	panics  []any
}

// NewPool constructs an empty Pool, ready to have queues inserted and
// workers spawned.
func NewPool(opts ...PoolOption) *Pool {
	cfg := poolConfig{}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.log == nil {
		cfg.log = defaultLogger()
	}

	p := &Pool{
		queues:  make(map[QueueID]*RunQueue),
		workers: make(map[WorkerID]*Worker),
		wait:    newWaitMap(),
		ids:     newIDCounter(),
		log:     cfg.log,
	}
	p.log.Info().Log(`taskpool: pool created`)
	return p
}

// InsertQueue records a new, empty RunQueue, returning its opaque id.
func (p *Pool) InsertQueue() QueueID {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextQueue++
	id := QueueID(p.nextQueue)
	p.queues[id] = newRunQueue()
	return id
}

// TaskSubmitter returns a Submitter bound to queue q. Panics if q is
// unknown.
func (p *Pool) TaskSubmitter(q QueueID) *Submitter {
	if !p.hasQueue(q) {
		panic(fmt.Sprintf(`taskpool: unknown queue id %d`, q))
	}
	return &Submitter{pool: p, queue: q}
}

// SpawnWorker spawns a worker goroutine bound to queue q, returning its
// opaque id. Panics if q is unknown.
func (p *Pool) SpawnWorker(q QueueID) WorkerID {
	p.mu.Lock()
	rq, ok := p.queues[q]
	if !ok {
		p.mu.Unlock()
		panic(fmt.Sprintf(`taskpool: unknown queue id %d`, q))
	}
	p.nextWrkr++
	id := WorkerID(p.nextWrkr)
	w := &Worker{id: id, queue: rq, log: p.log}
	p.workers[id] = w
	p.mu.Unlock()

	p.wg.Add(1)
	p.log.Debug().Uint64(`worker_id`, uint64(id)).Log(`taskpool: worker spawned`)
	go w.run(p)
	return id
}

// ExitNextAll flips every worker's cooperative exit flag, and wakes any
// worker currently blocked on an empty RunQueue so it observes the flag
// promptly. Each worker finishes the task it is currently running (if
// any) before leaving; in-flight tasks always complete, queued tasks may
// or may not run, and no task is ever partially run.
func (p *Pool) ExitNextAll() {
	p.mu.Lock()
	workers := make([]*Worker, 0, len(p.workers))
	for _, w := range p.workers {
		workers = append(workers, w)
	}
	queues := make([]*RunQueue, 0, len(p.queues))
	for _, q := range p.queues {
		queues = append(queues, q)
	}
	p.mu.Unlock()

	for _, w := range workers {
		w.exit.Store(true)
	}
	for _, q := range queues {
		q.wake()
	}
	p.log.Debug().Log(`taskpool: exit requested for all workers`)
}

// Join blocks until every spawned worker has returned. Tasks still in the
// WaitMap at that point are dropped: their carriers and captured state
// are released with the Pool. If any worker's task panicked, Join
// re-panics with that value on the calling goroutine, once every worker
// has been waited on.
func (p *Pool) Join() {
	p.wg.Wait()

	p.panicMu.Lock()
	panics := p.panics
	p.panicMu.Unlock()

	if len(panics) > 0 {
		p.log.Err().Err(fmt.Errorf(`taskpool: %v`, panics[0])).Log(`taskpool: worker panic propagated via join`)
		panic(panics[0])
	}
	p.log.Info().Log(`taskpool: pool joined`)
}

// nextTaskID allocates the next nonzero TaskId.
func (p *Pool) nextTaskID() TaskId {
	return p.ids.allocate()
}

func (p *Pool) hasQueue(q QueueID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.queues[q]
	return ok
}

func (p *Pool) queueByID(q QueueID) *RunQueue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queues[q]
}

// pushReady pushes e directly onto queue q. Used for arity-0 tasks, which
// bypass the WaitMap entirely (spec §4.5 step 4).
func (p *Pool) pushReady(q QueueID, e entry) {
	p.queueByID(q).push(e)
}

// reportPanic records a worker panic for re-raising from Join.
func (p *Pool) reportPanic(r any) {
	p.panicMu.Lock()
	p.panics = append(p.panics, r)
	p.panicMu.Unlock()
}

// routeSubResult performs one target's typed slot write against the
// WaitMap, and, if that write completes the target task, pushes it onto
// its bound RunQueue. A rejected write (unknown target, bad arg index, or
// a type mismatch) is logged at error and otherwise ignored: the engine
// does not propagate one sub-result's failure to its siblings (spec §7).
func (p *Pool) routeSubResult(target TaskId, argIdx int, value any) {
	res, full := p.wait.complete(target, argIdx, func(e entry) bool {
		return e.env.carrier.Set(argIdx, value)
	})

	switch res {
	case waitResultError:
		p.log.Err().
			Err(fmt.Errorf(`taskpool: slot write rejected`)).
			Uint64(`target_task_id`, uint64(target)).
			Log(`taskpool: dropped sub-result: unknown target, bad arg index, or type mismatch`)

	case waitResultPartial:
		p.log.Trace().Uint64(`target_task_id`, uint64(target)).Log(`taskpool: slot written, target still waiting`)

	case waitResultFull:
		p.log.Debug().Uint64(`target_task_id`, uint64(target)).Log(`taskpool: target fully satisfied, pushed to run queue`)
		p.queueByID(full.env.queue).push(full)
	}
}
