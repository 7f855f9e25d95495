// Package taskpool implements a multi-queue, multi-worker task
// orchestration engine: a typed dataflow scheduler.
//
// Tasks are ordinary Go functions with zero or more typed parameters
// ("conditions") and an optional return value. Edges between tasks are
// declared at submission time, binding a producer's result (or one of its
// fanned-out sub-results) to a consumer's typed input slot, addressed by a
// CondAddr. A task becomes eligible to run only once every one of its
// inputs has been written. Ready tasks are dispatched onto worker
// goroutines, each bound to a single FIFO RunQueue.
//
// There is no work stealing, no priority scheduling, no preemption, no
// persistence, no distributed operation, and no cancellation of a task
// already running: a task, once dispatched, always runs to completion.
package taskpool
