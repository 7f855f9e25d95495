package taskpool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitForCondition polls cond until it is true or the bounded time elapses,
// failing the test otherwise. Used in place of a fixed sleep wherever a
// test needs to observe an asynchronous effect.
func waitForCondition(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	require.True(t, cond(), `condition not satisfied within bounded time`)
}

// Scenario 1: a zero-argument producer's result feeds a single-argument
// Exit task on the same queue; the worker exits once the Exit task has
// run.
func TestPool_scenario1_freeAndExit(t *testing.T) {
	p := NewPool()
	q := p.InsertQueue()
	s := p.TaskSubmitter(q)

	var ran int
	var mu sync.Mutex

	exitInfo, err := Submit1(s, NewVoidTask1(func(msg string) {
		mu.Lock()
		ran++
		mu.Unlock()
		_ = msg
	}).IntoExitTask())
	require.NoError(t, err)

	_, err = Submit0(s, NewTask0(func() string {
		return `hello`
	}).BindTo(exitInfo.Input0()))
	require.NoError(t, err)

	p.SpawnWorker(q)
	p.Join()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, ran)
}

// Scenario 2: a producer fans its result out to two tasks, whose results
// join on a single 2-argument Exit task.
func TestPool_scenario2_fanOutJoin(t *testing.T) {
	p := NewPool()
	q := p.InsertQueue()
	s := p.TaskSubmitter(q)

	var got [2]int
	var mu sync.Mutex

	exitInfo, err := Submit2(s, NewVoidTask2(func(a, b int) {
		mu.Lock()
		got[0], got[1] = a, b
		mu.Unlock()
	}).IntoExitTask())
	require.NoError(t, err)

	b1Info, err := Submit1(s, NewTask1(func(v int) int { return v + 1 }).
		BindTo(exitInfo.Input0()))
	require.NoError(t, err)
	b2Info, err := Submit1(s, NewTask1(func(v int) int { return v * 2 }).
		BindTo(exitInfo.Input1()))
	require.NoError(t, err)

	_, err = Submit0(s, NewTask0(func() int { return 10 }).
		Targets(
			Bind[int](b1Info.Input0(), identity[int]),
			Bind[int](b2Info.Input0(), identity[int]),
		))
	require.NoError(t, err)

	p.SpawnWorker(q)
	p.Join()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, [2]int{11, 20}, got)
}

// Scenario 3: a two-argument Add task lives on one queue, fed by two
// zero-argument producer tasks submitted to a second queue/worker, on a
// separate submitting goroutine.
func TestPool_scenario3_crossQueueProducerConsumer(t *testing.T) {
	p := NewPool()
	qAdd := p.InsertQueue()
	qFeed := p.InsertQueue()
	sAdd := p.TaskSubmitter(qAdd)
	sFeed := p.TaskSubmitter(qFeed)

	var sum int
	var mu sync.Mutex
	done := make(chan struct{})

	addInfo, err := Submit2(sAdd, NewVoidTask2(func(a, b int) {
		mu.Lock()
		sum = a + b
		mu.Unlock()
		close(done)
	}).IntoExitTask())
	require.NoError(t, err)

	go func() {
		_, err := Submit0(sFeed, NewTask0(func() int { return 3 }).
			BindTo(addInfo.Input0()))
		if err != nil {
			t.Error(err)
		}
		_, err = Submit0(sFeed, NewTask0(func() int { return 4 }).
			BindTo(addInfo.Input1()))
		if err != nil {
			t.Error(err)
		}
	}()

	p.SpawnWorker(qAdd)
	p.SpawnWorker(qFeed)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal(`Add task did not complete within bounded time`)
	}

	p.ExitNextAll()
	p.Join()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 7, sum)
}

// Scenario 4: a producer's int16 result is routed at an int32 slot; the
// write is rejected and the downstream task never runs.
func TestPool_scenario4_typeMismatchRejected(t *testing.T) {
	p := NewPool()
	q := p.InsertQueue()
	s := p.TaskSubmitter(q)

	ran := false
	target, err := Submit1(s, NewVoidTask1(func(int32) { ran = true }))
	require.NoError(t, err)

	// bypass the statically typed Bind API (which would catch this at
	// compile time) to exercise the runtime rejection path directly, the
	// same way a caller using a CondAddr obtained out of band would.
	p.routeSubResult(target.ID, 0, int16(7))

	require.Equal(t, 1, p.wait.len(), `rejected write must not remove the entry`)

	p.SpawnWorker(q)
	p.ExitNextAll()
	p.Join()

	require.False(t, ran, `downstream task must not have run after a rejected type-mismatched write`)
}

// Scenario 5: two arity>=1 tasks both explicitly request TaskId 10; the
// second submission is rejected.
func TestPool_scenario5_duplicateIDRejected(t *testing.T) {
	p := NewPool()
	q := p.InsertQueue()
	s := p.TaskSubmitter(q)

	_, err := Submit1(s, NewTask1(func(a int) int { return a }).WithID(TaskId(10)))
	require.NoError(t, err)
	_, err = Submit1(s, NewTask1(func(a int) int { return a }).WithID(TaskId(10)))
	require.Error(t, err)
}

// Scenario 6: N workers share one queue; after one normal task is
// submitted, ExitNextAll is called, then Join. The task runs exactly once
// and no worker panics.
func TestPool_scenario6_cooperativeShutdown(t *testing.T) {
	p := NewPool()
	q := p.InsertQueue()
	s := p.TaskSubmitter(q)

	var runs int
	var mu sync.Mutex

	_, err := Submit0(s, NewTask0(func() int {
		mu.Lock()
		runs++
		mu.Unlock()
		return 0
	}))
	require.NoError(t, err)

	const numWorkers = 4
	for i := 0; i < numWorkers; i++ {
		p.SpawnWorker(q)
	}

	waitForCondition(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return runs == 1
	})

	p.ExitNextAll()
	p.Join()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, runs)
}

func TestPool_joinRepropagatesWorkerPanic(t *testing.T) {
	p := NewPool()
	q := p.InsertQueue()
	s := p.TaskSubmitter(q)

	_, err := Submit0(s, NewTask0(func() int {
		panic(`boom`)
	}).IntoExitTask())
	require.NoError(t, err)

	p.SpawnWorker(q)

	defer func() {
		r := recover()
		require.Equal(t, `boom`, r)
	}()
	p.Join()
	t.Fatal(`expected Join to re-panic`)
}

func TestPool_unknownQueuePanics(t *testing.T) {
	p := NewPool()
	require.Panics(t, func() {
		p.TaskSubmitter(QueueID(999))
	})
}
