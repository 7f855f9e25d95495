package taskpool

import (
	"fmt"
	"sync/atomic"
)

// TaskId identifies a submitted task, process-wide. The zero value,
// TaskIdNone, is reserved: it is never issued by a Pool, and is not a
// valid target of a cross-task binding.
type TaskId uint64

// TaskIdNone is the reserved "absent" TaskId.
const TaskIdNone TaskId = 0

// String implements fmt.Stringer.
func (id TaskId) String() string {
	if id == TaskIdNone {
		return `taskpool.TaskIdNone`
	}
	return fmt.Sprintf(`taskpool.TaskId(%d)`, uint64(id))
}

// idCounter is a monotonic TaskId allocator that skips the reserved zero
// value on wraparound.
type idCounter struct {
	next atomic.Uint64
}

// newIDCounter returns a counter whose first allocation is 1.
func newIDCounter() *idCounter {
	c := &idCounter{}
	c.next.Store(1)
	return c
}

// allocate returns the next nonzero TaskId.
func (c *idCounter) allocate() TaskId {
	for {
		v := c.next.Add(1) - 1
		if v != uint64(TaskIdNone) {
			return TaskId(v)
		}
		// wrapped onto zero: skip it (practically unreachable at 64 bits)
	}
}
