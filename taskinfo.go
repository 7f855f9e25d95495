package taskpool

// TaskInfo0 is returned by Submit0. A zero-arity task has no input slots
// to address, so its TaskInfo carries only its TaskId, which Submit0
// always sets to TaskIdNone.
type TaskInfo0 struct {
	ID TaskId
}
