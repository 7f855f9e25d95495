package taskpool

import (
	"errors"
	"fmt"
)

// ErrInvalidCallable describes a callable that is not usable as a task
// body: not a func value, too many parameters, or more than one result.
// No function of this package returns it: the NewTaskN family is
// statically typed, and the internal carrier reports these cases with its
// own error value.
var ErrInvalidCallable = errors.New(`taskpool: invalid callable`)

// TaskIdAlreadyExistsError is returned by the SubmitN family when the
// supplied or allocated TaskId is already live in the Pool's WaitMap.
type TaskIdAlreadyExistsError struct {
	// ID is the colliding TaskId.
	ID TaskId
}

// Error implements error.
func (e *TaskIdAlreadyExistsError) Error() string {
	return fmt.Sprintf(`taskpool: task id already exists: %s`, e.ID)
}

// newTaskIdAlreadyExists returns a *TaskIdAlreadyExistsError for id. It
// exists so callers can use errors.As to extract the colliding id.
func newTaskIdAlreadyExists(id TaskId) error {
	return &TaskIdAlreadyExistsError{ID: id}
}
