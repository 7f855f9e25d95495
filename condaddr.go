package taskpool

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Section distinguishes the input and output sides of a task's condition
// table. Only SectionInput is constructible by callers; SectionOutput is
// reserved for internal bookkeeping.
type Section uint8

const (
	// SectionInput addresses one of a task's parameter slots.
	SectionInput Section = iota
	// sectionOutput is reserved for internal post-step bookkeeping and is
	// never part of a caller-visible CondAddr.
	sectionOutput
)

// String implements fmt.Stringer.
func (s Section) String() string {
	switch s {
	case SectionInput:
		return `Input`
	case sectionOutput:
		return `Output`
	default:
		return fmt.Sprintf(`Section(%d)`, uint8(s))
	}
}

// MaxArity is the maximum number of input slots (or fan-out targets) a
// task may declare.
const MaxArity = 8

// ArgIdx is a zero-based input-slot index, parameterised by the value
// type expected at that position.
type ArgIdx[T any] uint8

// Arg constructs an ArgIdx for parameter position i. It panics if i
// exceeds MaxArity-1.
func Arg[T any](i uint8) ArgIdx[T] {
	if !inBounds[uint8](i, MaxArity) {
		panic(fmt.Sprintf(`taskpool: arg index %d exceeds maximum arity %d`, i, MaxArity))
	}
	return ArgIdx[T](i)
}

// inBounds reports whether n is a valid zero-based index below limit, for
// any unsigned integer width. Shared by Arg and the fan-out width check in
// plan.go, matching the corpus's preference (go-catrate/ring.go) for a
// constraints-parameterised helper over one copy per concrete int type.
func inBounds[N constraints.Unsigned](n, limit N) bool {
	return n < limit
}

// CondAddr is the logical, type-tagged address of one input slot of one
// task: (TaskId, Section, ArgIdx[T]). Values are comparable.
type CondAddr[T any] struct {
	Task    TaskId
	Section Section
	Arg     ArgIdx[T]
}

// NewCondAddr constructs a CondAddr targeting input slot i of task id.
// Panics if i exceeds MaxArity-1.
func NewCondAddr[T any](id TaskId, i uint8) CondAddr[T] {
	return CondAddr[T]{Task: id, Section: SectionInput, Arg: Arg[T](i)}
}

// String implements fmt.Stringer.
func (a CondAddr[T]) String() string {
	return fmt.Sprintf(`CondAddr{Task: %s, Section: %s, Arg: %d}`, a.Task, a.Section, a.Arg)
}
