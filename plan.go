package taskpool

import "github.com/joeycumines/go-taskpool/internal/carrier"

// Target is one typed fan-out binding: an address plus the projection
// from a producer's result type R to that target's declared input type.
// Construct with Bind.
type Target[R any] struct {
	id      TaskId
	argIdx  int
	project func(R) any
}

// Bind produces a Target[R] that writes project(result) to addr, once the
// producing task's result is available. Panics if addr.Task is
// TaskIdNone: zero is reserved and is never a valid bind target.
func Bind[R, T any](addr CondAddr[T], project func(R) T) Target[R] {
	if addr.Task == TaskIdNone {
		panic(`taskpool: zero TaskId is not a valid bind target`)
	}
	if project == nil {
		panic(`taskpool: nil project function`)
	}
	return Target[R]{
		id:     addr.Task,
		argIdx: int(addr.Arg),
		project: func(r R) any {
			return project(r)
		},
	}
}

// identity is used by BindTo to express k=1 fan-out as the Bind/Targets
// machinery's degenerate case (spec property B1: observationally
// identical to a dedicated single-target method).
func identity[T any](v T) T { return v }

// planCore holds the fields common to every PlanN, regardless of arity.
type planCore struct {
	carrier *carrier.Carrier
	id      TaskId
	hasID   bool
	kind    Kind
}

func newPlanCore(fn any) planCore {
	c, err := carrier.New(fn)
	if err != nil {
		// unreachable via the NewTaskN family, whose signatures are
		// statically guaranteed to produce a valid callable
		panic(err)
	}
	return planCore{carrier: c}
}

func (p *planCore) withID(id TaskId) {
	p.id = id
	p.hasID = true
}

func (p *planCore) intoExitTask() {
	p.kind = KindExit
}

// Plan0 is a task plan for a zero-argument callable returning R.
type Plan0[R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask0 builds a Plan0 wrapping fn.
func NewTask0[R any](fn func() R) *Plan0[R] {
	return &Plan0[R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan (meaningful only as a
// disambiguator; zero-arity tasks are never themselves bind targets in a
// useful sense, and an id on one is ignored with a warning at submission).
func (p *Plan0[R]) WithID(id TaskId) *Plan0[R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan0[R]) IntoExitTask() *Plan0[R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan0[R]) BindTo(addr CondAddr[R]) *Plan0[R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan0[R]) Targets(targets ...Target[R]) *Plan0[R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// validateTargets enforces the fan-out width limit (spec §7: maximum
// fan-out width per map is 8). A task is not required to have any
// targets at all: a task with no downstream binding simply runs for its
// side effects, and its result (if any) is discarded.
func validateTargets[R any](targets []Target[R]) {
	if !inBounds(uint(len(targets)), uint(MaxArity+1)) {
		panic(`taskpool: fan-out width exceeds maximum arity 8`)
	}
}
