package taskpool

// Plan1 is a task plan for a 1-argument callable returning R.
type Plan1[A1, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask1 builds a Plan1 wrapping fn.
func NewTask1[A1, R any](fn func(A1) R) *Plan1[A1, R] {
	return &Plan1[A1, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan1[A1, R]) WithID(id TaskId) *Plan1[A1, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan1[A1, R]) IntoExitTask() *Plan1[A1, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan1[A1, R]) BindTo(addr CondAddr[R]) *Plan1[A1, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan1[A1, R]) Targets(targets ...Target[R]) *Plan1[A1, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// Plan2 is a task plan for a 2-argument callable returning R.
type Plan2[A1, A2, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask2 builds a Plan2 wrapping fn.
func NewTask2[A1, A2, R any](fn func(A1, A2) R) *Plan2[A1, A2, R] {
	return &Plan2[A1, A2, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan2[A1, A2, R]) WithID(id TaskId) *Plan2[A1, A2, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan2[A1, A2, R]) IntoExitTask() *Plan2[A1, A2, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan2[A1, A2, R]) BindTo(addr CondAddr[R]) *Plan2[A1, A2, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan2[A1, A2, R]) Targets(targets ...Target[R]) *Plan2[A1, A2, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// Plan3 is a task plan for a 3-argument callable returning R.
type Plan3[A1, A2, A3, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask3 builds a Plan3 wrapping fn.
func NewTask3[A1, A2, A3, R any](fn func(A1, A2, A3) R) *Plan3[A1, A2, A3, R] {
	return &Plan3[A1, A2, A3, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan3[A1, A2, A3, R]) WithID(id TaskId) *Plan3[A1, A2, A3, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan3[A1, A2, A3, R]) IntoExitTask() *Plan3[A1, A2, A3, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan3[A1, A2, A3, R]) BindTo(addr CondAddr[R]) *Plan3[A1, A2, A3, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan3[A1, A2, A3, R]) Targets(targets ...Target[R]) *Plan3[A1, A2, A3, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// Plan4 is a task plan for a 4-argument callable returning R.
type Plan4[A1, A2, A3, A4, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask4 builds a Plan4 wrapping fn.
func NewTask4[A1, A2, A3, A4, R any](fn func(A1, A2, A3, A4) R) *Plan4[A1, A2, A3, A4, R] {
	return &Plan4[A1, A2, A3, A4, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan4[A1, A2, A3, A4, R]) WithID(id TaskId) *Plan4[A1, A2, A3, A4, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan4[A1, A2, A3, A4, R]) IntoExitTask() *Plan4[A1, A2, A3, A4, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan4[A1, A2, A3, A4, R]) BindTo(addr CondAddr[R]) *Plan4[A1, A2, A3, A4, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan4[A1, A2, A3, A4, R]) Targets(targets ...Target[R]) *Plan4[A1, A2, A3, A4, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// Plan5 is a task plan for a 5-argument callable returning R.
type Plan5[A1, A2, A3, A4, A5, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask5 builds a Plan5 wrapping fn.
func NewTask5[A1, A2, A3, A4, A5, R any](fn func(A1, A2, A3, A4, A5) R) *Plan5[A1, A2, A3, A4, A5, R] {
	return &Plan5[A1, A2, A3, A4, A5, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan5[A1, A2, A3, A4, A5, R]) WithID(id TaskId) *Plan5[A1, A2, A3, A4, A5, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan5[A1, A2, A3, A4, A5, R]) IntoExitTask() *Plan5[A1, A2, A3, A4, A5, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan5[A1, A2, A3, A4, A5, R]) BindTo(addr CondAddr[R]) *Plan5[A1, A2, A3, A4, A5, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan5[A1, A2, A3, A4, A5, R]) Targets(targets ...Target[R]) *Plan5[A1, A2, A3, A4, A5, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// Plan6 is a task plan for a 6-argument callable returning R.
type Plan6[A1, A2, A3, A4, A5, A6, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask6 builds a Plan6 wrapping fn.
func NewTask6[A1, A2, A3, A4, A5, A6, R any](fn func(A1, A2, A3, A4, A5, A6) R) *Plan6[A1, A2, A3, A4, A5, A6, R] {
	return &Plan6[A1, A2, A3, A4, A5, A6, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan6[A1, A2, A3, A4, A5, A6, R]) WithID(id TaskId) *Plan6[A1, A2, A3, A4, A5, A6, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan6[A1, A2, A3, A4, A5, A6, R]) IntoExitTask() *Plan6[A1, A2, A3, A4, A5, A6, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan6[A1, A2, A3, A4, A5, A6, R]) BindTo(addr CondAddr[R]) *Plan6[A1, A2, A3, A4, A5, A6, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan6[A1, A2, A3, A4, A5, A6, R]) Targets(targets ...Target[R]) *Plan6[A1, A2, A3, A4, A5, A6, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// Plan7 is a task plan for a 7-argument callable returning R.
type Plan7[A1, A2, A3, A4, A5, A6, A7, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask7 builds a Plan7 wrapping fn.
func NewTask7[A1, A2, A3, A4, A5, A6, A7, R any](fn func(A1, A2, A3, A4, A5, A6, A7) R) *Plan7[A1, A2, A3, A4, A5, A6, A7, R] {
	return &Plan7[A1, A2, A3, A4, A5, A6, A7, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan7[A1, A2, A3, A4, A5, A6, A7, R]) WithID(id TaskId) *Plan7[A1, A2, A3, A4, A5, A6, A7, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan7[A1, A2, A3, A4, A5, A6, A7, R]) IntoExitTask() *Plan7[A1, A2, A3, A4, A5, A6, A7, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan7[A1, A2, A3, A4, A5, A6, A7, R]) BindTo(addr CondAddr[R]) *Plan7[A1, A2, A3, A4, A5, A6, A7, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan7[A1, A2, A3, A4, A5, A6, A7, R]) Targets(targets ...Target[R]) *Plan7[A1, A2, A3, A4, A5, A6, A7, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

// Plan8 is a task plan for a 8-argument callable returning R.
type Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R any] struct {
	core    planCore
	targets []Target[R]
}

// NewTask8 builds a Plan8 wrapping fn.
func NewTask8[A1, A2, A3, A4, A5, A6, A7, A8, R any](fn func(A1, A2, A3, A4, A5, A6, A7, A8) R) *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R] {
	return &Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R]{core: newPlanCore(fn)}
}

// WithID assigns an explicit TaskId to the plan. If omitted, the Pool
// allocates the next nonzero id at submission time.
func (p *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R]) WithID(id TaskId) *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R] { p.core.withID(id); return p }

// IntoExitTask marks the plan's task as Kind Exit.
func (p *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R]) IntoExitTask() *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R] { p.core.intoExitTask(); return p }

// BindTo binds the task's single result directly to addr (fan-out k=1).
func (p *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R]) BindTo(addr CondAddr[R]) *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R] {
	return p.Targets(Bind[R](addr, identity[R]))
}

// Targets sets the plan's fan-out targets, at most MaxArity of them (none
// is also accepted).
func (p *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R]) Targets(targets ...Target[R]) *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R] {
	validateTargets(targets)
	p.targets = targets
	return p
}

