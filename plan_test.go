package taskpool

import "testing"

func TestBind_panicsOnZeroTaskId(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal(`expected panic`)
		}
	}()
	var addr CondAddr[int]
	Bind[string](addr, func(string) int { return 0 })
}

func TestBind_panicsOnNilProject(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal(`expected panic`)
		}
	}()
	addr := NewCondAddr[int](TaskId(1), 0)
	Bind[string, int](addr, nil)
}

func TestPlan_targetsPanicsAboveMaxArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal(`expected panic`)
		}
	}()
	addr := NewCondAddr[int](TaskId(1), 0)
	targets := make([]Target[int], MaxArity+1)
	for i := range targets {
		targets[i] = Bind[int](addr, func(v int) int { return v })
	}
	NewTask0(func() int { return 0 }).Targets(targets...)
}

func TestPlan_targetsAllowsEmpty(t *testing.T) {
	// a task with no bind targets is a valid fire-and-forget task.
	p := NewTask0(func() int { return 0 }).Targets()
	if len(p.targets) != 0 {
		t.Fatalf(`got %d targets, want 0`, len(p.targets))
	}
}

func TestPlan_bindToEquivalentToSingleTarget(t *testing.T) {
	// spec property B1: BindTo (k=1 fan-out) must be observationally
	// identical to Targets(Bind(...)) with an identity projection.
	addr := NewCondAddr[int](TaskId(1), 0)

	viaBindTo := NewTask0(func() int { return 42 }).BindTo(addr)
	if len(viaBindTo.targets) != 1 {
		t.Fatalf(`got %d targets, want 1`, len(viaBindTo.targets))
	}
	if viaBindTo.targets[0].id != addr.Task || viaBindTo.targets[0].argIdx != int(addr.Arg) {
		t.Fatalf(`got id=%d argIdx=%d`, viaBindTo.targets[0].id, viaBindTo.targets[0].argIdx)
	}
	if got := viaBindTo.targets[0].project(42); got != 42 {
		t.Fatalf(`got %v, want 42`, got)
	}

	viaTargets := NewTask0(func() int { return 42 }).Targets(Bind[int](addr, identity[int]))
	if viaTargets.targets[0].id != viaBindTo.targets[0].id || viaTargets.targets[0].argIdx != viaBindTo.targets[0].argIdx {
		t.Fatal(`BindTo and Targets(Bind(identity)) should address the same slot`)
	}
}

func TestPlan_withIDAndIntoExitTask(t *testing.T) {
	p := NewTask0(func() int { return 0 }).WithID(TaskId(5)).IntoExitTask()
	if !p.core.hasID || p.core.id != TaskId(5) {
		t.Fatalf(`got hasID=%v id=%d`, p.core.hasID, p.core.id)
	}
	if p.core.kind != KindExit {
		t.Fatalf(`got kind=%v, want KindExit`, p.core.kind)
	}
}

func TestNewTask1_arityAndResultWiring(t *testing.T) {
	p := NewTask1(func(a int) int { return a * 2 })
	if p.core.carrier.Arity() != 1 {
		t.Fatalf(`got arity %d, want 1`, p.core.carrier.Arity())
	}
	if !p.core.carrier.HasResult() {
		t.Fatal(`expected a result`)
	}
}

func TestNewVoidTask0_runsWrappedFunc(t *testing.T) {
	called := false
	p := NewVoidTask0(func() { called = true })
	p.core.carrier.CallOnce()
	if !called {
		t.Fatal(`expected the wrapped void func to run`)
	}
}

func TestNewVoidTask1_wiresSingleArg(t *testing.T) {
	var got int
	p := NewVoidTask1(func(a int) { got = a })
	if p.core.carrier.Arity() != 1 {
		t.Fatalf(`got arity %d, want 1`, p.core.carrier.Arity())
	}
	if !p.core.carrier.Set(0, 7) {
		t.Fatal(`expected typed set to succeed`)
	}
	p.core.carrier.CallOnce()
	if got != 7 {
		t.Fatalf(`got %d, want 7`, got)
	}
}
