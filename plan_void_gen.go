package taskpool

// NewVoidTask0 builds a Plan0 wrapping a side-effect-only, 0-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask0(fn func()) *Plan0[struct{}] {
	return NewTask0(func() struct{} { fn(); return struct{}{} })
}

// NewVoidTask1 builds a Plan1 wrapping a side-effect-only, 1-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask1[A1 any](fn func(A1)) *Plan1[A1, struct{}] {
	return NewTask1(func(a1 A1) struct{} { fn(a1); return struct{}{} })
}

// NewVoidTask2 builds a Plan2 wrapping a side-effect-only, 2-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask2[A1, A2 any](fn func(A1, A2)) *Plan2[A1, A2, struct{}] {
	return NewTask2(func(a1 A1, a2 A2) struct{} { fn(a1, a2); return struct{}{} })
}

// NewVoidTask3 builds a Plan3 wrapping a side-effect-only, 3-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask3[A1, A2, A3 any](fn func(A1, A2, A3)) *Plan3[A1, A2, A3, struct{}] {
	return NewTask3(func(a1 A1, a2 A2, a3 A3) struct{} { fn(a1, a2, a3); return struct{}{} })
}

// NewVoidTask4 builds a Plan4 wrapping a side-effect-only, 4-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask4[A1, A2, A3, A4 any](fn func(A1, A2, A3, A4)) *Plan4[A1, A2, A3, A4, struct{}] {
	return NewTask4(func(a1 A1, a2 A2, a3 A3, a4 A4) struct{} { fn(a1, a2, a3, a4); return struct{}{} })
}

// NewVoidTask5 builds a Plan5 wrapping a side-effect-only, 5-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask5[A1, A2, A3, A4, A5 any](fn func(A1, A2, A3, A4, A5)) *Plan5[A1, A2, A3, A4, A5, struct{}] {
	return NewTask5(func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) struct{} { fn(a1, a2, a3, a4, a5); return struct{}{} })
}

// NewVoidTask6 builds a Plan6 wrapping a side-effect-only, 6-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask6[A1, A2, A3, A4, A5, A6 any](fn func(A1, A2, A3, A4, A5, A6)) *Plan6[A1, A2, A3, A4, A5, A6, struct{}] {
	return NewTask6(func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) struct{} { fn(a1, a2, a3, a4, a5, a6); return struct{}{} })
}

// NewVoidTask7 builds a Plan7 wrapping a side-effect-only, 7-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask7[A1, A2, A3, A4, A5, A6, A7 any](fn func(A1, A2, A3, A4, A5, A6, A7)) *Plan7[A1, A2, A3, A4, A5, A6, A7, struct{}] {
	return NewTask7(func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) struct{} { fn(a1, a2, a3, a4, a5, a6, a7); return struct{}{} })
}

// NewVoidTask8 builds a Plan8 wrapping a side-effect-only, 8-argument
// callable with no result, for tasks that exist only to run for effect
// (e.g. a final Exit task, or a fire-and-forget producer).
func NewVoidTask8[A1, A2, A3, A4, A5, A6, A7, A8 any](fn func(A1, A2, A3, A4, A5, A6, A7, A8)) *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, struct{}] {
	return NewTask8(func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) struct{} { fn(a1, a2, a3, a4, a5, a6, a7, a8); return struct{}{} })
}
