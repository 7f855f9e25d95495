// Package carrier implements the type-erased, call-once callable holder
// that backs every task in a taskpool.Pool: a function value plus a
// per-argument slot table that accepts dynamically typed writes, checked
// against the function's actual declared parameter types.
package carrier

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidCallable is returned by New when fn is not a func value, or
// declares more than MaxArity parameters, or more than one result.
var ErrInvalidCallable = errors.New(`carrier: invalid callable`)

// MaxArity is the maximum number of parameters a callable may declare.
const MaxArity = 8

// Carrier wraps a single func value, together with a slot table matching
// its declared parameters. A Carrier must be built with New; the zero
// value is not usable.
type Carrier struct {
	fn       reflect.Value
	argTypes []reflect.Type
	hasOut   bool
	slots    []reflect.Value
	consumed bool
}

// New wraps fn, which must be a non-variadic func with 0..MaxArity
// parameters and 0 or 1 results. It returns ErrInvalidCallable otherwise.
func New(fn any) (*Carrier, error) {
	if fn == nil {
		return nil, fmt.Errorf(`%w: nil`, ErrInvalidCallable)
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf(`%w: not a func: %T`, ErrInvalidCallable, fn)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf(`%w: variadic funcs are not supported`, ErrInvalidCallable)
	}
	if n := t.NumIn(); n > MaxArity {
		return nil, fmt.Errorf(`%w: arity %d exceeds maximum %d`, ErrInvalidCallable, n, MaxArity)
	}
	if t.NumOut() > 1 {
		return nil, fmt.Errorf(`%w: at most one result is supported, got %d`, ErrInvalidCallable, t.NumOut())
	}

	argTypes := make([]reflect.Type, t.NumIn())
	for i := range argTypes {
		argTypes[i] = t.In(i)
	}

	return &Carrier{
		fn:       v,
		argTypes: argTypes,
		hasOut:   t.NumOut() == 1,
		slots:    make([]reflect.Value, len(argTypes)),
	}, nil
}

// Arity returns the declared parameter count, 0..MaxArity.
func (c *Carrier) Arity() int {
	return len(c.argTypes)
}

// HasResult reports whether the wrapped callable declares a return value.
func (c *Carrier) HasResult() bool {
	return c.hasOut
}

// ArgType returns the declared type of parameter i. Panics if i is out of
// range.
func (c *Carrier) ArgType(i int) reflect.Type {
	return c.argTypes[i]
}

// Set writes raw into slot i, iff raw's runtime type is assignable to the
// declared type of parameter i. Returns whether the write succeeded; a
// failed write leaves the slot unchanged. Panics if i is out of range or
// the slot was already set.
func (c *Carrier) Set(i int, raw any) bool {
	if i < 0 || i >= len(c.argTypes) {
		panic(fmt.Sprintf(`carrier: set: index %d out of range [0,%d)`, i, len(c.argTypes)))
	}
	if c.slots[i].IsValid() {
		panic(fmt.Sprintf(`carrier: set: slot %d already populated`, i))
	}

	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || !rv.Type().AssignableTo(c.argTypes[i]) {
		return false
	}
	c.slots[i] = rv
	return true
}

// IsFull reports whether every slot has been populated.
func (c *Carrier) IsFull() bool {
	for _, s := range c.slots {
		if !s.IsValid() {
			return false
		}
	}
	return true
}

// CallOnce invokes the wrapped callable with the populated slots, and
// returns its result, or nil if it has none. Panics if any slot is
// unpopulated, or if CallOnce has already been called.
func (c *Carrier) CallOnce() any {
	if c.consumed {
		panic(`carrier: call_once: carrier already consumed`)
	}
	c.consumed = true

	args := make([]reflect.Value, len(c.slots))
	for i, s := range c.slots {
		if !s.IsValid() {
			panic(fmt.Sprintf(`carrier: call_once: slot %d is unpopulated`, i))
		}
		args[i] = s
	}

	out := c.fn.Call(args)
	if !c.hasOut {
		return nil
	}
	return out[0].Interface()
}
