package injection

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotInjected is the failure raised when a slot is read before any value
// was injected into it.
var ErrNotInjected = errors.New("injection: slot not injected")

var _ = islot((*Injected[int])(nil))

// Injected is a per-field slot holding zero or one injected value. Struct
// fields of this type, marked with an `inject:"Tag"` struct tag, are the
// ones a bound struct accepts variants into.
type Injected[T any] struct {
	value  T
	filled bool
}

// From creates a pre-filled slot.
func From[T any](value T) Injected[T] {
	return Injected[T]{value: value, filled: true}
}

// Set assigns the slot, overwriting any previous value.
func (ss *Injected[T]) Set(value T) {
	ss.value = value
	ss.filled = true
}

func (ss *Injected[T]) Get() (T, bool) {
	return ss.value, ss.filled
}

// MustGet returns the injected value and panics with ErrNotInjected when the
// slot is still empty.
func (ss *Injected[T]) MustGet() T {
	if !ss.filled {
		panic(fmt.Errorf("%w: %v", ErrNotInjected, reflect.TypeOf((*T)(nil)).Elem()))
	}
	return ss.value
}

func (ss *Injected[T]) IsInjected() bool {
	return ss.filled
}

// islot is the binder-facing surface of a slot: fill it from an untyped
// payload and report the payload type it accepts.
type islot interface {
	setAny(value any) error
	payloadType() reflect.Type
}

func (ss *Injected[T]) setAny(value any) error {
	v, ok := value.(T)
	if !ok {
		return fmt.Errorf("injection: payload %T is not assignable to slot of %v", value, reflect.TypeOf((*T)(nil)).Elem())
	}
	ss.Set(v)
	return nil
}

func (ss *Injected[T]) payloadType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
