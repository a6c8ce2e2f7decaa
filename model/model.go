// Package model declares the closed set of variants a group of injectable
// structs accepts. A Model plays the role of the union type: every tag is
// declared once with its payload type, and variants are only minted through
// the model, so an undeclared tag or a mismatched payload is caught at the
// point of construction rather than silently dropped downstream.
package model

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/DerSchmale/injectiny/container"
	"github.com/DerSchmale/injectiny/injection"
)

type Model struct {
	lock sync.Mutex

	tags *container.OrderedMap[injection.Tag, reflect.Type]
}

func New() *Model {
	return &Model{
		tags: container.NewOrderedMap[injection.Tag, reflect.Type](),
	}
}

// Declare registers tag as a member of the model carrying a payload of type
// T. Redeclaring a tag with the same payload type is idempotent; redeclaring
// it with a different one panics, the closed union would no longer be closed.
func Declare[T any](m *Model, tag injection.Tag) {
	ty := reflect.TypeOf((*T)(nil)).Elem()

	m.lock.Lock()
	defer m.lock.Unlock()

	if existing, ok := m.tags.Get(tag); ok {
		if existing != ty {
			panic(fmt.Errorf("model: tag %q already declared with payload %v, redeclared with %v", tag, existing, ty))
		}
		return
	}
	m.tags.Add(tag, ty)
}

func (ss *Model) Contains(tag injection.Tag) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.tags.Contains(tag)
}

func (ss *Model) PayloadType(tag injection.Tag) (reflect.Type, bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.tags.Get(tag)
}

// Tags returns the declared tags in ascending tag order.
func (ss *Model) Tags() container.List[injection.Tag] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.tags.Keys()
}

// Of mints a variant of the model, validating that the tag is declared and
// the payload is assignable to its declared type.
func (ss *Model) Of(tag injection.Tag, value any) (injection.Variant, error) {
	ty, ok := ss.PayloadType(tag)
	if !ok {
		return injection.Variant{}, fmt.Errorf("model: unknown tag %q", tag)
	}

	vt := reflect.TypeOf(value)
	if vt == nil || !vt.AssignableTo(ty) {
		return injection.Variant{}, fmt.Errorf("model: payload for tag %q must be %v, got %T", tag, ty, value)
	}

	return injection.NewVariant(tag, value), nil
}

func (ss *Model) MustOf(tag injection.Tag, value any) injection.Variant {
	v, err := ss.Of(tag, value)
	if err != nil {
		panic(err)
	}
	return v
}
