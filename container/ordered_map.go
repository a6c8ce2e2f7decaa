package container

import (
	"cmp"

	"github.com/tidwall/btree"
)

// OrderedMap is a key-ordered map; scans visit entries in ascending key
// order, which keeps every linear walk over it deterministic.
type OrderedMap[T cmp.Ordered, U any] struct {
	base btree.Map[T, U]
}

func NewOrderedMap[T cmp.Ordered, U any]() *OrderedMap[T, U] {
	return &OrderedMap[T, U]{}
}

func (m *OrderedMap[T, U]) ScanKVIf(fn func(key T, value U) bool) {
	m.base.Scan(func(key T, value U) bool {
		return fn(key, value)
	})
}

func (m *OrderedMap[T, U]) ScanKV(fn func(key T, value U)) {
	m.base.Scan(func(key T, value U) bool {
		fn(key, value)
		return true
	})
}

func (m *OrderedMap[T, U]) Len() int {
	return m.base.Len()
}

func (m *OrderedMap[T, U]) IsEmpty() bool {
	return m.Len() == 0
}

func (m *OrderedMap[T, U]) Contains(key T) bool {
	_, ok := m.base.Get(key)
	return ok
}

func (m *OrderedMap[T, U]) Get(key T) (U, bool) {
	return m.base.Get(key)
}

func (m *OrderedMap[T, U]) Add(key T, value U) {
	m.base.Set(key, value)
}

func (m *OrderedMap[T, U]) Remove(key T) bool {
	_, ok := m.base.Delete(key)
	return ok
}

func (m *OrderedMap[T, U]) Keys() List[T] {
	result := make(List[T], 0, m.Len())
	m.ScanKV(func(key T, _ U) {
		result = append(result, key)
	})
	return result
}
