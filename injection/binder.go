package injection

import (
	"fmt"
	"reflect"
	"sync"

	assert "github.com/arl/assertgo"

	"github.com/DerSchmale/injectiny/container"
)

// FieldTag is the struct tag marking an Injected field with the model tag it
// is bound to.
const FieldTag = "inject"

var islotType = reflect.TypeOf((*islot)(nil)).Elem()

type fieldBinding struct {
	index   int
	payload reflect.Type
}

type structDescriptor struct {
	// model tag -> bound field; at most one field per tag
	bindings *container.OrderedMap[Tag, fieldBinding]
}

// descriptorCollection caches one descriptor per concrete struct type so a
// type is only scanned once, however many instances get bound.
type descriptorCollection struct {
	lock sync.Mutex

	descriptors map[reflect.Type]*structDescriptor
}

var descriptors = &descriptorCollection{
	descriptors: make(map[reflect.Type]*structDescriptor),
}

func (ss *descriptorCollection) getDescriptor(ty reflect.Type) (*structDescriptor, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	if descriptor, ok := ss.descriptors[ty]; ok {
		return descriptor, nil
	}

	descriptor, err := buildDescriptor(ty)
	if err != nil {
		return nil, err
	}

	ss.descriptors[ty] = descriptor
	return descriptor, nil
}

func buildDescriptor(ty reflect.Type) (*structDescriptor, error) {
	bindings := container.NewOrderedMap[Tag, fieldBinding]()
	for i := 0; i < ty.NumField(); i++ {
		field := ty.Field(i)
		name, ok := field.Tag.Lookup(FieldTag)
		if !ok {
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("injection: field %v.%v has an empty %v tag", ty, field.Name, FieldTag)
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("injection: field %v.%v is marked %v but not exported", ty, field.Name, FieldTag)
		}
		if !reflect.PointerTo(field.Type).Implements(islotType) {
			return nil, fmt.Errorf("injection: field %v.%v is marked %v but is not an Injected slot", ty, field.Name, FieldTag)
		}
		tag := Tag(name)
		if bindings.Contains(tag) {
			return nil, fmt.Errorf("injection: tag %q is bound to more than one field of %v", name, ty)
		}

		payload := reflect.New(field.Type).Interface().(islot).payloadType()
		bindings.Add(tag, fieldBinding{index: i, payload: payload})
	}
	return &structDescriptor{bindings: bindings}, nil
}

var _ = IInjectable((*boundStruct)(nil))

type boundStruct struct {
	value      reflect.Value
	descriptor *structDescriptor
}

// Bind makes a struct injectable: it scans the target's fields for Injected
// slots tagged `inject:"TagName"` and returns an IInjectable storing matching
// variant payloads into them. The target must be a non-nil struct pointer and
// stays owned by the caller; Bind only keeps a reference.
func Bind(target any) (IInjectable, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("injection: bind target must be a non-nil struct pointer, got %T", target)
	}

	descriptor, err := descriptors.getDescriptor(v.Elem().Type())
	if err != nil {
		return nil, err
	}

	return &boundStruct{value: v.Elem(), descriptor: descriptor}, nil
}

// MustBind is Bind for wiring code paths where a malformed target is a
// programming error.
func MustBind(target any) IInjectable {
	injectable, err := Bind(target)
	if err != nil {
		panic(err)
	}
	return injectable
}

// Inject stores the variant's payload into the one field bound to its tag.
// Variants with no bound field are a no-op. A payload that does not fit the
// bound slot's type panics; it is the runtime surface of what the binding
// declaration promised.
func (ss *boundStruct) Inject(v Variant) {
	binding, ok := ss.descriptor.bindings.Get(v.Tag)
	if !ok {
		return
	}

	assert.True(binding.index < ss.value.NumField())

	slot := ss.value.Field(binding.index).Addr().Interface().(islot)
	if err := slot.setAny(v.Value); err != nil {
		panic(fmt.Errorf("injection: tag %q on %v: %w", v.Tag, ss.value.Type(), err))
	}
}
