package injection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DerSchmale/injectiny/injection"
)

const (
	tagName injection.Tag = "Name"
	tagAge  injection.Tag = "Age"
)

type injectee struct {
	Name injection.Injected[*string] `inject:"Name"`
	Age  injection.Injected[uint32]  `inject:"Age"`

	Plain string
}

func TestBindAndInject(t *testing.T) {
	target := &injectee{}
	injectable, err := injection.Bind(target)
	require.NoError(t, err, "a well-formed struct pointer must bind")

	name := "Patje"
	injectable.Inject(injection.NewVariant(tagName, &name))

	got, ok := target.Name.Get()
	assert.True(t, ok, "the field bound to the injected tag must be filled")
	assert.Equal(t, "Patje", *got, "the slot must hold the variant payload")
	assert.False(t, target.Age.IsInjected(), "fields bound to other tags must stay empty")

	injectable.Inject(injection.NewVariant(tagAge, uint32(25)))
	assert.Equal(t, uint32(25), target.Age.MustGet(), "each variant fills exactly its bound field")
}

func TestInjectUnknownTagIsNoop(t *testing.T) {
	target := &injectee{}
	injectable := injection.MustBind(target)

	injectable.Inject(injection.NewVariant("Unbound", 1))

	assert.False(t, target.Name.IsInjected(), "an unbound variant must leave all slots unchanged")
	assert.False(t, target.Age.IsInjected(), "an unbound variant must leave all slots unchanged")
}

func TestReinjectOverwrites(t *testing.T) {
	target := &injectee{}
	injectable := injection.MustBind(target)

	injectable.Inject(injection.NewVariant(tagAge, uint32(25)))
	injectable.Inject(injection.NewVariant(tagAge, uint32(26)))

	assert.Equal(t, uint32(26), target.Age.MustGet(), "re-injecting a tag must be last-write-wins")
}

func TestInjectPayloadMismatchPanics(t *testing.T) {
	target := &injectee{}
	injectable := injection.MustBind(target)

	assert.Panics(
		t,
		func() { injectable.Inject(injection.NewVariant(tagAge, "not a number")) },
		"a payload that does not fit the bound slot must fail loudly",
	)
}

func TestSharedHandleReachesAllTargets(t *testing.T) {
	first := &injectee{}
	second := &injectee{}

	name := "Patje"
	v := injection.NewVariant(tagName, &name)
	injection.MustBind(first).Inject(v)
	injection.MustBind(second).Inject(v)

	*first.Name.MustGet() = "Mieke"
	assert.Equal(t, "Mieke", *second.Name.MustGet(), "targets sharing a handle must observe mutations")
}

func TestBindRejectsNonStructPointer(t *testing.T) {
	_, err := injection.Bind(injectee{})
	assert.Error(t, err, "a struct value is not bindable")

	_, err = injection.Bind((*injectee)(nil))
	assert.Error(t, err, "a nil pointer is not bindable")

	n := 3
	_, err = injection.Bind(&n)
	assert.Error(t, err, "pointers to non-structs are not bindable")

	assert.Panics(t, func() { injection.MustBind(nil) }, "MustBind must panic on malformed targets")
}

type duplicateTags struct {
	A injection.Injected[int] `inject:"X"`
	B injection.Injected[int] `inject:"X"`
}

type notASlot struct {
	A string `inject:"X"`
}

type unexportedSlot struct {
	a injection.Injected[int] `inject:"X"`
}

type emptyTag struct {
	A injection.Injected[int] `inject:""`
}

func TestBindRejectsMalformedBindings(t *testing.T) {
	_, err := injection.Bind(&duplicateTags{})
	assert.Error(t, err, "one tag must bind at most one field")

	_, err = injection.Bind(&notASlot{})
	assert.Error(t, err, "inject tags are only valid on Injected fields")

	_, err = injection.Bind(&unexportedSlot{})
	assert.Error(t, err, "unexported fields cannot be bound")

	_, err = injection.Bind(&emptyTag{})
	assert.Error(t, err, "an empty inject tag is malformed")
}
