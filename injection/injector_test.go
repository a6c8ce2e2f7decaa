package injection_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DerSchmale/injectiny/injection"
)

type recorder struct {
	id    string
	trace *[]string
}

func (ss *recorder) Inject(v injection.Variant) {
	*ss.trace = append(*ss.trace, fmt.Sprintf("%v->%v", v.Tag, ss.id))
}

func TestApplyOrderSourcesOuterTargetsInner(t *testing.T) {
	var trace []string
	t1 := &recorder{id: "t1", trace: &trace}
	t2 := &recorder{id: "t2", trace: &trace}

	invocations := 0
	injection.NewInjector().
		AddSource(func() injection.Variant {
			invocations++
			return injection.NewVariant("A", 1)
		}).
		AddValue(injection.NewVariant("B", 2)).
		AddTarget(t1).
		AddTarget(t2).
		Apply()

	assert.Equal(
		t,
		[]string{"A->t1", "A->t2", "B->t1", "B->t2"},
		trace,
		"Apply must walk sources in the outer loop and targets in the inner loop",
	)
	assert.Equal(t, 2, invocations, "each source must be invoked once per target")
}

func TestApplyMatchesIndividualApplication(t *testing.T) {
	variants := []injection.Variant{
		injection.NewVariant(tagName, func() *string { s := "first"; return &s }()),
		injection.NewVariant(tagAge, uint32(30)),
		injection.NewVariant(tagName, func() *string { s := "second"; return &s }()),
	}

	batched := &injectee{}
	individual := &injectee{}

	in := injection.NewInjector().AddTarget(injection.MustBind(batched))
	for _, v := range variants {
		in.AddValue(v)
	}
	in.Apply()

	target := injection.MustBind(individual)
	for _, v := range variants {
		target.Inject(v)
	}

	assert.Equal(t, *individual.Name.MustGet(), *batched.Name.MustGet(), "batch application must equal per-source application")
	assert.Equal(t, individual.Age.MustGet(), batched.Age.MustGet(), "batch application must equal per-source application")
	assert.Equal(t, "second", *batched.Name.MustGet(), "later sources must overwrite earlier ones")
}

func TestApplyWithoutTargetsOrSources(t *testing.T) {
	assert.NotPanics(t, func() { injection.NewInjector().Apply() }, "an empty injector must be a no-op")

	invoked := false
	injection.NewInjector().
		AddSource(func() injection.Variant {
			invoked = true
			return injection.NewVariant("A", 1)
		}).
		Apply()
	assert.False(t, invoked, "without targets no source may be invoked")
}
