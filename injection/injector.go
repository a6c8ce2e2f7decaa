package injection

import (
	"github.com/DerSchmale/injectiny/container"
)

// Injector batches several variant sources against several bound targets and
// applies the full product in one call. It is a transient helper: build one,
// Apply it, let it go.
type Injector struct {
	sources container.List[Source]
	targets container.List[IInjectable]
}

func NewInjector() *Injector {
	return &Injector{}
}

func (ss *Injector) AddSource(src Source) *Injector {
	ss.sources = append(ss.sources, src)
	return ss
}

// AddValue registers a constant source producing the given variant.
func (ss *Injector) AddValue(v Variant) *Injector {
	return ss.AddSource(func() Variant { return v })
}

func (ss *Injector) AddTarget(target IInjectable) *Injector {
	ss.targets = append(ss.targets, target)
	return ss
}

// Apply injects every source into every target: sources in registration
// order as the outer loop, targets in registration order as the inner loop.
// Each source is invoked once per target.
func (ss *Injector) Apply() {
	ss.sources.Scan(func(src Source) {
		ss.targets.Scan(func(target IInjectable) {
			target.Inject(src())
		})
	})
}
