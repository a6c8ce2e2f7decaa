// Package sources supplies model variants from places other than code:
// fixed in-memory lists, JSON documents, files watched for change. A source
// builds a provider; the provider loads and holds the current variant list
// and hands it to an Injector as batch sources.
package sources

import (
	"sync"

	"github.com/DerSchmale/injectiny/container"
	"github.com/DerSchmale/injectiny/injection"
	"github.com/DerSchmale/injectiny/model"
	"github.com/DerSchmale/injectiny/notifier"
)

type IModelSource interface {
	BuildModelProvider(m *model.Model) IModelProvider
}

type IModelProvider interface {
	Load()
	Variants() container.List[injection.Variant]
	Sources() container.List[injection.Source]
	GetReloadNotifier() notifier.INotifier
}

var _ = IModelProvider((*Provider)(nil))

type Provider struct {
	lock     sync.Mutex
	variants container.List[injection.Variant]
	notifier *notifier.Notifier
}

func NewProvider() *Provider {
	return &Provider{
		notifier: notifier.NewNotifier(),
	}
}

func (ss *Provider) Load() {
}

// Replace swaps the full variant list; used by loading providers on every
// (re)load.
func (ss *Provider) Replace(variants container.List[injection.Variant]) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.variants = variants
}

func (ss *Provider) Variants() container.List[injection.Variant] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.variants.Copy()
}

// Sources snapshots the current variants as constant injector sources.
func (ss *Provider) Sources() container.List[injection.Source] {
	variants := ss.Variants()
	result := make(container.List[injection.Source], 0, variants.Len())
	variants.Scan(func(v injection.Variant) {
		result = append(result, func() injection.Variant { return v })
	})
	return result
}

func (ss *Provider) GetReloadNotifier() notifier.INotifier {
	return ss.notifier
}

func (ss *Provider) OnReload() {
	ss.notifier.Notify()
}
