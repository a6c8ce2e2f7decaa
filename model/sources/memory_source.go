package sources

import (
	"github.com/DerSchmale/injectiny/container"
	"github.com/DerSchmale/injectiny/injection"
	"github.com/DerSchmale/injectiny/model"
)

var _ = IModelSource((*MemoryModelSource)(nil))

type MemoryModelSource struct {
	InitVariants []injection.Variant
}

func (ss *MemoryModelSource) BuildModelProvider(_ *model.Model) IModelProvider {
	return NewMemoryModelProvider(ss)
}

var _ = IModelProvider((*MemoryModelProvider)(nil))

type MemoryModelProvider struct {
	*Provider
}

func NewMemoryModelProvider(source *MemoryModelSource) *MemoryModelProvider {
	provider := NewProvider()
	if source.InitVariants != nil {
		provider.Replace(container.NewList(source.InitVariants...))
	}
	return &MemoryModelProvider{
		Provider: provider,
	}
}
