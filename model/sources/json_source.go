package sources

import (
	"fmt"
	"log"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	stripjsoncomments "github.com/trapcodeio/go-strip-json-comments"

	"github.com/DerSchmale/injectiny/container"
	"github.com/DerSchmale/injectiny/injection"
	"github.com/DerSchmale/injectiny/model"
)

var _ = IModelSource((*JsonModelSource)(nil))

// JsonModelSource reads variants from a JSON object mapping tag names to
// payload documents. Comments are allowed. Top-level keys that are not
// declared tags of the model are ignored, matching the no-op contract for
// unbound variants.
type JsonModelSource struct {
	Path           string
	Optional       bool
	ReloadOnChange bool
}

func (ss *JsonModelSource) BuildModelProvider(m *model.Model) IModelProvider {
	return NewJsonModelProvider(ss, m)
}

var _ = IModelProvider((*JsonModelProvider)(nil))

type JsonModelProvider struct {
	*FileModelProvider

	model *model.Model
}

func NewJsonModelProvider(source *JsonModelSource, m *model.Model) *JsonModelProvider {
	provider := &JsonModelProvider{
		FileModelProvider: NewFileModelProvider(&FileModelSource{
			Path:           source.Path,
			Optional:       source.Optional,
			ReloadOnChange: source.ReloadOnChange,
		}),
		model: m,
	}
	provider.OnLoad = provider.OnLoadJson
	return provider
}

func (ss *JsonModelProvider) OnLoadJson(bytes []byte) {
	jsonWithoutComments := stripjsoncomments.Strip(string(bytes))

	variants, err := ConvertJsonToVariants(ss.model, jsonWithoutComments)
	if err != nil {
		log.Printf("load model json: %v", err)
		ss.Replace(nil)
		return
	}

	ss.Replace(variants)
}

// ConvertJsonToVariants decodes every declared tag present in the document
// into a typed payload and mints a variant for it through the model.
func ConvertJsonToVariants(m *model.Model, json string) (container.List[injection.Variant], error) {
	var raw map[string]jsoniter.RawMessage
	if err := jsoniter.UnmarshalFromString(json, &raw); err != nil {
		return nil, fmt.Errorf("model json unmarshal failed: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(json)), jsonparser.Parser()); err != nil {
		return nil, fmt.Errorf("model json load failed: %w", err)
	}

	var variants container.List[injection.Variant]
	for _, tag := range m.Tags() {
		if _, ok := raw[string(tag)]; !ok {
			continue
		}

		ty, _ := m.PayloadType(tag)
		out := reflect.New(ty)
		if err := k.Unmarshal(string(tag), out.Interface()); err != nil {
			return nil, fmt.Errorf("decode payload for tag %q: %w", tag, err)
		}

		v, err := m.Of(tag, out.Elem().Interface())
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}
