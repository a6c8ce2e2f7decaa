package injection

// Tag names one member of a closed model union.
type Tag string

// Variant is a single model member: a tag plus the one payload it carries.
// Payloads are stored as-is; callers wanting to share one value across
// several targets pass a pointer or another shared handle.
type Variant struct {
	Tag   Tag
	Value any
}

func NewVariant(tag Tag, value any) Variant {
	return Variant{Tag: tag, Value: value}
}

// Source produces a variant. Batch application invokes a source once per
// target, so producers must be safe to call repeatedly.
type Source func() Variant

type IInjectable interface {
	Inject(v Variant)
}
