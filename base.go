package avro

// Base carries the bookkeeping shared by logical type implementations: the
// type name, the reserved attribute names, and the attribute map recorded
// into schema metadata. Concrete logical types wrap a Base rather than
// inherit from it.
//
// A Base is immutable after construction.
type Base struct {
	name     string
	reserved []string
	attrs    map[string]any
}

// NewBase returns a Base for the named logical type. The identity attribute
// AttrLogicalType is always reserved and always present in the attribute
// map, holding the name.
func NewBase(name string, attrs map[string]any, reserved ...string) Base {
	all := make(map[string]any, len(attrs)+1)
	all[AttrLogicalType] = name
	for k, v := range attrs {
		all[k] = v
	}

	return Base{
		name:     name,
		reserved: append([]string{AttrLogicalType}, reserved...),
		attrs:    all,
	}
}

// Name returns the logical type identifier.
func (b Base) Name() string {
	return b.name
}

// Reserved returns a copy of the reserved attribute names.
func (b Base) Reserved() []string {
	return append([]string(nil), b.reserved...)
}

// Attrs returns a copy of the attribute map.
func (b Base) Attrs() map[string]any {
	attrs := make(map[string]any, len(b.attrs))
	for k, v := range b.attrs {
		attrs[k] = v
	}

	return attrs
}
