package avro

import (
	"math/big"
	"reflect"
)

// AttrLogicalType is the metadata key identifying which logical type a
// schema node carries. It is reserved by every logical type.
const AttrLogicalType = "logicalType"

// LogicalType converts native arbitrary precision integers to and from the
// physical representation of the schema it is bound to.
//
// Serialize and Deserialize are pure transformations. The physical value is
// a string or a []byte depending on the bound kind; neither side retains
// references to buffers across the call.
type LogicalType interface {
	// Name returns the logical type identifier recorded into schema
	// metadata and used in error messages.
	Name() string

	// Validate confirms the physical schema can back this logical type.
	// It is invoked once per binding and is idempotent.
	Validate(schema Schema) (err error)

	// Serialize converts a native value to its physical representation.
	Serialize(value *big.Int) (physical any, err error)

	// Deserialize converts a physical representation back to the exact
	// native value.
	Deserialize(physical any) (value *big.Int, err error)

	// Reserved returns the metadata keys this logical type claims. The
	// registry uses it to reject conflicting custom attributes.
	Reserved() []string

	// Attrs returns the attribute map recorded into schema metadata.
	Attrs() map[string]any

	// NativeType returns the runtime type values are boxed as by the
	// generic record layer.
	NativeType() reflect.Type
}
