package bigint

import (
	"math"
	"math/big"
	"reflect"

	"github.com/spf13/cast"

	"github.com/deepbluesnow/avro"
)

// Name is the logical type identifier recorded into schema metadata.
const Name = "bigint"

// AttrPrecision is the metadata key holding the declared precision.
const AttrPrecision = "precision"

// Type is the bigint logical type bound to one physical schema.
//
// A Type is immutable after construction and safe for concurrent use.
type Type struct {
	avro.Base

	precision int
	schema    avro.Schema
}

var _ avro.LogicalType = Type{}

// New returns a bigint logical type with the given precision, bound to the
// given physical schema. The binding is validated immediately and is
// permanent.
func New(precision int, schema avro.Schema) (t Type, err error) {
	if precision <= 0 {
		return t, avro.ErrInvalidConfiguration.New(
			"invalid %s precision: %d (must be positive)",
			Name,
			precision,
		)
	}

	t = Type{
		Base: avro.NewBase(
			Name,
			map[string]any{AttrPrecision: precision},
			AttrPrecision,
		),
		precision: precision,
		schema:    schema,
	}

	err = t.Validate(schema)
	if err != nil {
		return Type{}, err
	}

	return t, nil
}

// FromAttrs constructs the logical type from a schema node's attribute
// map. The precision attribute may be any integer valued representation
// the metadata parser produces (int, int64, float64, json.Number, string).
func FromAttrs(attrs map[string]any, schema avro.Schema) (t Type, err error) {
	raw, ok := attrs[AttrPrecision]
	if !ok {
		return t, avro.ErrInvalidConfiguration.New(
			"%s: missing attribute %q",
			Name,
			AttrPrecision,
		)
	}

	precision, err := cast.ToIntE(raw)
	if err != nil {
		return t, avro.ErrInvalidConfiguration.New(
			"%s: attribute %q: %v",
			Name,
			AttrPrecision,
			err,
		)
	}

	return New(precision, schema)
}

// Precision returns the maximum number of decimal digits a value may have.
func (t Type) Precision() int {
	return t.precision
}

// Kind returns the physical schema kind the type is bound to.
func (t Type) Kind() avro.Kind {
	return t.schema.Kind
}

// NativeType implements avro.LogicalType.
func (t Type) NativeType() reflect.Type {
	return reflect.TypeOf((*big.Int)(nil))
}

// Validate implements avro.LogicalType.
func (t Type) Validate(schema avro.Schema) (err error) {
	switch schema.Kind {
	case avro.Fixed, avro.Bytes, avro.String:
	default:
		return avro.ErrInvalidConfiguration.New(
			"%s must be backed by fixed, bytes, or string (got %s)",
			Name,
			schema.Kind,
		)
	}

	if max := Capacity(schema); t.precision > max {
		return avro.ErrInvalidConfiguration.New(
			"fixed(%d) cannot store %d digits (max %d)",
			schema.Size,
			t.precision,
			max,
		)
	}

	return nil
}

// Capacity returns the maximum number of decimal digits the physical
// schema can represent, independent of any declared precision. Bytes and
// string schemas are not bounded at definition time. Any kind that cannot
// back the logical type has zero capacity.
func Capacity(schema avro.Schema) int {
	switch schema.Kind {
	case avro.Bytes, avro.String:
		return math.MaxInt32
	case avro.Fixed:
		return fixedCapacity(schema.Size)
	default:
		return 0
	}
}

// fixedCapacity is floor(log10(2^(8*size - 1) - 1)): the number of full
// decimal digits of the largest two's complement value of the given width.
// Computed over the integers, as the decimal length of the max value minus
// one.
func fixedCapacity(size int) int {
	if size <= 0 {
		return 0
	}

	max := new(big.Int).Lsh(one, uint(8*size-1))
	max.Sub(max, one)

	return len(max.Text(10)) - 1
}
