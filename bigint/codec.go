package bigint

import (
	"math/big"

	"github.com/deepbluesnow/avro"
)

// Serialize implements avro.LogicalType.
//
// Bound to a string schema it returns the canonical base 10 text for the
// value. Bound to a bytes schema it returns the minimal two's complement
// big endian encoding. Fixed schemas are framed by the physical container
// layer and are not converted here.
func (t Type) Serialize(value *big.Int) (physical any, err error) {
	switch t.schema.Kind {
	case avro.String:
		return value.String(), nil
	case avro.Bytes:
		return marshalTwos(value), nil
	default:
		return nil, avro.ErrUnsupportedOperation.New(
			"unsupported kind %s for %s(%d)",
			t.schema.Kind,
			Name,
			t.precision,
		)
	}
}

// Deserialize implements avro.LogicalType.
//
// Bound to a string schema it parses optionally signed base 10 text. A
// redundant leading plus or leading zeros are accepted but do not survive
// re-serialization. Bound to a bytes schema it reads the whole slice as a
// two's complement big endian integer; an empty slice is malformed.
func (t Type) Deserialize(physical any) (value *big.Int, err error) {
	switch t.schema.Kind {
	case avro.String:
		text, ok := physical.(string)
		if !ok {
			return nil, avro.ErrMalformedValue.New(
				"%s: expected string, got %T",
				Name,
				physical,
			)
		}

		value, ok = new(big.Int).SetString(text, 10)
		if !ok {
			return nil, avro.ErrMalformedValue.New(
				"%s: invalid integer text %q",
				Name,
				text,
			)
		}

		return value, nil
	case avro.Bytes:
		data, ok := physical.([]byte)
		if !ok {
			return nil, avro.ErrMalformedValue.New(
				"%s: expected []byte, got %T",
				Name,
				physical,
			)
		}

		if len(data) == 0 {
			return nil, avro.ErrMalformedValue.New(
				"%s: empty value",
				Name,
			)
		}

		return unmarshalTwos(data), nil
	default:
		return nil, avro.ErrUnsupportedOperation.New(
			"unsupported kind %s for %s(%d)",
			t.schema.Kind,
			Name,
			t.precision,
		)
	}
}
