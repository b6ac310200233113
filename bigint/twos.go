package bigint

import "math/big"

var one = big.NewInt(1)

// marshalTwos returns the shortest big endian two's complement encoding
// that round trips through a signed interpretation.
//
// Note: big.Int encodes zero as an empty byte array, but we desire zero to
// be an actual zero byte; the sizing below always yields at least one.
func marshalTwos(value *big.Int) (data []byte) {
	// Bits of the minimal two's complement form, excluding the sign
	// bit. Negative values count the bits of ^value.
	bits := value.BitLen()
	if value.Sign() < 0 {
		bits = new(big.Int).Not(value).BitLen()
	}

	size := bits/8 + 1

	buf := new(big.Int).Set(value)
	if value.Sign() < 0 {
		buf.Add(buf, new(big.Int).Lsh(one, uint(8*size)))
	}

	data = make([]byte, size)
	buf.FillBytes(data)

	return data
}

// unmarshalTwos interprets data as a big endian two's complement signed
// integer. The sign bit is the high bit of the first byte.
func unmarshalTwos(data []byte) (value *big.Int) {
	value = new(big.Int).SetBytes(data)

	if data[0]&0b1000_0000 != 0 {
		value.Sub(value, new(big.Int).Lsh(one, uint(8*len(data))))
	}

	return value
}
