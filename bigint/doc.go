// Package bigint provides the "bigint" logical type: an arbitrary
// precision signed integer with a declared maximum number of base 10
// digits.
//
// Precision And Capacity
//
// The precision attribute bounds how many decimal digits a value may have.
// It must be positive and must not exceed what the physical schema can
// represent. Bytes and string schemas grow with the value, so any positive
// precision is accepted. A fixed schema of s bytes holds a two's complement
// signed integer, whose largest value is:
//
//	2^(8*s - 1) - 1
//
// The schema's capacity is the number of full decimal digits of that
// value, computed exactly over the integers rather than through floating
// point. For example fixed(3) holds values up to 8388607 and so has a
// capacity of 6 digits: every 6 digit value fits, while some 7 digit
// values do not.
//
// Encodings
//
// Bound to a string schema, values are the canonical base 10 text: an
// optional leading minus, no redundant leading zeros, no whitespace.
// Parsing additionally accepts a leading plus and redundant zeros; neither
// survives re-serialization.
//
// Bound to a bytes schema, values are the minimal big endian two's
// complement encoding: the shortest byte sequence that round trips through
// a signed interpretation. Zero is the single byte 0x00, -1 is the single
// byte 0xFF, and 128 needs two bytes (0x00 0x80) to keep the sign bit
// clear.
//
// Bound to a fixed schema, values are framed and padded by the physical
// container layer; direct conversion through this package reports
// avro.ErrUnsupportedOperation.
package bigint
