package avro

import "github.com/zeebo/errs"

// Error classes shared by all logical types. None are retried internally;
// each one fails the call that raised it.
var (
	// ErrInvalidConfiguration is returned at construction or validation
	// time when a declared attribute is out of range or the physical
	// schema cannot hold the declared precision. Schema loading must
	// abort rather than clamp.
	ErrInvalidConfiguration = errs.Class("invalid configuration")

	// ErrUnsupportedOperation is returned when value conversion is
	// invoked against a physical kind the logical type does not convert
	// directly. This indicates a registry wiring bug, not a data
	// problem.
	ErrUnsupportedOperation = errs.Class("unsupported operation")

	// ErrMalformedValue is returned when deserialization receives input
	// that cannot be parsed. No partial value is returned.
	ErrMalformedValue = errs.Class("malformed value")
)
