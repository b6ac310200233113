// Package avro provides the plumbing shared by logical type
// implementations.
//
// A logical type layers semantic meaning onto a physical schema kind
// without changing the wire encoding. The physical schema carries the
// bytes; the logical type decides how native values are converted to and
// from them.
//
// A logical type instance is created when a schema carrying its annotation
// is loaded, validated once against the physical schema it decorates, and
// then used repeatedly for value conversion. Instances are immutable after
// construction and safe for concurrent use without locking.
//
// The schema registry that resolves annotations to instances and
// dispatches conversion calls is an external collaborator. This package
// only defines the surface it programs against: the LogicalType interface,
// the physical Schema descriptor, and the error classes every
// implementation reports with.
package avro
