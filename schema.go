package avro

import "fmt"

// Kind is the physical schema kind.
type Kind int

// Physical Schema Kinds
const (
	Null Kind = iota
	Boolean
	Int
	Long
	Float
	Double
	Bytes
	String
	Fixed
	Record
	Enum
	Array
	Map
	Union
)

var kindNames = [...]string{
	"null",
	"boolean",
	"int",
	"long",
	"float",
	"double",
	"bytes",
	"string",
	"fixed",
	"record",
	"enum",
	"array",
	"map",
	"union",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Schema describes the physical type a logical type is bound to.
type Schema struct {
	Kind Kind

	// Size is the width in bytes when Kind is Fixed. It is ignored for
	// every other kind.
	Size int
}

func (s Schema) String() string {
	if s.Kind == Fixed {
		return fmt.Sprintf("fixed(%d)", s.Size)
	}

	return s.Kind.String()
}
