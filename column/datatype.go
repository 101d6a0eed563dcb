// Package column defines the data model shared by chunk generators, stripe
// assembly and storage: column datatypes, per-cell values and the column
// descriptors making up a schema.
package column

import (
	"errors"
	"fmt"
)

// Datatype denotes the on-disk representation of a column.
type Datatype uint8

const (
	DatatypeInvalid Datatype = iota
	DatatypeByte
	DatatypeInt32
	DatatypeInt64
	DatatypeFloat
	DatatypeFixedLength
	DatatypeVariableLength
	// datatypeMax is a sentinel marking the end of the enum, reserved so
	// new datatypes can be added without shifting existing wire values.
	datatypeMax
)

func (dt Datatype) String() string {
	return []string{
		"invalid", "byte", "int32", "int64", "float",
		"fixed_length", "variable_length", "max",
	}[dt]
}

// DatatypeInfo describes storage properties derived from a Datatype.
type DatatypeInfo struct {
	IsNumeric   bool
	IsFixedSize bool
	// ValueSize is the per-value byte width for fixed-size datatypes, or
	// -1 when the datatype has no fixed width (VariableLength).
	ValueSize int
}

// Info computes the DatatypeInfo for dt. width is only consulted for
// DatatypeFixedLength, where it supplies the column's fixed value width.
func Info(dt Datatype, width int) (DatatypeInfo, error) {
	switch dt {
	case DatatypeByte:
		return DatatypeInfo{IsNumeric: true, IsFixedSize: true, ValueSize: 1}, nil
	case DatatypeInt32, DatatypeFloat:
		return DatatypeInfo{IsNumeric: true, IsFixedSize: true, ValueSize: 4}, nil
	case DatatypeInt64:
		return DatatypeInfo{IsNumeric: true, IsFixedSize: true, ValueSize: 8}, nil
	case DatatypeFixedLength:
		if width <= 0 {
			return DatatypeInfo{}, fmt.Errorf("fixed length columns require a positive width, got %d", width)
		}
		return DatatypeInfo{IsNumeric: false, IsFixedSize: true, ValueSize: width}, nil
	case DatatypeVariableLength:
		return DatatypeInfo{IsNumeric: false, IsFixedSize: false, ValueSize: -1}, nil
	default:
		return DatatypeInfo{}, errTypeError
	}
}

var errTypeError = errors.New("column: unknown datatype")
