package column

import "fmt"

// Column describes one column of a Storage: its name, its on-disk datatype
// and its position among the storage's columns.
type Column struct {
	Name     string
	Datatype Datatype
	Info     DatatypeInfo
	Index    int
}

// TypeError reports that a Value's Kind does not match the Column's
// Datatype during row validation.
type TypeError struct {
	Column string
	Kind   ValueKind
	Want   Datatype
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("column %q: value kind %d does not match datatype %s", e.Column, e.Kind, e.Want)
}

// InvalidLengthError reports that a FixedLength value's byte slice does not
// match the column's configured width.
type InvalidLengthError struct {
	Column string
	Got    int
	Want   int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("column %q: expected a value of length %d, got %d", e.Column, e.Want, e.Got)
}

// InvalidFormatError reports that a proposed schema is malformed in a way
// that has nothing to do with any one column's type or width -- currently
// just a duplicate column name.
type InvalidFormatError struct {
	Msg string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("column: invalid format: %s", e.Msg)
}

// Validate checks that v is an acceptable cell for column c by matching its
// Kind against the column's Datatype. The chunk generators do no checking
// of their own and rely on this having run first.
func (c Column) Validate(v Value) error {
	if v.IsNull() {
		return nil
	}
	switch c.Datatype {
	case DatatypeByte:
		if v.Kind != KindByte {
			return &TypeError{Column: c.Name, Kind: v.Kind, Want: c.Datatype}
		}
	case DatatypeInt32:
		if v.Kind != KindInt32 {
			return &TypeError{Column: c.Name, Kind: v.Kind, Want: c.Datatype}
		}
	case DatatypeInt64:
		if v.Kind != KindInt64 {
			return &TypeError{Column: c.Name, Kind: v.Kind, Want: c.Datatype}
		}
	case DatatypeFloat:
		if v.Kind != KindFloat {
			return &TypeError{Column: c.Name, Kind: v.Kind, Want: c.Datatype}
		}
	case DatatypeFixedLength:
		if v.Kind != KindBytes {
			return &TypeError{Column: c.Name, Kind: v.Kind, Want: c.Datatype}
		}
		if len(v.Bytes) != c.Info.ValueSize {
			return &InvalidLengthError{Column: c.Name, Got: len(v.Bytes), Want: c.Info.ValueSize}
		}
	case DatatypeVariableLength:
		if v.Kind != KindBytes {
			return &TypeError{Column: c.Name, Kind: v.Kind, Want: c.Datatype}
		}
	default:
		return errTypeError
	}
	return nil
}

// Columns validates a proposed set of columns, rejecting duplicate names the
// same way StorageBuilder rejects a schema with two columns sharing a name.
func Columns(cols []Column) ([]Column, error) {
	seen := make(map[string]bool, len(cols))
	out := make([]Column, len(cols))
	for i, c := range cols {
		if seen[c.Name] {
			return nil, &InvalidFormatError{Msg: fmt.Sprintf("duplicate column name: %q", c.Name)}
		}
		seen[c.Name] = true
		c.Index = i
		out[i] = c
	}
	return out, nil
}
