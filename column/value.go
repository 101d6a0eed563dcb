package column

// ValueKind discriminates which field of a Value is populated.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindByte
	KindInt32
	KindInt64
	KindFloat
	KindBytes
)

// Value is a single cell in a row, tagged by Kind. Bytes is shared by the
// FixedLength and VariableLength datatypes, which both carry a raw byte
// payload and differ only in whether its length is implied by the column.
type Value struct {
	Kind  ValueKind
	Byte  int8
	Int32 int32
	Int64 int64
	Float float32
	Bytes []byte
}

// NullValue returns a null cell.
func NullValue() Value { return Value{Kind: KindNull} }

// ByteValue returns a non-null byte cell.
func ByteValue(v int8) Value { return Value{Kind: KindByte, Byte: v} }

// Int32Value returns a non-null int32 cell.
func Int32Value(v int32) Value { return Value{Kind: KindInt32, Int32: v} }

// Int64Value returns a non-null int64 cell.
func Int64Value(v int64) Value { return Value{Kind: KindInt64, Int64: v} }

// FloatValue returns a non-null float32 cell.
func FloatValue(v float32) Value { return Value{Kind: KindFloat, Float: v} }

// BytesValue returns a non-null fixed- or variable-length byte cell.
func BytesValue(v []byte) Value { return Value{Kind: KindBytes, Bytes: v} }

// IsNull reports whether the value represents an absent cell.
func (v Value) IsNull() bool { return v.Kind == KindNull }
