package chunkgen

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/kke-stripe/scs/column"
)

func TestNumericInt32Sentinel(t *testing.T) {
	g := New(column.Column{Datatype: column.DatatypeInt32})
	g.Append(column.Int32Value(42))
	g.Append(column.NullValue())
	g.Append(column.Int32Value(-7))

	b := g.Bytes()
	if len(b) != 12 {
		t.Fatalf("expected 12 bytes, got %d", len(b))
	}
	if got := int32(binary.LittleEndian.Uint32(b[0:4])); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := int32(binary.LittleEndian.Uint32(b[4:8])); got != math.MinInt32 {
		t.Fatalf("expected sentinel null, got %d", got)
	}
	if got := int32(binary.LittleEndian.Uint32(b[8:12])); got != -7 {
		t.Fatalf("expected -7, got %d", got)
	}
}

func TestNumericFloatSentinel(t *testing.T) {
	g := New(column.Column{Datatype: column.DatatypeFloat})
	g.Append(column.NullValue())
	b := g.Bytes()
	got := math.Float32frombits(binary.LittleEndian.Uint32(b))
	if !math.IsInf(float64(got), -1) {
		t.Fatalf("expected negative infinity sentinel, got %v", got)
	}
}

func TestFixedLengthNullsSideChannel(t *testing.T) {
	g := New(column.Column{Datatype: column.DatatypeFixedLength, Info: column.DatatypeInfo{ValueSize: 2}})
	g.Append(column.BytesValue([]byte{1, 2}))
	g.Append(column.NullValue())
	b := g.Bytes()
	// two null-flag bytes, then two bytes of present data
	if len(b) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(b))
	}
	if b[0] != 0 || b[1] != 1 {
		t.Fatalf("expected null flags [0,1], got %v", b[:2])
	}
	if b[2] != 1 || b[3] != 2 {
		t.Fatalf("expected value bytes [1,2], got %v", b[2:])
	}
}

func TestVariableLengthSizes(t *testing.T) {
	g := New(column.Column{Datatype: column.DatatypeVariableLength})
	g.Append(column.BytesValue([]byte("hi")))
	g.Append(column.NullValue())
	b := g.Bytes()
	size0 := int32(binary.LittleEndian.Uint32(b[0:4]))
	size1 := int32(binary.LittleEndian.Uint32(b[4:8]))
	if size0 != 2 {
		t.Fatalf("expected size 2, got %d", size0)
	}
	if size1 != -1 {
		t.Fatalf("expected size -1 for null, got %d", size1)
	}
	if string(b[8:10]) != "hi" {
		t.Fatalf("expected value bytes 'hi', got %q", b[8:10])
	}
}

func TestResetClearsState(t *testing.T) {
	g := New(column.Column{Datatype: column.DatatypeByte})
	g.Append(column.ByteValue(5))
	g.Reset()
	if g.Len() != 0 {
		t.Fatalf("expected length 0 after reset, got %d", g.Len())
	}
	if len(g.Bytes()) != 0 {
		t.Fatalf("expected no bytes after reset")
	}
}
