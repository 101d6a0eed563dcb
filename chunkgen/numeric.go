package chunkgen

import (
	"encoding/binary"
	"math"

	"github.com/kke-stripe/scs/column"
)

// numeric is the set of Go types a NumericChunkGenerator can be
// instantiated over. It mirrors the four numeric ColumnValue variants:
// byte, int32, int64 and float.
type numeric interface {
	~int8 | ~int32 | ~int64 | ~float32
}

const (
	int8Min  = math.MinInt8
	int32Min = math.MinInt32
	int64Min = math.MinInt64
)

// numericChunkGenerator accumulates one numeric column's values and packs
// them into a little-endian byte buffer in Bytes. Nulls carry no separate
// bitmap: they are represented in-band by a reserved sentinel value, per numeric type.
type numericChunkGenerator[N numeric] struct {
	values  []N
	null    N
	extract func(column.Value) N
}

func newNumeric[N numeric](null N) *numericChunkGenerator[N] {
	var extract func(column.Value) N
	switch any(null).(type) {
	case int8:
		extract = func(v column.Value) N { return any(v.Byte).(N) }
	case int32:
		extract = func(v column.Value) N { return any(v.Int32).(N) }
	case int64:
		extract = func(v column.Value) N { return any(v.Int64).(N) }
	}
	return &numericChunkGenerator[N]{null: null, extract: extract}
}

func newNumericFloat() *numericChunkGenerator[float32] {
	return &numericChunkGenerator[float32]{
		null:    float32(math.Inf(-1)),
		extract: func(v column.Value) float32 { return v.Float },
	}
}

func (g *numericChunkGenerator[N]) Append(v column.Value) {
	if v.IsNull() {
		g.values = append(g.values, g.null)
		return
	}
	g.values = append(g.values, g.extract(v))
}

func (g *numericChunkGenerator[N]) Len() int { return len(g.values) }

func (g *numericChunkGenerator[N]) Reset() { g.values = g.values[:0] }

func (g *numericChunkGenerator[N]) Bytes() []byte {
	switch vs := any(g.values).(type) {
	case []int8:
		out := make([]byte, len(vs))
		for i, v := range vs {
			out[i] = byte(v)
		}
		return out
	case []int32:
		out := make([]byte, 4*len(vs))
		for i, v := range vs {
			binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
		}
		return out
	case []int64:
		out := make([]byte, 8*len(vs))
		for i, v := range vs {
			binary.LittleEndian.PutUint64(out[8*i:], uint64(v))
		}
		return out
	case []float32:
		out := make([]byte, 4*len(vs))
		for i, v := range vs {
			binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
		}
		return out
	default:
		panic("chunkgen: unsupported numeric type")
	}
}
