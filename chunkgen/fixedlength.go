package chunkgen

import "github.com/kke-stripe/scs/column"

// fixedLengthChunkGenerator accumulates a fixed-width byte column. Unlike
// the numeric generators it cannot reserve a sentinel value (any byte
// pattern may be a legitimate value), so nulls are tracked in a side-channel
// slice and contribute no bytes to the value buffer.
type fixedLengthChunkGenerator struct {
	width  int
	nulls  []bool
	values []byte
}

func newFixedLength(width int) *fixedLengthChunkGenerator {
	return &fixedLengthChunkGenerator{width: width}
}

func (g *fixedLengthChunkGenerator) Append(v column.Value) {
	if v.IsNull() {
		g.nulls = append(g.nulls, true)
		return
	}
	g.nulls = append(g.nulls, false)
	g.values = append(g.values, v.Bytes...)
}

func (g *fixedLengthChunkGenerator) Len() int { return len(g.nulls) }

func (g *fixedLengthChunkGenerator) Reset() {
	g.nulls = g.nulls[:0]
	g.values = g.values[:0]
}

// Bytes lays out one bool-sized byte per row (the null flags) followed by
// the concatenated present-value bytes, width bytes each.
func (g *fixedLengthChunkGenerator) Bytes() []byte {
	out := make([]byte, 0, len(g.nulls)+len(g.values))
	for _, n := range g.nulls {
		if n {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	out = append(out, g.values...)
	return out
}
