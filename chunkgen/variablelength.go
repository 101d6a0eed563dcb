package chunkgen

import (
	"encoding/binary"

	"github.com/kke-stripe/scs/column"
)

// variableLengthChunkGenerator accumulates a variable-width byte column. A
// size of -1 marks a null row; any other size (including 0) is the byte
// length of the corresponding slice in values.
type variableLengthChunkGenerator struct {
	sizes  []int32
	values []byte
}

func newVariableLength() *variableLengthChunkGenerator {
	return &variableLengthChunkGenerator{}
}

func (g *variableLengthChunkGenerator) Append(v column.Value) {
	if v.IsNull() {
		g.sizes = append(g.sizes, -1)
		return
	}
	g.sizes = append(g.sizes, int32(len(v.Bytes)))
	g.values = append(g.values, v.Bytes...)
}

func (g *variableLengthChunkGenerator) Len() int { return len(g.sizes) }

func (g *variableLengthChunkGenerator) Reset() {
	g.sizes = g.sizes[:0]
	g.values = g.values[:0]
}

// Bytes lays out the sizes array (little-endian int32 each) followed by the
// concatenated value bytes.
func (g *variableLengthChunkGenerator) Bytes() []byte {
	out := make([]byte, 4*len(g.sizes)+len(g.values))
	for i, s := range g.sizes {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(s))
	}
	copy(out[4*len(g.sizes):], g.values)
	return out
}
