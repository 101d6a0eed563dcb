// Package stripe assembles a stripe's column chunks into the header-plus-
// payload framing written to a Storage's backend.
package stripe

import (
	"fmt"
	"io"

	"github.com/kke-stripe/scs/compress"
	"github.com/kke-stripe/scs/encoding"
	"github.com/kke-stripe/scs/format"
)

// Chunk is one column's contribution to a stripe: its raw (encoded, not
// compressed) bytes plus the encoding that produced them.
type Chunk struct {
	Encoding encoding.Kind
	Raw      []byte
}

// Assembler writes stripes to a backend, tracking nothing across calls: all
// state needed to compute relative offsets lives within a single
// AppendStripe call, matching the stateless, one-shot nature of the
// assembly step.
type Assembler struct {
	Compression compress.Kind
}

// AppendStripe compresses each chunk, builds the stripe header describing
// them, and writes header-then-payload to w. It returns the total number of
// bytes written, which callers use to advance their directory bookkeeping.
func (a Assembler) AppendStripe(w io.Writer, numRows uint32, chunks []Chunk) (int64, error) {
	if len(chunks) == 0 {
		return 0, nil
	}
	compressed := make([][]byte, len(chunks))
	headers := make([]format.ColumnChunkHeader, len(chunks))
	var relOffset uint64
	for i, c := range chunks {
		cb, err := compress.Compress(a.Compression, c.Raw)
		if err != nil {
			return 0, fmt.Errorf("stripe: compressing column %d: %w", i, err)
		}
		compressed[i] = cb
		headers[i] = format.ColumnChunkHeader{
			RelativeOffset:   relOffset,
			CompressedSize:   uint32(len(cb)),
			UncompressedSize: uint32(len(c.Raw)),
			Encoding:         c.Encoding,
			Compression:      a.Compression,
		}
		relOffset += uint64(len(cb))
	}

	header := format.StripeHeader{
		NumRows:      numRows,
		ColumnChunks: headers,
		StripeSize:   relOffset,
	}

	var written int64
	if err := format.WriteHeader(countingWriter{w, &written}, header); err != nil {
		return written, fmt.Errorf("stripe: writing header: %w", err)
	}
	for i, cb := range compressed {
		n, err := w.Write(cb)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("stripe: writing column %d payload: %w", i, err)
		}
	}
	return written, nil
}

// countingWriter tallies bytes passed through Write without altering them,
// used to learn the header's own encoded size for directory bookkeeping.
type countingWriter struct {
	w io.Writer
	n *int64
}

func (c countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	*c.n += int64(n)
	return n, err
}
