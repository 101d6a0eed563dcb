// Package format describes the on-disk framing of a stripe: the leading and
// trailing file signature, and the self-delimited stripe and column chunk
// headers written ahead of each stripe's compressed payload.
package format

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kke-stripe/scs/compress"
	"github.com/kke-stripe/scs/encoding"
)

// Signature is written at the start of a storage file and repeated as the
// footer once no more stripes will be appended.
const Signature = "SCS"

// SignatureSize is exposed programmatically so callers never need to hardcode
// len(Signature).
const SignatureSize = len(Signature)

// ColumnChunkHeader describes one column's compressed chunk within a
// stripe: where it starts relative to the stripe's payload, how large it is
// compressed and uncompressed, and which encoding/compression produced it.
type ColumnChunkHeader struct {
	RelativeOffset   uint64        `msgpack:"relative_offset"`
	CompressedSize   uint32        `msgpack:"compressed_size"`
	UncompressedSize uint32        `msgpack:"uncompressed_size"`
	Encoding         encoding.Kind `msgpack:"encoding"`
	Compression      compress.Kind `msgpack:"compression"`
}

// StripeHeader precedes a stripe's concatenated column chunks.
type StripeHeader struct {
	NumRows      uint32              `msgpack:"num_rows"`
	ColumnChunks []ColumnChunkHeader `msgpack:"column_chunks"`
	StripeSize   uint64              `msgpack:"stripe_size"`
}

// WriteHeader self-delimits h into w so ReadHeader can recover it without a
// separate length prefix.
func WriteHeader(w io.Writer, h StripeHeader) error {
	return msgpack.NewEncoder(w).Encode(h)
}

// ReadHeader is the inverse of WriteHeader.
func ReadHeader(r io.Reader) (StripeHeader, error) {
	var h StripeHeader
	err := msgpack.NewDecoder(r).Decode(&h)
	return h, err
}

// WriteSignature writes the file signature to w, used both when a storage
// file is created and again as its footer once insertion finishes.
func WriteSignature(w io.Writer) error {
	_, err := w.Write([]byte(Signature))
	return err
}
