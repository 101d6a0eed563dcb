package stripe

import (
	"bytes"
	"testing"

	"github.com/kke-stripe/scs/compress"
	"github.com/kke-stripe/scs/encoding"
	"github.com/kke-stripe/scs/format"
)

func TestAppendStripeWritesHeaderThenPayload(t *testing.T) {
	a := Assembler{Compression: compress.None}
	chunks := []Chunk{
		{Encoding: encoding.Raw, Raw: []byte{1, 2, 3, 4}},
		{Encoding: encoding.Raw, Raw: []byte{5, 6}},
	}

	var buf bytes.Buffer
	n, err := a.AppendStripe(&buf, 2, chunks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("reported %d bytes written, buffer holds %d", n, buf.Len())
	}

	hdr, err := format.ReadHeader(&buf)
	if err != nil {
		t.Fatalf("unexpected error reading header: %v", err)
	}
	if hdr.NumRows != 2 {
		t.Fatalf("expected 2 rows, got %d", hdr.NumRows)
	}
	if len(hdr.ColumnChunks) != 2 {
		t.Fatalf("expected 2 column chunks, got %d", len(hdr.ColumnChunks))
	}
	if hdr.ColumnChunks[0].RelativeOffset != 0 || hdr.ColumnChunks[1].RelativeOffset != 4 {
		t.Fatalf("unexpected relative offsets: %+v", hdr.ColumnChunks)
	}
	if hdr.StripeSize != 6 {
		t.Fatalf("expected stripe size 6, got %d", hdr.StripeSize)
	}

	rest := buf.Bytes()
	if !bytes.Equal(rest, []byte{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("expected payload [1 2 3 4 5 6], got %v", rest)
	}
}

func TestAppendStripeCompresses(t *testing.T) {
	a := Assembler{Compression: compress.Snappy}
	raw := bytes.Repeat([]byte{7}, 64)
	chunks := []Chunk{{Encoding: encoding.Raw, Raw: raw}}

	var buf bytes.Buffer
	if _, err := a.AppendStripe(&buf, 1, chunks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hdr, err := format.ReadHeader(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hdr.ColumnChunks[0].UncompressedSize != uint32(len(raw)) {
		t.Fatalf("expected uncompressed size %d, got %d", len(raw), hdr.ColumnChunks[0].UncompressedSize)
	}
	if hdr.ColumnChunks[0].CompressedSize >= hdr.ColumnChunks[0].UncompressedSize {
		t.Fatalf("expected snappy to shrink a repetitive buffer")
	}
}
