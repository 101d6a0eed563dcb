// Package chunkgen accumulates enqueued column values into the raw-encoded,
// not-yet-compressed byte buffers a StripeAssembler compresses and frames.
package chunkgen

import "github.com/kke-stripe/scs/column"

// Generator accumulates one column's worth of values for the stripe
// currently being built and can hand back its accumulated buffer.
type Generator interface {
	// Append adds v to the generator, assuming v has already been
	// validated against the owning column.
	Append(v column.Value)
	// Bytes returns the raw, encoded-but-not-compressed buffer
	// representing every value appended since the last Reset.
	Bytes() []byte
	// Len returns the number of values appended since the last Reset.
	Len() int
	// Reset discards all accumulated values, readying the generator for
	// the next stripe.
	Reset()
}

// New returns the Generator appropriate for col's datatype.
func New(col column.Column) Generator {
	switch col.Datatype {
	case column.DatatypeByte:
		return newNumeric[int8](int8Min)
	case column.DatatypeInt32:
		return newNumeric[int32](int32Min)
	case column.DatatypeInt64:
		return newNumeric[int64](int64Min)
	case column.DatatypeFloat:
		return newNumericFloat()
	case column.DatatypeFixedLength:
		return newFixedLength(col.Info.ValueSize)
	case column.DatatypeVariableLength:
		return newVariableLength()
	default:
		panic("chunkgen: unknown datatype")
	}
}
