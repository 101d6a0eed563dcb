package storage

import (
	"github.com/kke-stripe/scs/backend"
	"github.com/kke-stripe/scs/column"
	"github.com/kke-stripe/scs/compress"
	"github.com/kke-stripe/scs/format"
	"github.com/kke-stripe/scs/stripe"
)

// columnSpec is a column awaiting validation, collected by Builder.Column
// before the schema as a whole is checked for duplicate names.
type columnSpec struct {
	name     string
	datatype column.Datatype
	width    int
}

// Builder constructs a Storage, validating its schema and its backing path
// before a single byte is written.
type Builder struct {
	specs            []columnSpec
	compression      compress.Kind
	maxRowsPerStripe int
}

// NewBuilder returns an empty Builder. Compression defaults to None; call
// WithCompression to enable Snappy.
func NewBuilder() *Builder {
	return &Builder{compression: compress.None}
}

// Column registers a column with the given name and datatype. width is only
// consulted for DatatypeFixedLength.
func (b *Builder) Column(name string, dt column.Datatype, width int) *Builder {
	b.specs = append(b.specs, columnSpec{name: name, datatype: dt, width: width})
	return b
}

// WithCompression selects the compression codec applied to every stripe
// this storage appends.
func (b *Builder) WithCompression(k compress.Kind) *Builder {
	b.compression = k
	return b
}

// WithMaxRowsPerStripe overrides the computed row-per-stripe hint with an
// exact value, the way kokes-smda's Config.MaxRowsPerStripe overrides its
// own computed default when set to a nonzero value.
func (b *Builder) WithMaxRowsPerStripe(n int) *Builder {
	b.maxRowsPerStripe = n
	return b
}

func (b *Builder) buildColumns() ([]column.Column, error) {
	cols := make([]column.Column, len(b.specs))
	for i, spec := range b.specs {
		info, err := column.Info(spec.datatype, spec.width)
		if err != nil {
			return nil, err
		}
		cols[i] = column.Column{Name: spec.name, Datatype: spec.datatype, Info: info}
	}
	return column.Columns(cols)
}

// build validates the schema and writes the leading signature into an
// already-opened backend, shared by At and InMemory.
func (b *Builder) build(bk backend.Backend) (*Storage, error) {
	cols, err := b.buildColumns()
	if err != nil {
		return nil, err
	}
	if err := format.WriteSignature(bk); err != nil {
		return nil, &IOError{Cause: err}
	}
	return &Storage{
		backend:         bk,
		columns:         cols,
		compression:     b.compression,
		assembler:       stripe.Assembler{Compression: b.compression},
		offset:          int64(format.SignatureSize),
		maxRowsOverride: b.maxRowsPerStripe,
	}, nil
}

// At creates a new storage file at path and writes its leading signature.
// The schema is validated before the file is even opened, so an invalid
// schema never leaves a truncated file behind.
func (b *Builder) At(path string) (*Storage, error) {
	if _, err := b.buildColumns(); err != nil {
		return nil, err
	}
	bk, err := backend.OpenFile(path)
	if err != nil {
		return nil, err
	}
	s, err := b.build(bk)
	if err != nil {
		bk.Close()
		return nil, err
	}
	return s, nil
}

// InMemory creates a new storage backed by an in-memory buffer.
func (b *Builder) InMemory() (*Storage, error) {
	return b.build(backend.NewMemory())
}
