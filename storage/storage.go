// Package storage owns the on-disk (or in-memory) representation of a
// columnar storage file: its schema, its backend, and the directory of
// stripes appended to it so far.
package storage

import (
	"fmt"
	"sync"

	"github.com/kke-stripe/scs/backend"
	"github.com/kke-stripe/scs/column"
	"github.com/kke-stripe/scs/compress"
	"github.com/kke-stripe/scs/format"
	"github.com/kke-stripe/scs/stripe"
)

// IOError wraps any failure returned by the underlying backend, the way the
// rest of the error taxonomy wraps its own failure modes in a typed value
// callers can errors.As against instead of matching on error strings.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("storage: i/o error: %v", e.Cause)
}

func (e *IOError) Unwrap() error { return e.Cause }

// DirectoryEntry records where one stripe begins and how many rows it
// holds, the bookkeeping Storage needs to answer row-count queries and to
// eventually support random stripe access.
type DirectoryEntry struct {
	AbsoluteOffset int64
	NumRows        int
}

// Storage is the aggregate owning a backend, its schema and the directory
// of stripes written to it. Its exported methods synchronize on the
// Storage's own RWMutex: mutations take the write lock, accessors the read
// lock. The unexported helpers assume the caller already holds the lock.
type Storage struct {
	mu sync.RWMutex

	backend     backend.Backend
	columns     []column.Column
	compression compress.Kind
	assembler   stripe.Assembler

	directory []DirectoryEntry
	numRows   int
	offset    int64
	finished  bool

	maxRowsOverride int
}

// AppendStripe writes one stripe's worth of per-column chunks to the
// backend and records its directory entry, taking the write lock for the
// duration of the call. This is the only point at which two concurrent
// Inserters sharing this Storage can contend with one another; ordering
// between them is whatever order they acquire the lock in.
func (s *Storage) AppendStripe(numRows int, chunks []stripe.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendStripe(numRows, chunks)
}

// NumRowsInStripeHint suggests how many rows an Inserter should buffer
// before flushing a stripe, sized from the schema's widest numeric column.
func (s *Storage) NumRowsInStripeHint() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numRowsInStripeHint()
}

// Columns returns the storage's schema.
func (s *Storage) Columns() []column.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cols := make([]column.Column, len(s.columns))
	copy(cols, s.columns)
	return cols
}

// Column returns the column at position i.
func (s *Storage) Column(i int) (column.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.columns) {
		return column.Column{}, false
	}
	return s.columns[i], true
}

// ColumnByName returns the column with the given name.
func (s *Storage) ColumnByName(name string) (column.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.columns {
		if c.Name == name {
			return c, true
		}
	}
	return column.Column{}, false
}

// NumRows returns the total number of rows across every stripe appended so
// far.
func (s *Storage) NumRows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numRows
}

// Directory returns a copy of the stripe directory built up so far.
func (s *Storage) Directory() []DirectoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DirectoryEntry, len(s.directory))
	copy(out, s.directory)
	return out
}

// numRowsInStripeHint estimates a reasonable row count per stripe from the
// schema's widest numeric column: disk blocks are 4096 bytes, and a stripe
// should span roughly 64 of them. A Builder.WithMaxRowsPerStripe override
// takes precedence over this estimate, the way kokes-smda's
// Config.MaxRowsPerStripe overrides its own computed default.
func (s *Storage) numRowsInStripeHint() int {
	if s.maxRowsOverride > 0 {
		return s.maxRowsOverride
	}
	const diskBlockSize = 4096
	const blocksInStripe = 64
	maxSize := 1
	for _, c := range s.columns {
		if c.Info.IsNumeric && c.Info.ValueSize > maxSize {
			maxSize = c.Info.ValueSize
		}
	}
	return (blocksInStripe * diskBlockSize) / maxSize
}

// appendStripe writes one stripe's worth of per-column chunks to the
// backend and records its directory entry. Callers must hold the write
// lock.
func (s *Storage) appendStripe(numRows int, chunks []stripe.Chunk) error {
	if s.finished {
		return fmt.Errorf("storage: cannot append a stripe after FinishInserting")
	}
	if len(chunks) == 0 {
		return nil
	}
	n, err := s.assembler.AppendStripe(s.backend, uint32(numRows), chunks)
	if err != nil {
		return &IOError{Cause: err}
	}
	s.directory = append(s.directory, DirectoryEntry{AbsoluteOffset: s.offset, NumRows: numRows})
	s.offset += n
	s.numRows += numRows
	return nil
}

// writeFooter repeats the file signature once no more stripes will be
// appended. Callers must hold the write lock.
func (s *Storage) writeFooter() error {
	if s.finished {
		return nil
	}
	if err := format.WriteSignature(s.backend); err != nil {
		return &IOError{Cause: err}
	}
	s.finished = true
	return nil
}

// Close flushes the footer and releases the backend.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeFooter(); err != nil {
		return err
	}
	if err := s.backend.Close(); err != nil {
		return &IOError{Cause: err}
	}
	return nil
}
