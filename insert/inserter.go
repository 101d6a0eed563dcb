package insert

import (
	"fmt"

	"github.com/kke-stripe/scs/chunkgen"
	"github.com/kke-stripe/scs/column"
	"github.com/kke-stripe/scs/encoding"
	"github.com/kke-stripe/scs/stripe"
)

// InvalidNumberOfColumnsError reports that a row passed to EnqueueRow does
// not have one value per storage column.
type InvalidNumberOfColumnsError struct {
	Got, Want int
}

func (e *InvalidNumberOfColumnsError) Error() string {
	return fmt.Sprintf("insert: row has %d values, storage has %d columns", e.Got, e.Want)
}

// Inserter buffers rows and periodically flushes them into its Manager's
// shared Storage as a new stripe. All of an Inserter's state -- its
// generators and its buffered row count -- is exclusively owned and needs
// no synchronization of its own; only the eventual AppendStripe call
// touches anything shared.
type Inserter struct {
	manager      *Manager
	columns      []column.Column
	generators   []chunkgen.Generator
	bufferedRows int
	maxRows      int
	closed       bool
}

func newInserter(m *Manager) *Inserter {
	cols := m.storage.Columns()
	gens := make([]chunkgen.Generator, len(cols))
	for i, c := range cols {
		gens[i] = chunkgen.New(c)
	}
	return &Inserter{
		manager:    m,
		columns:    cols,
		generators: gens,
		maxRows:    m.storage.NumRowsInStripeHint(),
	}
}

// EnqueueRow validates row against the storage's schema and appends it to
// this Inserter's buffer, flushing automatically once the buffer reaches
// the storage's row-per-stripe hint.
func (ins *Inserter) EnqueueRow(row []column.Value) error {
	if len(row) != len(ins.columns) {
		return &InvalidNumberOfColumnsError{Got: len(row), Want: len(ins.columns)}
	}
	for i, v := range row {
		if err := ins.columns[i].Validate(v); err != nil {
			return err
		}
	}
	for i, v := range row {
		ins.generators[i].Append(v)
	}
	ins.bufferedRows++
	if ins.bufferedRows >= ins.maxRows {
		return ins.Flush()
	}
	return nil
}

// Flush hands every buffered row to the shared Storage as one stripe and
// resets this Inserter's generators. It is a no-op when nothing is
// buffered.
func (ins *Inserter) Flush() error {
	if ins.bufferedRows == 0 {
		return nil
	}
	chunks := make([]stripe.Chunk, len(ins.generators))
	for i, g := range ins.generators {
		chunks[i] = stripe.Chunk{Encoding: encoding.Raw, Raw: g.Bytes()}
	}
	if err := ins.manager.storage.AppendStripe(ins.bufferedRows, chunks); err != nil {
		return err
	}
	for _, g := range ins.generators {
		g.Reset()
	}
	ins.bufferedRows = 0
	return nil
}

// Close flushes any buffered rows and releases this Inserter's hold on its
// Manager. Go has no destructors, so callers must defer Close themselves to
// guarantee a final flush.
func (ins *Inserter) Close() error {
	if ins.closed {
		return nil
	}
	ins.closed = true
	err := ins.Flush()
	ins.manager.release()
	return err
}
