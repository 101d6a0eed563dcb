// Package insert implements the concurrent insertion protocol: a Manager
// shares a Storage among any number of Inserters, each buffering and
// flushing its own rows, synchronized only at the moment a stripe is
// actually appended.
package insert

import (
	"fmt"
	"sync/atomic"

	"github.com/kke-stripe/scs/storage"
)

// Manager grants Inserters shared access to a Storage. It tracks how many
// Inserters are currently live so FinishInserting can refuse to hand the
// Storage back while rows might still be buffered somewhere.
type Manager struct {
	storage *storage.Storage
	live    int32
}

// NewManager begins an insertion session against s.
func NewManager(s *storage.Storage) *Manager {
	return &Manager{storage: s}
}

// CreateInserter returns a new Inserter sharing this Manager's Storage. Each
// Inserter owns its own row buffer and chunk generators; no synchronization
// is needed between CreateInserter calls themselves.
func (m *Manager) CreateInserter() *Inserter {
	atomic.AddInt32(&m.live, 1)
	return newInserter(m)
}

// FinishInserting reclaims exclusive ownership of the Storage. It panics if
// any Inserter created by this Manager has not yet been closed -- a
// programmer error, since a live Inserter may still hold buffered rows that
// were never flushed.
func (m *Manager) FinishInserting() (*storage.Storage, error) {
	if n := atomic.LoadInt32(&m.live); n != 0 {
		panic(fmt.Sprintf("insert: FinishInserting called with %d live inserter(s)", n))
	}
	if err := m.storage.Close(); err != nil {
		return nil, err
	}
	return m.storage, nil
}

func (m *Manager) release() {
	atomic.AddInt32(&m.live, -1)
}
