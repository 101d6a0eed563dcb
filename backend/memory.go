package backend

import (
	"errors"
	"io"
)

// Memory is a Backend backed by a growable in-memory buffer, used for tests
// and ephemeral storages that never need to persist to disk.
type Memory struct {
	buf    []byte
	cursor int64
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

func (b *Memory) Read(p []byte) (int, error) {
	if b.cursor >= int64(len(b.buf)) {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.cursor:])
	b.cursor += int64(n)
	return n, nil
}

func (b *Memory) Write(p []byte) (int, error) {
	end := b.cursor + int64(len(p))
	if end > int64(len(b.buf)) {
		grown := make([]byte, end)
		copy(grown, b.buf)
		b.buf = grown
	}
	n := copy(b.buf[b.cursor:end], p)
	b.cursor = end
	return n, nil
}

func (b *Memory) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.cursor + offset
	case io.SeekEnd:
		abs = int64(len(b.buf)) + offset
	default:
		return 0, errors.New("backend: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("backend: negative position")
	}
	b.cursor = abs
	return abs, nil
}

func (b *Memory) Close() error { return nil }

// Bytes returns the backend's current contents.
func (b *Memory) Bytes() []byte { return b.buf }
