// Package compress implements the block compressors referenced by a
// stripe's column chunk headers.
package compress

import (
	"errors"

	"github.com/golang/snappy"
)

// Kind identifies the compression codec applied to an already-encoded
// chunk buffer.
type Kind uint8

const (
	None Kind = iota
	Snappy
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Snappy:
		return "snappy"
	default:
		return "unknown"
	}
}

// Compress returns data compressed under k. None is the identity function,
// the same special case loader.go's writeCompressed gives its "none" codec
// rather than running bytes through a no-op writer.
func Compress(k Kind, data []byte) ([]byte, error) {
	switch k {
	case None:
		return data, nil
	case Snappy:
		return snappy.Encode(nil, data), nil
	default:
		return nil, errUnknownKind
	}
}

// Decompress is the inverse of Compress.
func Decompress(k Kind, data []byte) ([]byte, error) {
	switch k {
	case None:
		return data, nil
	case Snappy:
		return snappy.Decode(nil, data)
	default:
		return nil, errUnknownKind
	}
}

var errUnknownKind = errors.New("compress: unknown kind")
