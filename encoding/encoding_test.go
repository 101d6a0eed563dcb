package encoding

import (
	"errors"
	"testing"
)

func TestRawRoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	encoded, err := Encode(Raw, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := Decode(Raw, encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(decoded) != string(data) {
		t.Fatalf("expected %v, got %v", data, decoded)
	}
}

func TestRLENotImplemented(t *testing.T) {
	if _, err := Encode(RLE, []byte{1}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if _, err := Decode(RLE, []byte{1}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestDeltaNotImplemented(t *testing.T) {
	if _, err := Encode(Delta, []byte{1}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}
