package binio

import (
	"errors"
	"testing"

	"github.com/simonhull/id3meta/internal/types"
)

func TestReader_Take(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})

	b, err := r.Take(3, "prefix")
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if len(b) != 3 || b[0] != 1 || b[2] != 3 {
		t.Errorf("Take returned % x, want 01 02 03", b)
	}
	if r.Offset() != 3 {
		t.Errorf("Offset = %d, want 3", r.Offset())
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestReader_TakeOutOfBounds(t *testing.T) {
	r := NewReader([]byte{1, 2})

	_, err := r.Take(3, "too much")
	if err == nil {
		t.Fatal("expected error for out-of-bounds take")
	}
	var corrupt *types.CorruptFrameError
	if !errors.As(err, &corrupt) {
		t.Errorf("expected CorruptFrameError, got %T", err)
	}

	// The failed take must not consume anything.
	if r.Len() != 2 {
		t.Errorf("Len after failed take = %d, want 2", r.Len())
	}
}

func TestReader_TakeNegative(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})

	_, err := r.Take(-1, "negative")
	if err == nil {
		t.Fatal("expected error for negative take")
	}
	var corrupt *types.CorruptFrameError
	if !errors.As(err, &corrupt) {
		t.Errorf("expected CorruptFrameError, got %T", err)
	}
}

func TestRead(t *testing.T) {
	r := NewReader([]byte{0x12, 0x01, 0x02, 0x00, 0x00, 0x02, 0x01})

	b8, err := Read[uint8](r, "byte")
	if err != nil || b8 != 0x12 {
		t.Errorf("Read[uint8] = %d, %v; want 0x12", b8, err)
	}

	b16, err := Read[uint16](r, "word")
	if err != nil || b16 != 0x0102 {
		t.Errorf("Read[uint16] = %d, %v; want 0x0102", b16, err)
	}

	b32, err := Read[uint32](r, "dword")
	if err != nil || b32 != 513 {
		t.Errorf("Read[uint32] = %d, %v; want 513", b32, err)
	}

	if _, err := Read[uint8](r, "past end"); err == nil {
		t.Error("expected error reading past end")
	}
}

func TestReader_Skip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})

	if err := r.Skip(2, "padding"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if rest := r.Rest(); len(rest) != 2 || rest[0] != 3 {
		t.Errorf("Rest = % x, want 03 04", rest)
	}
}
