package strand

import (
	"bytes"
	"testing"
)

func TestBytes(t *testing.T) {
	s := New("abcdef")
	sub := s.Slice(2, 4)
	if !bytes.Equal(sub.Bytes(), []byte("cd")) {
		t.Errorf("Bytes() = %q", sub.Bytes())
	}
	// The view is capped at the logical range: appending to it cannot
	// reach sibling bytes.
	if cap(sub.Bytes()) != sub.Len() {
		t.Errorf("cap = %d, want %d", cap(sub.Bytes()), sub.Len())
	}
}

func TestBytesCopy(t *testing.T) {
	s := New("abc")
	c := s.BytesCopy()
	c[0] = 'X'
	if s.String() != "abc" {
		t.Error("BytesCopy must be independent of the storage")
	}
}

func TestStringViewReflectsInPlaceEdit(t *testing.T) {
	s := WithCapacity(16)
	s.WriteString("ab")
	before := s.String()
	s.WriteString("cd")
	if before != "ab" {
		// A previously captured view keeps its own length header even
		// when the append lands in the same array.
		t.Errorf("captured view changed: %q", before)
	}
	if s.String() != "abcd" {
		t.Errorf("got %q", s.String())
	}
}
