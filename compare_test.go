package strand

import (
	"fmt"
	"testing"
)

func TestEqual(t *testing.T) {
	a := New("Hello, World")
	b := New("Hello, World")
	if !a.Equal(b) {
		t.Error("equal content, distinct storage must compare equal")
	}

	// A slice compares equal to an independent copy of the same text.
	world := a.Slice(7, 12)
	if !world.Equal(New("World")) {
		t.Error("slice must compare by content, not storage")
	}
	if !world.EqualString("World") {
		t.Error("EqualString")
	}
	if a.Equal(New("hello, world")) {
		t.Error("comparison is case sensitive")
	}
	if !a.EqualFold("HELLO, WORLD") {
		t.Error("EqualFold ignores case")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"same", "same", 0},
		{"ab", "abc", -1},
		{"", "a", -1},
	}

	for _, tt := range tests {
		a, b := New(tt.a), New(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := a.Less(b); got != (tt.want < 0) {
			t.Errorf("Less(%q, %q) = %v", tt.a, tt.b, got)
		}
	}
}

func TestHash(t *testing.T) {
	a := New("Hello, World")
	sliced := a.Slice(0, a.Len())
	copied := New("Hello, World")
	if a.Hash() != sliced.Hash() || a.Hash() != copied.Hash() {
		t.Error("equal content must hash equal regardless of storage")
	}
	if a.Hash() == New("Hello, world").Hash() {
		t.Error("distinct content should hash differently")
	}
}

func TestGoString(t *testing.T) {
	s := New("hi\n")
	if got := fmt.Sprintf("%#v", s); got != `strand.New("hi\n")` {
		t.Errorf("got %s", got)
	}
}
