package strand

import (
	"errors"
	"testing"
	"unicode/utf16"
)

func TestFromUTF16(t *testing.T) {
	// "𝄞music": the clef is a surrogate pair.
	units := []uint16{0xD834, 0xDD1E, 0x006D, 0x0075, 0x0073, 0x0069, 0x0063}
	s, err := FromUTF16(units)
	if err != nil {
		t.Fatalf("FromUTF16: %v", err)
	}
	if s.String() != "𝄞music" {
		t.Errorf("got %q", s.String())
	}

	l, err := LocalFromUTF16(units)
	if err != nil {
		t.Fatalf("LocalFromUTF16: %v", err)
	}
	if l.String() != "𝄞music" {
		t.Errorf("got %q", l.String())
	}
}

func TestFromUTF16Invalid(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
	}{
		{"lone high surrogate", []uint16{0xD834}},
		{"high at end", []uint16{0x006D, 0xD834}},
		{"high then non-low", []uint16{0xD834, 0x0061}},
		{"lone low surrogate", []uint16{0xDD1E, 0x006D}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromUTF16(tt.units); !errors.Is(err, ErrInvalidUTF8) {
				t.Errorf("err = %v, want ErrInvalidUTF8", err)
			}
		})
	}
}

func TestFromUTF16Lossy(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"valid passthrough", []uint16{0x0068, 0x0069}, "hi"},
		{"lone high surrogate", []uint16{0xD834, 0x0069, 0x0063}, "�ic"},
		{"lone low surrogate", []uint16{0xDD1E}, "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromUTF16Lossy(tt.units).String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	for _, text := range []string{"", "plain ascii", "héllo", "𝄞music", "日本語 🎉"} {
		s := New(text)
		units := s.UTF16()
		if decoded := string(utf16.Decode(units)); decoded != text {
			t.Errorf("round trip of %q gave %q", text, decoded)
		}
	}
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		name  string
		op    func(String) String
		input string
		want  string
	}{
		{"upper ascii", String.ToUpper, "hello", "HELLO"},
		{"upper accented", String.ToUpper, "héllo", "HÉLLO"},
		{"upper sharp s grows", String.ToUpper, "straße", "STRASSE"},
		{"lower", String.ToLower, "HÉLLO", "héllo"},
		{"title", String.ToTitle, "hello world", "Hello World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			out := tt.op(s)
			if got := out.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if s.String() != tt.input {
				t.Error("case mapping must not modify the source")
			}
			if out.SameStorage(s) {
				t.Error("case mapping allocates fresh storage")
			}
		})
	}
}
