package strand

import (
	"testing"
)

func TestChars(t *testing.T) {
	s := New("a界🌍")
	it := s.Chars()
	defer it.Release()

	type step struct {
		r   rune
		off int
	}
	want := []step{{'a', 0}, {'界', 1}, {'🌍', 4}}
	var got []step
	for it.Next() {
		got = append(got, step{it.Char(), it.Offset()})
	}
	if len(got) != len(want) {
		t.Fatalf("got %d runes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCharsSurvivesSourceMutation(t *testing.T) {
	s := New("abc")
	it := s.Chars()
	defer it.Release()

	it.Next()
	s.Remove(0, 2) // the iterator's clone forces a copy here
	var rest []rune
	for it.Next() {
		rest = append(rest, it.Char())
	}
	if string(rest) != "bc" {
		t.Errorf("iterator saw %q, want original tail %q", string(rest), "bc")
	}
	if s.String() != "c" {
		t.Errorf("source = %q", s.String())
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line", "hello", []string{"hello"}},
		{"trailing newline", "a\n", []string{"a"}},
		{"only newline", "\n", []string{""}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank between", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			it := s.Lines()
			defer it.Release()

			var got []string
			for it.Next() {
				line := it.Line()
				got = append(got, line.String())
				if !line.IsEmpty() && !line.SameStorage(s) {
					t.Error("lines must share the source storage")
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGraphemes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"ascii", "ab", []string{"a", "b"}},
		{"combining mark", "éx", []string{"é", "x"}},
		{"flag", "🇩🇪!", []string{"🇩🇪", "!"}},
		{"zwj family", "👨‍👩‍👧", []string{"👨‍👩‍👧"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			it := s.Graphemes()
			defer it.Release()

			var got []string
			for it.Next() {
				g := it.Grapheme()
				got = append(got, g.String())
				if !g.SameStorage(s) {
					t.Error("clusters must share the source storage")
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d clusters %q, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("cluster %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
			if n := s.GraphemeCount(); n != len(tt.want) {
				t.Errorf("GraphemeCount() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"abc", 3},
		{"日本", 4},
		{"", 0},
	}
	for _, tt := range tests {
		if got := New(tt.input).Width(); got != tt.want {
			t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
