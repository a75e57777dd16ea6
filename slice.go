package strand

import (
	"strings"
	"unicode"
)

// TrySlice returns a new value viewing the byte range [start, end) of the
// logical content. The underlying storage is shared, never copied; only
// the share count changes. Fails with a *SliceError when the range is out
// of bounds or either endpoint is not on a character boundary.
func (s Str[C, P]) TrySlice(start, end int) (Str[C, P], error) {
	if err := validateRange(s.String(), start, end); err != nil {
		return Str[C, P]{}, err
	}
	return s.SliceUnchecked(start, end), nil
}

// Slice is TrySlice, panicking on invalid ranges.
func (s Str[C, P]) Slice(start, end int) Str[C, P] {
	sub, err := s.TrySlice(start, end)
	if err != nil {
		panic(err)
	}
	return sub
}

// SliceUnchecked slices without validating the range.
//
// The caller guarantees 0 <= start <= end <= Len() and that both offsets
// are character boundaries. Violating that yields a value whose content is
// not valid UTF-8, which poisons every subsequent text operation. Prefer
// TrySlice or Slice.
func (s Str[C, P]) SliceUnchecked(start, end int) Str[C, P] {
	if s.store == nil {
		return Str[C, P]{}
	}
	return s.shareRange(s.off.narrow(Range{Start: start, End: end}))
}

// TrySplitAt returns the two halves [0, position) and [position, len)
// without modifying s. Both halves share s's storage.
func (s Str[C, P]) TrySplitAt(position int) (Str[C, P], Str[C, P], error) {
	if err := validateOffset(s.String(), position); err != nil {
		return Str[C, P]{}, Str[C, P]{}, err
	}
	return s.SliceUnchecked(0, position), s.SliceUnchecked(position, s.Len()), nil
}

// SplitAt is TrySplitAt, panicking on invalid positions.
func (s Str[C, P]) SplitAt(position int) (Str[C, P], Str[C, P]) {
	head, tail, err := s.TrySplitAt(position)
	if err != nil {
		panic(err)
	}
	return head, tail
}

// TakeWhile returns the longest prefix whose runes all satisfy pred,
// sharing storage with s.
func (s Str[C, P]) TakeWhile(pred func(rune) bool) Str[C, P] {
	view := s.String()
	end := len(view)
	for i, r := range view {
		if !pred(r) {
			end = i
			break
		}
	}
	return s.SliceUnchecked(0, end)
}

// Trim returns a slice of s with leading and trailing Unicode whitespace
// removed. No bytes are copied.
func (s Str[C, P]) Trim() Str[C, P] {
	return s.StrRef(strings.TrimSpace(s.String()))
}

// TrimStart returns a slice of s with leading whitespace removed.
func (s Str[C, P]) TrimStart() Str[C, P] {
	return s.StrRef(strings.TrimLeftFunc(s.String(), unicode.IsSpace))
}

// TrimEnd returns a slice of s with trailing whitespace removed.
func (s Str[C, P]) TrimEnd() Str[C, P] {
	return s.StrRef(strings.TrimRightFunc(s.String(), unicode.IsSpace))
}

// TrimPrefix returns s without the given prefix; s unchanged if absent.
func (s Str[C, P]) TrimPrefix(prefix string) Str[C, P] {
	return s.StrRef(strings.TrimPrefix(s.String(), prefix))
}

// TrimSuffix returns s without the given suffix; s unchanged if absent.
func (s Str[C, P]) TrimSuffix(suffix string) Str[C, P] {
	return s.StrRef(strings.TrimSuffix(s.String(), suffix))
}

// HasPrefix reports whether the logical content begins with prefix.
func (s Str[C, P]) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.String(), prefix)
}

// HasSuffix reports whether the logical content ends with suffix.
func (s Str[C, P]) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.String(), suffix)
}

// Contains reports whether substr occurs in the logical content.
func (s Str[C, P]) Contains(substr string) bool {
	return strings.Contains(s.String(), substr)
}

// Index returns the byte offset of the first occurrence of substr, or -1.
func (s Str[C, P]) Index(substr string) int {
	return strings.Index(s.String(), substr)
}

// Split slices s around each instance of sep, returning zero-copy pieces
// that share s's storage. Sep semantics follow strings.Split.
func (s Str[C, P]) Split(sep string) []Str[C, P] {
	pieces := strings.Split(s.String(), sep)
	out := make([]Str[C, P], len(pieces))
	for i, p := range pieces {
		out[i] = s.StrRef(p)
	}
	return out
}

// Fields splits s around runs of whitespace, returning zero-copy pieces.
func (s Str[C, P]) Fields() []Str[C, P] {
	fields := strings.Fields(s.String())
	out := make([]Str[C, P], len(fields))
	for i, f := range fields {
		out[i] = s.StrRef(f)
	}
	return out
}
