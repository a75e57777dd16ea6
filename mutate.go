package strand

import (
	"slices"
	"unicode/utf8"
)

// owned reports whether an in-place edit is permitted: this value must be
// the sole owner of its storage and its window must span the entire
// buffer. Sole ownership of an over-sized buffer (a slice whose siblings
// have all been released) still copies, keeping logical length and buffer
// length in lockstep.
func (s *Str[C, P]) owned() bool {
	return s.store != nil && s.store.unique() &&
		s.off.Start == 0 && s.off.End == len(s.store.buf)
}

// detach materializes the logical content into fresh storage with room
// for grow extra bytes, releases the old handle, and rebinds the value.
// Sibling instances on the old handle are unaffected.
func (s *Str[C, P]) detach(grow int) {
	content := s.Bytes()
	buf := make([]byte, len(content), len(content)+grow)
	copy(buf, content)
	old := s.store
	s.store = newStorage[C, P](buf)
	s.off = Range{Start: 0, End: len(buf)}
	if old != nil {
		old.release()
	}
}

// edit is the ownership arbiter. It hands f a buffer holding exactly the
// logical content and installs whatever f returns as the new content.
// When owned, f operates on the live buffer; otherwise the content is
// copied first (with room for grow extra bytes) so that no other instance
// can observe the edit. The choice is invisible to callers except through
// performance.
func (s *Str[C, P]) edit(grow int, f func(b []byte) []byte) {
	if !s.owned() {
		s.detach(grow)
	}
	s.store.buf = f(s.store.buf)
	s.off = Range{Start: 0, End: len(s.store.buf)}
}

// WriteString appends text to the end of the string. It implements
// io.StringWriter and never fails.
func (s *Str[C, P]) WriteString(text string) (int, error) {
	s.edit(len(text), func(b []byte) []byte {
		return append(b, text...)
	})
	return len(text), nil
}

// WriteRune appends a single rune. It returns the number of bytes written
// and fails with ErrInvalidUTF8 for values that are not valid runes
// (surrogate halves, out-of-range code points).
func (s *Str[C, P]) WriteRune(r rune) (int, error) {
	if !utf8.ValidRune(r) {
		return 0, ErrInvalidUTF8
	}
	n := utf8.RuneLen(r)
	s.edit(n, func(b []byte) []byte {
		return utf8.AppendRune(b, r)
	})
	return n, nil
}

// WriteByte appends a single ASCII byte. Bytes >= 0x80 are rejected with
// ErrInvalidUTF8: a lone continuation or lead byte would break the UTF-8
// invariant.
func (s *Str[C, P]) WriteByte(c byte) error {
	if c >= utf8.RuneSelf {
		return ErrInvalidUTF8
	}
	s.edit(1, func(b []byte) []byte {
		return append(b, c)
	})
	return nil
}

// Write appends p, which must be a whole valid UTF-8 chunk. Invalid input
// is rejected with ErrInvalidUTF8 before anything is applied; partial
// writes never happen. Implements io.Writer.
func (s *Str[C, P]) Write(p []byte) (int, error) {
	if !validUTF8(p) {
		return 0, ErrInvalidUTF8
	}
	s.edit(len(p), func(b []byte) []byte {
		return append(b, p...)
	})
	return len(p), nil
}

// Append appends the logical content of other to this string. The two
// values may share storage; the edit still lands correctly because the
// source window is read before any reallocation discards it.
func (s *Str[C, P]) Append(other Str[C, P]) {
	src := other.Bytes()
	s.edit(len(src), func(b []byte) []byte {
		return append(b, src...)
	})
}

// TryInsert inserts text at byte offset i of the logical content.
// It fails with a *SliceError when i is out of bounds or not on a
// character boundary.
func (s *Str[C, P]) TryInsert(i int, text string) error {
	if err := validateOffset(s.String(), i); err != nil {
		return err
	}
	s.edit(len(text), func(b []byte) []byte {
		return slices.Insert(b, i, []byte(text)...)
	})
	return nil
}

// Insert is TryInsert, panicking on invalid offsets.
func (s *Str[C, P]) Insert(i int, text string) {
	if err := s.TryInsert(i, text); err != nil {
		panic(err)
	}
}

// TryRemove deletes the byte range [start, end) from the logical content.
func (s *Str[C, P]) TryRemove(start, end int) error {
	if err := validateRange(s.String(), start, end); err != nil {
		return err
	}
	s.edit(0, func(b []byte) []byte {
		return slices.Delete(b, start, end)
	})
	return nil
}

// Remove is TryRemove, panicking on invalid ranges.
func (s *Str[C, P]) Remove(start, end int) {
	if err := s.TryRemove(start, end); err != nil {
		panic(err)
	}
}

// TryReplace replaces the byte range [start, end) with text.
func (s *Str[C, P]) TryReplace(start, end int, text string) error {
	if err := validateRange(s.String(), start, end); err != nil {
		return err
	}
	s.edit(len(text)-(end-start), func(b []byte) []byte {
		return slices.Replace(b, start, end, []byte(text)...)
	})
	return nil
}

// Replace is TryReplace, panicking on invalid ranges.
func (s *Str[C, P]) Replace(start, end int, text string) {
	if err := s.TryReplace(start, end, text); err != nil {
		panic(err)
	}
}

// TryTruncate shortens the string to length bytes. Longer requested
// lengths are a no-op. When this value owns its buffer the buffer is
// truncated too, so the value stays on the in-place path for later
// appends; otherwise only the window narrows and siblings see nothing.
func (s *Str[C, P]) TryTruncate(length int) error {
	if length >= s.Len() {
		return nil
	}
	if err := validateOffset(s.String(), length); err != nil {
		return err
	}
	if s.owned() {
		s.store.buf = s.store.buf[:length]
	}
	s.off.End = s.off.Start + length
	return nil
}

// Truncate is TryTruncate, panicking when length is not on a character
// boundary.
func (s *Str[C, P]) Truncate(length int) {
	if err := s.TryTruncate(length); err != nil {
		panic(err)
	}
}

// Pop removes the last rune and returns it. Returns false on an empty
// string. Like Truncate, this narrows the window; no copy is made even
// when the storage is shared.
func (s *Str[C, P]) Pop() (rune, bool) {
	view := s.String()
	if len(view) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(view)
	if s.owned() {
		s.store.buf = s.store.buf[:len(s.store.buf)-size]
	}
	s.off.End -= size
	return r, true
}

// Clear removes all content. The sole owner of a buffer keeps it (emptied)
// for reuse; a sharing value just drops its window.
func (s *Str[C, P]) Clear() {
	if s.owned() {
		s.store.buf = s.store.buf[:0]
	}
	s.off = Range{}
}

// TrySplitOff splits the string at position: this value keeps bytes
// [0, position) and the returned value holds [position, len). Both share
// the original storage; no bytes are copied.
func (s *Str[C, P]) TrySplitOff(position int) (Str[C, P], error) {
	if err := validateOffset(s.String(), position); err != nil {
		return Str[C, P]{}, err
	}
	abs := s.off.Start + position
	tail := s.shareRange(Range{Start: abs, End: s.off.End})
	s.off.End = abs
	return tail, nil
}

// SplitOff is TrySplitOff, panicking on invalid positions.
func (s *Str[C, P]) SplitOff(position int) Str[C, P] {
	tail, err := s.TrySplitOff(position)
	if err != nil {
		panic(err)
	}
	return tail
}

// Concat returns a new string holding the concatenation of s and other.
// The result always gets fresh storage: the inputs may reference
// unrelated or non-adjacent buffers, and no attempt is made to detect
// adjacent sub-ranges of one handle and merge them zero-copy.
func (s Str[C, P]) Concat(other Str[C, P]) Str[C, P] {
	if s.IsEmpty() && other.IsEmpty() {
		return Str[C, P]{}
	}
	buf := make([]byte, 0, s.Len()+other.Len())
	buf = append(buf, s.Bytes()...)
	buf = append(buf, other.Bytes()...)
	return ownBytes[C, P](buf)
}
