package strand

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// Reader is a forward cursor over a string, built for parser use: it
// tracks a byte position, hands out zero-copy slices for lookahead and
// backtracking, and implements the small stdlib reader interfaces so the
// value plugs into scanning code directly.
//
// A Reader holds its own clone of the source, so the source may be
// released while readers remain live.
type Reader[C any, P counterPtr[C]] struct {
	src      Str[C, P]
	pos      int
	prevRune int // position before the last ReadRune, -1 otherwise
}

// Reader returns a new cursor positioned at the start of the content.
func (s Str[C, P]) Reader() *Reader[C, P] {
	return &Reader[C, P]{src: s.Clone(), prevRune: -1}
}

// Pos returns the current byte position.
func (r *Reader[C, P]) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader[C, P]) Remaining() int {
	return r.src.Len() - r.pos
}

// Rest returns the unread portion as a zero-copy slice of the source.
// The reader does not advance. Rest panics when the current position is
// inside a multi-byte character; see Aligned.
func (r *Reader[C, P]) Rest() Str[C, P] {
	r.mustBeAligned()
	return r.src.SliceUnchecked(r.pos, r.src.Len())
}

// Take consumes the next n bytes and returns them as a zero-copy slice.
// It fails when fewer than n bytes remain or when either end of the cut
// lands inside a multi-byte character.
func (r *Reader[C, P]) Take(n int) (Str[C, P], error) {
	if n < 0 || r.pos+n > r.src.Len() {
		return Str[C, P]{}, sliceErr(ErrOutOfBounds, "take past end of input", r.pos, r.pos+n, r.src.Len())
	}
	if err := validateRange(r.src.String(), r.pos, r.pos+n); err != nil {
		return Str[C, P]{}, err
	}
	out := r.src.SliceUnchecked(r.pos, r.pos+n)
	r.pos += n
	r.prevRune = -1
	return out, nil
}

// TakeWhile consumes the longest run of runes satisfying pred and
// returns it as a zero-copy slice. TakeWhile panics when the current
// position is inside a multi-byte character; see Aligned.
func (r *Reader[C, P]) TakeWhile(pred func(rune) bool) Str[C, P] {
	r.mustBeAligned()
	view := r.src.String()
	end := len(view)
	for i, ch := range view[r.pos:] {
		if !pred(ch) {
			end = r.pos + i
			break
		}
	}
	out := r.src.SliceUnchecked(r.pos, end)
	r.pos = end
	r.prevRune = -1
	return out
}

// Aligned reports whether the current position is on a character
// boundary. Byte-level operations (Read, ReadByte, Seek) can stop inside
// a multi-byte character; the methods that hand out content as a string
// value refuse to run from such a position, so callers mixing byte-level
// and string-level access check Aligned or seek back to a boundary
// first. Rune-oriented consumption never misaligns the reader.
func (r *Reader[C, P]) Aligned() bool {
	return isBoundary(r.src.String(), r.pos)
}

// mustBeAligned panics with a *SliceError when the position is inside a
// multi-byte character, keeping the no-invalid-content guarantee for the
// methods that cannot report an error.
func (r *Reader[C, P]) mustBeAligned() {
	if err := validateOffset(r.src.String(), r.pos); err != nil {
		panic(err)
	}
}

// Expect consumes literal if the unread input starts with it and reports
// whether it did.
func (r *Reader[C, P]) Expect(literal string) bool {
	if !strings.HasPrefix(r.src.String()[r.pos:], literal) {
		return false
	}
	r.pos += len(literal)
	r.prevRune = -1
	return true
}

// Position returns the 1-based line and column of the current byte
// position, counting columns in runes. Computed by scanning the consumed
// prefix; intended for error reporting, not hot paths.
func (r *Reader[C, P]) Position() (line, col int) {
	before := r.src.String()[:r.pos]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}

// Read implements io.Reader.
func (r *Reader[C, P]) Read(p []byte) (int, error) {
	if r.pos >= r.src.Len() {
		return 0, io.EOF
	}
	n := copy(p, r.src.Bytes()[r.pos:])
	r.pos += n
	r.prevRune = -1
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader[C, P]) ReadByte() (byte, error) {
	if r.pos >= r.src.Len() {
		return 0, io.EOF
	}
	b := r.src.Bytes()[r.pos]
	r.pos++
	r.prevRune = -1
	return b, nil
}

// ReadRune implements io.RuneReader.
func (r *Reader[C, P]) ReadRune() (rune, int, error) {
	if r.pos >= r.src.Len() {
		return 0, 0, io.EOF
	}
	ch, size := utf8.DecodeRuneInString(r.src.String()[r.pos:])
	r.prevRune = r.pos
	r.pos += size
	return ch, size, nil
}

// UnreadRune implements io.RuneScanner. It fails unless the previous
// operation on the reader was a successful ReadRune.
func (r *Reader[C, P]) UnreadRune() error {
	if r.prevRune < 0 {
		return errors.New("strand: UnreadRune: previous operation was not ReadRune")
	}
	r.pos = r.prevRune
	r.prevRune = -1
	return nil
}

// Seek implements io.Seeker. Seeking does not check character
// boundaries; a position inside a multi-byte character is legal for Read
// and ReadByte, makes ReadRune return U+FFFD (same as strings.Reader),
// and makes Rest, Take, and TakeWhile refuse to produce content until
// the reader is back on a boundary. See Aligned.
func (r *Reader[C, P]) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.pos) + offset
	case io.SeekEnd:
		abs = int64(r.src.Len()) + offset
	default:
		return 0, errors.New("strand: Seek: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("strand: Seek: negative position")
	}
	if abs > int64(r.src.Len()) {
		abs = int64(r.src.Len())
	}
	r.pos = int(abs)
	r.prevRune = -1
	return abs, nil
}

// Release drops the reader's reference to the source storage.
func (r *Reader[C, P]) Release() {
	r.src.Release()
	r.pos = 0
	r.prevRune = -1
}
