package strand

import "unicode/utf8"

// isContinuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// isBoundary reports whether off is a valid character boundary within s:
// either at the edges of s, or on the first byte of a UTF-8 encoding.
func isBoundary(s string, off int) bool {
	if off == 0 || off == len(s) {
		return true
	}
	if off < 0 || off > len(s) {
		return false
	}
	return !isContinuation(s[off])
}

// validateRange checks a requested [start, end) slice of the logical
// content s. It returns a *SliceError wrapping ErrOutOfBounds or
// ErrNotBoundary on the first violated condition, checked in the same
// order the offsets read: start bounds, ordering, end bounds, alignment.
func validateRange(s string, start, end int) error {
	if start < 0 || start > len(s) {
		return sliceErr(ErrOutOfBounds, "start offset out of bounds", start, end, len(s))
	}
	if end < start {
		return sliceErr(ErrOutOfBounds, "end offset before start offset", start, end, len(s))
	}
	if end > len(s) {
		return sliceErr(ErrOutOfBounds, "end offset out of bounds", start, end, len(s))
	}
	if !isBoundary(s, start) {
		return sliceErr(ErrNotBoundary, "start offset in multibyte UTF-8 sequence", start, end, len(s))
	}
	if !isBoundary(s, end) {
		return sliceErr(ErrNotBoundary, "end offset in multibyte UTF-8 sequence", start, end, len(s))
	}
	return nil
}

// validateOffset checks a single split point within the logical content s.
func validateOffset(s string, off int) error {
	if off < 0 || off > len(s) {
		return sliceErr(ErrOutOfBounds, "offset out of bounds", off, off, len(s))
	}
	if !isBoundary(s, off) {
		return sliceErr(ErrNotBoundary, "offset in multibyte UTF-8 sequence", off, off, len(s))
	}
	return nil
}

// validUTF8 reports whether b is entirely valid UTF-8.
func validUTF8(b []byte) bool {
	return utf8.Valid(b)
}
