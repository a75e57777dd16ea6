package strand

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// CharIterator iterates over the runes of a string together with their
// byte offsets in the logical content.
//
// All iterators hold their own clone of the source, so mutating the
// source mid-iteration copies instead of editing in place and the
// iterator keeps seeing the original content. Call Release when done to
// give the source back its in-place fast path; skipping it only costs
// performance.
type CharIterator[C any, P counterPtr[C]] struct {
	src Str[C, P]
	pos int
	r   rune
	off int
}

// Chars returns an iterator over the runes of the logical content.
//
//	it := s.Chars()
//	for it.Next() {
//		_ = it.Char()
//	}
func (s Str[C, P]) Chars() *CharIterator[C, P] {
	return &CharIterator[C, P]{src: s.Clone()}
}

// Next advances to the next rune. Returns false when exhausted.
func (it *CharIterator[C, P]) Next() bool {
	view := it.src.String()
	if it.pos >= len(view) {
		return false
	}
	r, size := utf8.DecodeRuneInString(view[it.pos:])
	it.r = r
	it.off = it.pos
	it.pos += size
	return true
}

// Char returns the current rune.
func (it *CharIterator[C, P]) Char() rune {
	return it.r
}

// Offset returns the byte offset of the current rune.
func (it *CharIterator[C, P]) Offset() int {
	return it.off
}

// Release drops the iterator's reference to the source storage.
func (it *CharIterator[C, P]) Release() {
	it.src.Release()
}

// LineIterator iterates over the lines of a string, yielding zero-copy
// instances sharing the source's storage.
type LineIterator[C any, P counterPtr[C]] struct {
	src  Str[C, P]
	pos  int
	line Str[C, P]
}

// Lines returns an iterator over lines. Lines are split at "\n" or
// "\r\n"; terminators are not included, and a trailing terminator does
// not produce an extra empty line.
func (s Str[C, P]) Lines() *LineIterator[C, P] {
	return &LineIterator[C, P]{src: s.Clone()}
}

// Next advances to the next line. Returns false when exhausted.
func (it *LineIterator[C, P]) Next() bool {
	if it.pos >= it.src.Len() {
		return false
	}
	view := it.src.String()
	start := it.pos
	end := len(view)
	if i := strings.IndexByte(view[it.pos:], '\n'); i >= 0 {
		end = it.pos + i
		it.pos = end + 1
		if end > start && view[end-1] == '\r' {
			end--
		}
	} else {
		it.pos = len(view)
	}
	it.line = it.src.SliceUnchecked(start, end)
	return true
}

// Line returns the current line as a zero-copy slice of the source.
func (it *LineIterator[C, P]) Line() Str[C, P] {
	return it.line
}

// Release drops the iterator's reference to the source storage.
func (it *LineIterator[C, P]) Release() {
	it.src.Release()
}

// GraphemeIterator iterates over grapheme clusters (user-perceived
// characters), yielding zero-copy instances.
type GraphemeIterator[C any, P counterPtr[C]] struct {
	src Str[C, P]
	g   *uniseg.Graphemes
}

// Graphemes returns an iterator over the grapheme clusters of the
// logical content, segmented per Unicode UAX #29.
func (s Str[C, P]) Graphemes() *GraphemeIterator[C, P] {
	src := s.Clone()
	return &GraphemeIterator[C, P]{src: src, g: uniseg.NewGraphemes(src.String())}
}

// Next advances to the next grapheme cluster. Returns false when
// exhausted.
func (it *GraphemeIterator[C, P]) Next() bool {
	return it.g.Next()
}

// Grapheme returns the current cluster as a zero-copy slice of the
// source. Cluster boundaries are always character boundaries, so no
// validation is needed.
func (it *GraphemeIterator[C, P]) Grapheme() Str[C, P] {
	from, to := it.g.Positions()
	return it.src.SliceUnchecked(from, to)
}

// Runes returns the runes of the current cluster.
func (it *GraphemeIterator[C, P]) Runes() []rune {
	return it.g.Runes()
}

// Release drops the iterator's reference to the source storage.
func (it *GraphemeIterator[C, P]) Release() {
	it.src.Release()
}

// GraphemeCount returns the number of grapheme clusters in the logical
// content.
func (s Str[C, P]) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(s.String())
}

// Width returns the monospace display width of the logical content in
// cells.
func (s Str[C, P]) Width() int {
	return uniseg.StringWidth(s.String())
}
