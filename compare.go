package strand

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether two values have the same logical content.
// Storage identity is irrelevant: a slice and a copy with equal bytes
// compare equal.
func (s Str[C, P]) Equal(other Str[C, P]) bool {
	return s.String() == other.String()
}

// EqualString reports whether the logical content equals text.
func (s Str[C, P]) EqualString(text string) bool {
	return s.String() == text
}

// EqualFold reports whether the logical content and text are equal under
// Unicode case folding.
func (s Str[C, P]) EqualFold(text string) bool {
	return strings.EqualFold(s.String(), text)
}

// Compare returns -1, 0, or 1 ordering the logical contents
// lexicographically by bytes, consistent with Equal.
func (s Str[C, P]) Compare(other Str[C, P]) int {
	return strings.Compare(s.String(), other.String())
}

// Less reports whether s orders before other.
func (s Str[C, P]) Less(other Str[C, P]) bool {
	return s.Compare(other) < 0
}

// Hash returns a 64-bit content hash. Values with equal content hash
// equal regardless of how their storage is laid out, so the hash is safe
// to combine with Equal in hash tables.
func (s Str[C, P]) Hash() uint64 {
	return xxhash.Sum64String(s.String())
}

// GoString implements fmt.GoStringer so %#v prints the content quoted.
func (s Str[C, P]) GoString() string {
	return fmt.Sprintf("strand.New(%q)", s.String())
}
