package strand

import "unicode/utf8"

// Str is a cheaply cloneable and sliceable UTF-8 string value. It holds a
// reference to shared, counted storage plus the byte range it can see, so
// clones and sub-slices never copy text data. Mutation goes through a
// copy-on-write decision: in place when this value is the sole owner of
// the whole buffer, onto fresh storage otherwise.
//
// The type parameters select the share-counter variant; use the String and
// LocalString aliases rather than instantiating Str directly.
type Str[C any, P counterPtr[C]] struct {
	store *storage[C, P]
	off   Range
}

// String is a copy-on-write string safe for concurrent use. Clones may be
// read, sliced, and iterated from multiple goroutines without coordination;
// the share count uses atomic operations.
type String = Str[atomicCount, *atomicCount]

// LocalString is the single-goroutine variant of String. Its share count
// is a plain integer, which makes clone and release cheaper, but sharing
// values across goroutines is a data race.
type LocalString = Str[localCount, *localCount]

// ownString wraps an owned string in fresh storage with range [0, len).
func ownString[C any, P counterPtr[C]](text string) Str[C, P] {
	if len(text) == 0 {
		return Str[C, P]{}
	}
	return ownBytes[C, P]([]byte(text))
}

// ownBytes takes ownership of buf; the caller guarantees valid UTF-8.
func ownBytes[C any, P counterPtr[C]](buf []byte) Str[C, P] {
	return Str[C, P]{
		store: newStorage[C, P](buf),
		off:   Range{Start: 0, End: len(buf)},
	}
}

// New creates a String from text. The text is copied once into owned
// storage; all subsequent clones and slices share it.
func New(text string) String {
	return ownString[atomicCount](text)
}

// NewLocal creates a LocalString from text.
func NewLocal(text string) LocalString {
	return ownString[localCount](text)
}

// WithCapacity creates an empty String whose storage has room for at least
// n bytes before append operations reallocate.
func WithCapacity(n int) String {
	return withCapacity[atomicCount, *atomicCount](n)
}

// LocalWithCapacity creates an empty LocalString with room for n bytes.
func LocalWithCapacity(n int) LocalString {
	return withCapacity[localCount, *localCount](n)
}

func withCapacity[C any, P counterPtr[C]](n int) Str[C, P] {
	return Str[C, P]{
		store: newStorage[C, P](make([]byte, 0, n)),
		off:   Range{},
	}
}

// FromBytes creates a String from b, validating that it is UTF-8.
// The bytes are copied; b remains owned by the caller.
func FromBytes(b []byte) (String, error) {
	return fromBytes[atomicCount, *atomicCount](b)
}

// LocalFromBytes is the LocalString form of FromBytes.
func LocalFromBytes(b []byte) (LocalString, error) {
	return fromBytes[localCount, *localCount](b)
}

func fromBytes[C any, P counterPtr[C]](b []byte) (Str[C, P], error) {
	if !validUTF8(b) {
		return Str[C, P]{}, ErrInvalidUTF8
	}
	if len(b) == 0 {
		return Str[C, P]{}, nil
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return ownBytes[C, P](buf), nil
}

// FromBytesUnchecked creates a String from b without validating it.
//
// The caller guarantees b is valid UTF-8. Violating that precondition
// poisons every subsequent text operation on the result and anything
// sliced from it; there is no recovery path. Use FromBytes unless the
// bytes are provably valid.
func FromBytesUnchecked(b []byte) String {
	return fromBytesUnchecked[atomicCount, *atomicCount](b)
}

// LocalFromBytesUnchecked is the LocalString form of FromBytesUnchecked.
func LocalFromBytesUnchecked(b []byte) LocalString {
	return fromBytesUnchecked[localCount, *localCount](b)
}

func fromBytesUnchecked[C any, P counterPtr[C]](b []byte) Str[C, P] {
	if len(b) == 0 {
		return Str[C, P]{}
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return ownBytes[C, P](buf)
}

// FromRunes creates a String from a slice of runes.
func FromRunes(rs []rune) String {
	return ownString[atomicCount](string(rs))
}

// Len returns the length of the logical content in bytes, not runes or
// graphemes.
func (s Str[C, P]) Len() int {
	return s.off.Len()
}

// IsEmpty returns true if the logical content has zero length.
func (s Str[C, P]) IsEmpty() bool {
	return s.off.IsEmpty()
}

// Capacity returns the capacity of the backing buffer in bytes.
func (s Str[C, P]) Capacity() int {
	if s.store == nil {
		return 0
	}
	return cap(s.store.buf)
}

// RuneCount returns the number of runes in the logical content.
func (s Str[C, P]) RuneCount() int {
	return utf8.RuneCountInString(s.String())
}

// Clone returns a new value sharing this one's storage. It increments the
// share count and copies the range; buffer bytes are never touched.
func (s Str[C, P]) Clone() Str[C, P] {
	if s.store != nil {
		s.store.counter().retain()
	}
	return s
}

// Release drops this value's reference to its storage and resets it to the
// empty string. When the last reference is released the buffer becomes
// collectable.
//
// Release exists because Go has no destructors: the share count that
// drives the copy-on-write decision is maintained by Clone/Release pairs.
// Forgetting to Release never corrupts data; it only makes a later
// mutation copy where it could have edited in place.
func (s *Str[C, P]) Release() {
	if s.store == nil {
		return
	}
	s.store.release()
	s.store = nil
	s.off = Range{}
}

// IsUnique reports whether this value is the sole owner of its storage.
// The empty zero value owns no storage and reports true.
func (s Str[C, P]) IsUnique() bool {
	return s.store == nil || s.store.unique()
}

// SameStorage reports whether two values share the same underlying
// allocation. It is a diagnostic: content equality is Equal, and no
// correctness decision beyond uniqueness depends on identity.
func (s Str[C, P]) SameStorage(other Str[C, P]) bool {
	return s.store != nil && s.store == other.store
}

// Offset returns the byte offset of sub within s, or -1 when sub does not
// share s's storage or lies outside s's window. Useful for recovering
// positions from slices handed to parsing code.
func (s Str[C, P]) Offset(sub Str[C, P]) int {
	if !s.SameStorage(sub) || !s.off.ContainsRange(sub.off) {
		return -1
	}
	return sub.off.Start - s.off.Start
}

// refCount returns the current share count, for tests and diagnostics.
func (s Str[C, P]) refCount() int64 {
	if s.store == nil {
		return 0
	}
	return s.store.counter().count()
}
