package strand

import "unsafe"

// String returns the logical content as a string without copying: the
// result shares the backing array of the storage buffer.
//
// The view is stable for as long as the value is shared or left alone. It
// is invalidated by the next mutating method called on this same value
// while it is the sole owner of its storage, the one case where edits
// happen in place (the bytes.Buffer.Bytes contract).
func (s Str[C, P]) String() string {
	if s.store == nil || s.off.IsEmpty() {
		return ""
	}
	b := s.store.buf[s.off.Start:s.off.End]
	return unsafe.String(&b[0], len(b))
}

// Bytes returns the logical content as a byte slice sharing the backing
// array. The slice must not be modified: it aliases storage that other
// clones may be reading. Validity follows the same rule as String.
func (s Str[C, P]) Bytes() []byte {
	if s.store == nil {
		return nil
	}
	return s.store.buf[s.off.Start:s.off.End:s.off.End]
}

// BytesCopy returns a freshly allocated copy of the logical content,
// owned by the caller.
func (s Str[C, P]) BytesCopy() []byte {
	b := make([]byte, s.off.Len())
	copy(b, s.Bytes())
	return b
}

// viewRange locates inner within outer by pointer arithmetic, returning
// the byte range of inner relative to outer's start. Returns false when
// inner does not alias outer's backing array. An empty inner never
// matches: it carries no base pointer to compare.
func viewRange(outer, inner string) (Range, bool) {
	if len(inner) == 0 || len(outer) == 0 {
		return Range{}, false
	}
	op := uintptr(unsafe.Pointer(unsafe.StringData(outer)))
	ip := uintptr(unsafe.Pointer(unsafe.StringData(inner)))
	if ip < op || ip+uintptr(len(inner)) > op+uintptr(len(outer)) {
		return Range{}, false
	}
	start := int(ip - op)
	return Range{Start: start, End: start + len(inner)}, true
}

// TryStrRef promotes a string that aliases this value's content (for
// example, the result of a strings package call on String()) back into a
// zero-copy instance sharing the same storage. Returns false when sub is
// not a view into this value.
func (s Str[C, P]) TryStrRef(sub string) (Str[C, P], bool) {
	if len(sub) == 0 {
		return Str[C, P]{}, true
	}
	r, ok := viewRange(s.String(), sub)
	if !ok {
		return Str[C, P]{}, false
	}
	return s.shareRange(s.off.narrow(r)), true
}

// StrRef is TryStrRef with a copying fallback: when sub does not alias
// this value's storage, a new instance owning a copy of sub is returned.
func (s Str[C, P]) StrRef(sub string) Str[C, P] {
	if ref, ok := s.TryStrRef(sub); ok {
		return ref
	}
	return ownString[C, P](sub)
}

// shareRange returns a new instance over the given absolute storage
// range, retaining the storage. The caller guarantees the range is valid.
func (s Str[C, P]) shareRange(abs Range) Str[C, P] {
	if s.store == nil {
		return Str[C, P]{}
	}
	s.store.counter().retain()
	return Str[C, P]{store: s.store, off: abs}
}
