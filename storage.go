package strand

import "sync/atomic"

// shareCounter is the set of operations the storage handle needs from a
// share count. Exactly two implementations exist: atomicCount for values
// that cross goroutines, and localCount for single-goroutine use. The
// choice is made at the type level through the Str type parameters; there
// is no runtime branching between the two.
type shareCounter interface {
	// retain increments the share count.
	retain()
	// release decrements the share count and returns the new value.
	release() int64
	// count returns the current share count.
	count() int64
}

// counterPtr constrains P to be a pointer to a concrete counter C. The
// pointer form lets the counter live inline in the storage allocation
// while its methods mutate it.
type counterPtr[C any] interface {
	*C
	shareCounter
}

// atomicCount is the thread-safe share counter. Instances backed by it may
// be cloned, sliced, and read concurrently from multiple goroutines.
type atomicCount struct {
	n atomic.Int64
}

func (c *atomicCount) retain()        { c.n.Add(1) }
func (c *atomicCount) release() int64 { return c.n.Add(-1) }
func (c *atomicCount) count() int64   { return c.n.Load() }

// localCount is the single-goroutine share counter. Sharing instances
// backed by it across goroutines is a data race, not a checked error.
type localCount struct {
	n int64
}

func (c *localCount) retain()        { c.n++ }
func (c *localCount) release() int64 { c.n--; return c.n }
func (c *localCount) count() int64   { return c.n }

// storage is the shared, reference-counted owner of a UTF-8 byte buffer.
// Invariant: buf is valid UTF-8 for its full length at all times that any
// instance can observe it.
type storage[C any, P counterPtr[C]] struct {
	refs C
	buf  []byte
}

// newStorage takes ownership of buf. The caller guarantees buf is valid
// UTF-8 and not aliased by anything that will mutate it. Share count
// starts at 1.
func newStorage[C any, P counterPtr[C]](buf []byte) *storage[C, P] {
	s := &storage[C, P]{buf: buf}
	s.counter().retain()
	return s
}

func (s *storage[C, P]) counter() P {
	return P(&s.refs)
}

// unique reports whether exactly one instance references this storage.
func (s *storage[C, P]) unique() bool {
	return s.counter().count() == 1
}

// release drops one reference. When the count reaches zero the buffer is
// unpinned so the collector can reclaim it even if the handle itself is
// still reachable.
func (s *storage[C, P]) release() {
	if s.counter().release() == 0 {
		s.buf = nil
	}
}
