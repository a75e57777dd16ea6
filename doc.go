// Package strand provides a cheaply cloneable and sliceable UTF-8 string type.
//
// A strand string is backed by reference-counted shared storage plus a byte
// range into it. Cloning and slicing create new views over the same buffer
// without copying text, which makes the type a good fit for code that cuts a
// large input into many substrings, such as parsers. Mutation goes through a
// copy-on-write decision: when a value is the sole owner of its whole buffer
// the edit happens in place, otherwise the content is copied to fresh storage
// first and every other view is left untouched.
//
// Two interchangeable variants exist, chosen at the type level:
//
//   - String counts shares atomically and is safe to clone, slice, and read
//     from multiple goroutines concurrently.
//   - LocalString uses a plain counter; it is cheaper but must stay on a
//     single goroutine.
//
// Basic usage:
//
//	s := strand.New("Hello, World")
//	s.WriteString("!")             // in place: sole owner
//	c := s.Clone()                 // no copy, share count +1
//	hello := c.Slice(0, 5)         // "Hello", no copy
//	c.WriteString("?")             // copies: storage is shared
//
// Every operation preserves the invariant that content is valid UTF-8:
// construction validates its input, slice endpoints must fall on character
// boundaries, and the Try* forms report violations as errors where their
// counterparts panic. Explicitly named Unchecked entry points skip the
// checks; their preconditions are caller-guaranteed.
//
// Because Go has no destructors, the share count is maintained by explicit
// Clone and Release calls. The count only steers the copy-on-write fast
// path: a missing Release can never corrupt data, and buffers are reclaimed
// by the garbage collector either way.
package strand
