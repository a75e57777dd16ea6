package strand

import (
	"sync"
	"testing"
)

// TestConcurrentClones exercises the atomic variant: goroutines clone,
// slice, compare, and release against one shared storage. Run with -race.
func TestConcurrentClones(t *testing.T) {
	src := New("The quick brown fox jumps over the lazy dog")

	const goroutines = 8
	const iterations = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				c := src.Clone()
				word := c.Slice(4, 9)
				if !word.EqualString("quick") {
					t.Errorf("slice = %q", word.String())
				}
				if word.Hash() != New("quick").Hash() {
					t.Error("hash mismatch")
				}
				word.Release()
				c.Release()
			}
		}()
	}
	wg.Wait()

	if !src.IsUnique() {
		t.Error("all clones released, source should be unique")
	}
	if src.String() != "The quick brown fox jumps over the lazy dog" {
		t.Errorf("source corrupted: %q", src.String())
	}
}

// TestConcurrentMutateOwnClone has each goroutine mutate its own clone.
// Copy-on-write must keep every goroutine's edits private.
func TestConcurrentMutateOwnClone(t *testing.T) {
	src := New("base")

	const goroutines = 8
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			c := src.Clone()
			defer c.Release()
			c.WriteRune(rune('a' + id))
			want := "base" + string(rune('a'+id))
			if c.String() != want {
				t.Errorf("goroutine %d: got %q, want %q", id, c.String(), want)
			}
		}(g)
	}
	wg.Wait()

	if src.String() != "base" {
		t.Errorf("source mutated: %q", src.String())
	}
}

// TestConcurrentReaders runs independent readers over one storage.
func TestConcurrentReaders(t *testing.T) {
	src := New("line one\nline two\nline three\n")

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r := src.Reader()
				if !r.Expect("line one\n") {
					t.Error("Expect failed")
				}
				rest := r.Rest()
				if !rest.HasPrefix("line two") {
					t.Errorf("rest = %q", rest.String())
				}
				r.Release()
			}
		}()
	}
	wg.Wait()
}
