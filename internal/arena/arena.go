// Package arena implements the pooled char arena and token list that back
// a parsed CSV row (spec §4.1, §4.2, §4.3). Both types are append-only and
// recycled row-to-row via Clear/Reset rather than being reallocated.
package arena

import "github.com/ooyeku/csvcore/internal/bufpool"

// Arena is an append-only rune buffer. Growth is geometric (Go's slice
// append already doubles capacity on exhaustion), and Clear resets the
// write head to zero without releasing the backing storage. Its backing
// slice is rented from bufpool so repeated Reader construction/teardown
// (e.g. across many short-lived files in a batch job) reuses allocations
// across Arena instances, not just across rows within one.
type Arena struct {
	buf []rune
}

// New returns an Arena with a small initial capacity rented from bufpool.
func New() *Arena {
	return &Arena{buf: bufpool.GetRunes(256)}
}

// Release returns the arena's backing slice to bufpool. Callers must not
// use the Arena again afterward.
func (a *Arena) Release() {
	bufpool.PutRunes(a.buf)
	a.buf = nil
}

// Len returns the number of runes currently held.
func (a *Arena) Len() int { return len(a.buf) }

// Append adds a single rune to the end of the arena.
func (a *Arena) Append(r rune) {
	a.buf = append(a.buf, r)
}

// Clear resets the arena to empty, retaining its backing array.
func (a *Arena) Clear() {
	a.buf = a.buf[:0]
}

// Slice returns a borrowed view into the live buffer. Callers must not
// retain it across a Clear or across a Reset of the owning RowBuffer.
func (a *Arena) Slice(start, length int) []rune {
	return a.buf[start : start+length]
}

// String materializes an owned copy of the given span.
func (a *Arena) String(start, length int) string {
	return string(a.buf[start : start+length])
}

// At returns the rune at position i.
func (a *Arena) At(i int) rune { return a.buf[i] }
