package arena

// TrimPolicy mirrors csvcore.Trim without importing the root package
// (which imports arena), so this stays leaf-level per spec §4.1.
type TrimPolicy int

const (
	TrimNone TrimPolicy = iota
	TrimStart
	TrimEnd
	TrimBoth
)

// RowBuffer composes an Arena, a TokenList, and the write position of the
// field currently being accumulated (spec §4.3).
type RowBuffer struct {
	Chars  *Arena
	Tokens *TokenList

	currentFieldStart int
}

// NewRowBuffer returns a ready-to-use, empty RowBuffer.
func NewRowBuffer() *RowBuffer {
	return &RowBuffer{Chars: New(), Tokens: NewTokenList()}
}

// Reset clears the arena and token list and rewinds the current field to
// position zero, ready for the next row.
func (b *RowBuffer) Reset() {
	b.Chars.Clear()
	b.Tokens.Clear()
	b.currentFieldStart = 0
}

// Release returns the arena's backing slice to bufpool. Call this when a
// Reader is done with the buffer for good, not between rows.
func (b *RowBuffer) Release() {
	b.Chars.Release()
}

// Append forwards a rune to the backing arena.
func (b *RowBuffer) Append(r rune) {
	b.Chars.Append(r)
}

// CurrentFieldLen reports how many runes have been appended to the field
// in progress.
func (b *RowBuffer) CurrentFieldLen() int {
	return b.Chars.Len() - b.currentFieldStart
}

// CurrentFieldRaw returns the (not yet completed) field's content so far,
// used to populate BadDataContext.RawField on parse faults.
func (b *RowBuffer) CurrentFieldRaw() string {
	return b.Chars.String(b.currentFieldStart, b.CurrentFieldLen())
}

// CompleteField determines the effective (start, length) window for the
// field currently in progress by shrinking it according to trim — an
// offset adjustment only, never a copy — pushes the resulting token, and
// advances currentFieldStart past it.
func (b *RowBuffer) CompleteField(wasQuoted bool, trim TrimPolicy) {
	start := b.currentFieldStart
	length := b.Chars.Len() - start

	if trim == TrimStart || trim == TrimBoth {
		for length > 0 && isTrimmableSpace(b.Chars.At(start)) {
			start++
			length--
		}
	}
	if trim == TrimEnd || trim == TrimBoth {
		for length > 0 && isTrimmableSpace(b.Chars.At(start+length-1)) {
			length--
		}
	}

	b.Tokens.Append(FieldToken{Start: start, Length: length, WasQuoted: wasQuoted})
	b.currentFieldStart = b.Chars.Len()
}

func isTrimmableSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// IsBlankLine reports whether the row so far is exactly one zero-length,
// unquoted field — the spec's definition of a blank line.
func (b *RowBuffer) IsBlankLine() bool {
	if b.Tokens.Len() != 1 {
		return false
	}
	tok := b.Tokens.At(0)
	return tok.Length == 0 && !tok.WasQuoted
}
