package arena

import "testing"

func appendString(b *RowBuffer, s string) {
	for _, r := range s {
		b.Append(r)
	}
}

func TestRowBufferCompleteFieldNoTrim(t *testing.T) {
	b := NewRowBuffer()
	appendString(b, "  hi  ")
	b.CompleteField(false, TrimNone)

	if b.Tokens.Len() != 1 {
		t.Fatalf("Tokens.Len() = %d, want 1", b.Tokens.Len())
	}
	tok := b.Tokens.At(0)
	if got := b.Chars.String(tok.Start, tok.Length); got != "  hi  " {
		t.Fatalf("field = %q, want %q", got, "  hi  ")
	}
}

func TestRowBufferCompleteFieldTrimBoth(t *testing.T) {
	b := NewRowBuffer()
	appendString(b, "  hi  ")
	b.CompleteField(false, TrimBoth)

	tok := b.Tokens.At(0)
	if got := b.Chars.String(tok.Start, tok.Length); got != "hi" {
		t.Fatalf("field = %q, want %q", got, "hi")
	}
}

func TestRowBufferTrimAllSpaceYieldsEmpty(t *testing.T) {
	b := NewRowBuffer()
	appendString(b, "   ")
	b.CompleteField(false, TrimBoth)

	tok := b.Tokens.At(0)
	if tok.Length != 0 {
		t.Fatalf("Length = %d, want 0", tok.Length)
	}
}

func TestRowBufferIsBlankLine(t *testing.T) {
	b := NewRowBuffer()
	b.CompleteField(false, TrimNone)
	if !b.IsBlankLine() {
		t.Fatal("expected IsBlankLine() true for a single empty unquoted field")
	}
}

func TestRowBufferIsBlankLineFalseWhenQuoted(t *testing.T) {
	b := NewRowBuffer()
	b.CompleteField(true, TrimNone)
	if b.IsBlankLine() {
		t.Fatal("expected IsBlankLine() false for a quoted empty field")
	}
}

func TestRowBufferResetRewindsState(t *testing.T) {
	b := NewRowBuffer()
	appendString(b, "a,b")
	b.CompleteField(false, TrimNone)
	b.Reset()

	if b.Chars.Len() != 0 || b.Tokens.Len() != 0 {
		t.Fatalf("Reset did not clear state: chars=%d tokens=%d", b.Chars.Len(), b.Tokens.Len())
	}
}
