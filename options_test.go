package csvcore

import "testing"

func TestDefaultOptionsValidates(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("DefaultOptions() failed Validate: %v", err)
	}
}

func TestValidateRejectsZeroDelimiter(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = 0
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for zero Delimiter")
	}
}

func TestValidateRejectsZeroQuote(t *testing.T) {
	opts := DefaultOptions()
	opts.Quote = 0
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for zero Quote")
	}
}

func TestValidateRejectsNonPositiveBufferSizes(t *testing.T) {
	opts := DefaultOptions()
	opts.CharBufferSize = 0
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for zero CharBufferSize")
	}

	opts = DefaultOptions()
	opts.ByteBufferSize = -1
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for negative ByteBufferSize")
	}
}

func TestHasDistinctEscape(t *testing.T) {
	opts := DefaultOptions()
	if opts.hasDistinctEscape() {
		t.Fatal("default Quote and Escape are equal, expected hasDistinctEscape() == false")
	}
	opts.Escape = '\\'
	if !opts.hasDistinctEscape() {
		t.Fatal("Escape differs from Quote, expected hasDistinctEscape() == true")
	}
}

func TestEffectiveNewlineExplicit(t *testing.T) {
	opts := DefaultOptions()
	opts.Newline = "\r\n"
	if got := opts.effectiveNewline(); got != "\r\n" {
		t.Fatalf("effectiveNewline() = %q, want %q", got, "\r\n")
	}
}

func TestEffectiveNewlineDefaultsNonEmpty(t *testing.T) {
	opts := DefaultOptions()
	if got := opts.effectiveNewline(); got != "\n" && got != "\r\n" {
		t.Fatalf("effectiveNewline() = %q, want \\n or \\r\\n", got)
	}
}
