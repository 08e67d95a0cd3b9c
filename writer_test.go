package csvcore

import (
	"bytes"
	"testing"
)

func TestWriterWriteRecordNoQuotingNeeded(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteRecord([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	if got := buf.String(); got != "a,b,c\n" {
		t.Fatalf("got %q, want %q", got, "a,b,c\n")
	}
}

func TestWriterQuotesFieldWithDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteRecord([]string{"a,b", "c"}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	_ = w.Flush()
	if got := buf.String(); got != "\"a,b\",c\n" {
		t.Fatalf("got %q, want %q", got, "\"a,b\",c\n")
	}
}

func TestWriterEscapesEmbeddedQuoteWithDoubling(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteRecord([]string{`say "hi"`}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	_ = w.Flush()
	want := "\"say \"\"hi\"\"\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriterEscapesEmbeddedQuoteWithDistinctEscape(t *testing.T) {
	opts := DefaultOptions()
	opts.Escape = '\\'
	var buf bytes.Buffer
	w, err := NewWriter(&buf, opts)
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteRecord([]string{`say "hi"`}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	_ = w.Flush()
	want := "\"say \\\"hi\\\"\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriterQuotesFieldWithNewline(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteRecord([]string{"line1\nline2"}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	_ = w.Flush()
	want := "\"line1\nline2\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriterQuotesLeadingTrailingWhitespaceWhenTrimEnabled(t *testing.T) {
	opts := DefaultOptions()
	opts.Trim = TrimBoth
	var buf bytes.Buffer
	w, err := NewWriter(&buf, opts)
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteRecord([]string{" a "}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	_ = w.Flush()
	if got := buf.String(); got != "\" a \"\n" {
		t.Fatalf("got %q, want %q", got, "\" a \"\n")
	}
}

func TestWriterQuotesLeadingTrailingWhitespaceWithDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, opts)
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteRecord([]string{" a "}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	_ = w.Flush()
	if got := buf.String(); got != "\" a \"\n" {
		t.Fatalf("got %q, want %q", got, "\" a \"\n")
	}
}

func TestWriterUsesCRLFWhenConfigured(t *testing.T) {
	opts := DefaultOptions()
	opts.Newline = "\r\n"
	var buf bytes.Buffer
	w, err := NewWriter(&buf, opts)
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteAll([][]string{{"a", "b"}, {"c", "d"}}); err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}
	_ = w.Flush()
	want := "a,b\r\nc,d\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriterHeaderThenRecordsRoundTripsThroughReader(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := w.WriteHeader([]string{"name", "age"}); err != nil {
		t.Fatalf("WriteHeader error: %v", err)
	}
	if err := w.WriteRecord([]string{"alice", "30"}); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	_ = w.Flush()

	r, err := NewReaderFromBytes(buf.Bytes(), DefaultOptions())
	if err != nil {
		t.Fatalf("NewReaderFromBytes error: %v", err)
	}
	row, ok, err := r.TryReadRow()
	if err != nil || !ok {
		t.Fatalf("TryReadRow() = (_, %v, %v)", ok, err)
	}
	if got := fields(row); !equalStrings(got, []string{"alice", "30"}) {
		t.Fatalf("fields = %v", got)
	}
}

func TestWriterNewWriterRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Quote = 0
	var buf bytes.Buffer
	_, err := NewWriter(&buf, opts)
	if err == nil {
		t.Fatal("expected error for invalid Options")
	}
}
