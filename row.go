package csvcore

import "github.com/ooyeku/csvcore/internal/arena"

// Row is a read-only view over one parsed record's fields. It stays valid
// only until the Reader that produced it reads the next row — the
// underlying arena is reused in place (spec §4.7).
type Row struct {
	buf        *arena.RowBuffer
	rowIndex   int
	lineNumber int
}

// newRow captures a view over buf at its current state. Callers must take
// this snapshot before the RowBuffer is reset or mutated further.
func newRow(buf *arena.RowBuffer, rowIndex, lineNumber int) Row {
	return Row{buf: buf, rowIndex: rowIndex, lineNumber: lineNumber}
}

// FieldCount returns the number of fields captured in this row.
func (r Row) FieldCount() int {
	return r.buf.Tokens.Len()
}

// RowIndex returns the zero-based data-row index (header excluded).
func (r Row) RowIndex() int { return r.rowIndex }

// LineNumber returns the parser's one-based line counter at the moment the
// row was emitted. The counter advances once per line break read outside
// quoted fields, so a row ended by a newline reports the following line.
func (r Row) LineNumber() int { return r.lineNumber }

// FieldSpan returns the i-th field as a slice over the shared arena. The
// slice is only valid until the next row is read; copy it if it must
// outlive that. Out-of-range i panics, matching spec's "programmer error".
func (r Row) FieldSpan(i int) []rune {
	tok := r.buf.Tokens.At(i)
	return r.buf.Chars.Slice(tok.Start, tok.Length)
}

// FieldString returns a freshly allocated copy of the i-th field.
func (r Row) FieldString(i int) string {
	tok := r.buf.Tokens.At(i)
	return r.buf.Chars.String(tok.Start, tok.Length)
}

// WasQuoted reports whether the i-th field was wrapped in quotes in the
// source text.
func (r Row) WasQuoted(i int) bool {
	return r.buf.Tokens.At(i).WasQuoted
}
