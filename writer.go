package csvcore

import (
	"io"
	"strings"
)

// Writer emits delimited text, quoting a field only when its content
// actually requires it (spec §5). It is grounded on the teacher's
// segmented-write escaping: a field needing quotes is written in slices
// around each embedded quote rather than through a temporary buffer.
type Writer struct {
	dst     *UTF8Writer
	opts    Options
	atStart bool
	err     error
}

// NewWriter constructs a Writer over dst using opts. It returns a
// *ConfigError if opts fails validation.
func NewWriter(dst io.Writer, opts Options) (*Writer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Writer{
		dst:     NewUTF8Writer(dst, opts.ByteBufferSize),
		opts:    opts,
		atStart: true,
	}, nil
}

// WriteHeader writes fields as the header row.
func (w *Writer) WriteHeader(fields []string) error {
	return w.WriteRecord(fields)
}

// WriteRecord writes one full row of fields, delimiter-separated and
// newline-terminated.
func (w *Writer) WriteRecord(fields []string) error {
	if w.err != nil {
		return w.err
	}
	for i, f := range fields {
		if i > 0 {
			if err := w.dst.WriteRune(w.opts.Delimiter); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeField(f); err != nil {
			w.err = err
			return err
		}
	}
	if err := w.dst.WriteString(w.opts.effectiveNewline()); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes every record in records, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	for _, rec := range records {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush pushes any buffered bytes to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.dst.Flush()
}

// Close flushes and, unless the writer was constructed to leave the sink
// open, closes it.
func (w *Writer) Close() error {
	return w.dst.Close()
}

// LeaveOpen controls whether Close leaves the underlying sink open.
func (w *Writer) LeaveOpen(v bool) *Writer {
	w.dst.LeaveOpen(v)
	return w
}

func (w *Writer) writeField(field string) error {
	if !w.fieldNeedsQuote(field) {
		return w.dst.WriteString(field)
	}
	if err := w.dst.WriteRune(w.opts.Quote); err != nil {
		return err
	}

	escape := w.opts.Quote
	if w.opts.hasDistinctEscape() {
		escape = w.opts.Escape
	}

	start := 0
	for i, r := range field {
		if r == w.opts.Quote {
			if start < i {
				if err := w.dst.WriteString(field[start:i]); err != nil {
					return err
				}
			}
			if err := w.dst.WriteRune(escape); err != nil {
				return err
			}
			if err := w.dst.WriteRune(w.opts.Quote); err != nil {
				return err
			}
			start = i + len(string(r))
		}
	}
	if start < len(field) {
		if err := w.dst.WriteString(field[start:]); err != nil {
			return err
		}
	}
	return w.dst.WriteRune(w.opts.Quote)
}

// fieldNeedsQuote reports whether field's content forces quoting: it
// contains the delimiter, the quote character, a newline, or leading or
// trailing whitespace that a round trip would otherwise lose.
func (w *Writer) fieldNeedsQuote(field string) bool {
	if field == "" {
		return false
	}
	if strings.ContainsRune(field, w.opts.Delimiter) ||
		strings.ContainsRune(field, w.opts.Quote) ||
		strings.ContainsAny(field, "\r\n") {
		return true
	}
	first := rune(field[0])
	last := rune(field[len(field)-1])
	if isTrimmableSpace(first) || isTrimmableSpace(last) {
		return true
	}
	return false
}

func isTrimmableSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}
