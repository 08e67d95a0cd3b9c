package csvcore

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Reader is the primary entry point for streaming CSV ingestion (spec
// §4.7). It wraps a parser with header capture, column-count enforcement,
// and dictionary/struct materialization built on top of raw rows.
type Reader struct {
	p       *parser
	opts    Options
	header  []string
	headerReady bool
	mapping MappingRegistry
	convert ConversionRegistry
}

// MappingRegistry resolves struct members to column positions. It mirrors
// mapping.Registry's shape without importing the sub-package directly;
// callers plug in MappingFromRegistry(mapping.NewRegistry(conv)) or a test
// double.
type MappingRegistry interface {
	Members(dest any) ([]FieldMapping, error)
}

// FieldMapping names one struct member's bound column, resolved either by
// explicit index or by header name.
type FieldMapping struct {
	Name      string
	Index     int
	HasIndex  bool
	Set       func(dest any, raw string) error
}

// ConversionRegistry converts a raw field string into a Go value. It
// mirrors convert.Registry's shape without importing the sub-package.
type ConversionRegistry interface {
	Convert(raw string, target any) error
}

// NewReader constructs a Reader over src using opts. It returns a
// *ConfigError if opts fails validation.
func NewReader(src io.Reader, opts Options) (*Reader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	cr := NewUTF8Reader(src, opts.ByteBufferSize, false)
	return newReaderFromCharReader(cr, opts), nil
}

// NewReaderFromBytes is a convenience constructor over an in-memory
// buffer, avoiding the io.Reader indirection for callers that already
// hold the whole input.
func NewReaderFromBytes(data []byte, opts Options) (*Reader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	cr := NewUTF8Reader(bytes.NewReader(data), opts.ByteBufferSize, false)
	return newReaderFromCharReader(cr, opts), nil
}

func newReaderFromCharReader(cr CharReader, opts Options) *Reader {
	r := &Reader{opts: opts}
	r.p = newParser(cr, &r.opts)
	return r
}

// SetMapping installs the struct-mapping collaborator used by
// TryReadRecord.
func (r *Reader) SetMapping(m MappingRegistry) { r.mapping = m }

// SetConversion installs the conversion collaborator. TryReadRecord
// requires it to be set but does not call it: field values are converted
// by each FieldMapping's Set function.
func (r *Reader) SetConversion(c ConversionRegistry) { r.convert = c }

// ensureHeader reads and caches the header row on first use when
// opts.HasHeader is set. It is a no-op on subsequent calls.
func (r *Reader) ensureHeader() error {
	if r.headerReady || !r.opts.HasHeader {
		r.headerReady = true
		return nil
	}
	row, ok, err := r.p.readRow()
	if err != nil {
		return err
	}
	r.headerReady = true
	if !ok {
		r.header = nil
		return nil
	}
	r.header = make([]string, row.FieldCount())
	for i := range r.header {
		r.header[i] = row.FieldString(i)
	}
	return nil
}

func (r *Reader) columnName(i int) string {
	if i < len(r.header) {
		return r.header[i]
	}
	return fmt.Sprintf("column %d", i)
}

func (r *Reader) headerEquals(a, b string) bool {
	if r.opts.HeaderComparer == HeaderComparerCaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func (r *Reader) resolveIndex(name string) (int, bool) {
	for i, h := range r.header {
		if r.headerEquals(h, name) {
			return i, true
		}
	}
	return 0, false
}

// TryReadRow reads the next row, returning (row, true) on success or
// (zero, false) at clean end of input. err is non-nil only on a fatal
// parse fault under strict mode or a genuine I/O error.
func (r *Reader) TryReadRow() (Row, bool, error) {
	if err := r.ensureHeader(); err != nil {
		return Row{}, false, err
	}
	row, ok, err := r.p.readRow()
	if err != nil || !ok {
		return Row{}, false, err
	}
	if r.opts.DetectColumnCount && r.header != nil && row.FieldCount() != len(r.header) {
		if err := dispatchBadData(&r.opts, row.RowIndex(), row.LineNumber(), row.FieldCount(), ErrFieldCount, ""); err != nil {
			return Row{}, false, err
		}
	}
	return row, true, nil
}

// TryReadDictionary reads the next row and materializes it as a
// map[string]string keyed by header name. Fields beyond the header, or
// every field when there is no header, are keyed "column N" with N the
// zero-based field index.
func (r *Reader) TryReadDictionary() (map[string]string, bool, error) {
	row, ok, err := r.TryReadRow()
	if err != nil || !ok {
		return nil, ok, err
	}
	dict := make(map[string]string, row.FieldCount())
	for i := 0; i < row.FieldCount(); i++ {
		dict[r.columnName(i)] = row.FieldString(i)
	}
	return dict, true, nil
}

// TryReadRecord reads the next row and populates dest (a pointer to a
// struct) through the installed MappingRegistry: each member's Set
// function converts and assigns its field. Both SetMapping and
// SetConversion must have been called. Go has no generic methods, so
// this takes the spec's try_read_record<T>() idiom and renders it the way encoding/json.Unmarshal does: a pointer
// parameter instead of a type parameter.
func (r *Reader) TryReadRecord(dest any) (bool, error) {
	if r.mapping == nil || r.convert == nil {
		return false, &ConfigError{Option: "Mapping/Conversion", Message: "TryReadRecord requires SetMapping and SetConversion"}
	}
	row, ok, err := r.TryReadRow()
	if err != nil || !ok {
		return false, err
	}
	members, err := r.mapping.Members(dest)
	if err != nil {
		return false, err
	}
	seqIdx := 0
	for _, m := range members {
		idx := m.Index
		if !m.HasIndex {
			if r.header == nil {
				idx = seqIdx
				seqIdx++
			} else {
				resolved, found := r.resolveIndex(m.Name)
				if !found {
					return false, &ConversionError{
						RowIndex:   row.RowIndex(),
						LineNumber: row.LineNumber(),
						Member:     m.Name,
						Err:        ErrUnresolvedColumn,
					}
				}
				idx = resolved
			}
		}
		if idx >= row.FieldCount() {
			return false, &ConversionError{
				RowIndex:   row.RowIndex(),
				LineNumber: row.LineNumber(),
				FieldIndex: idx,
				Member:     m.Name,
				Err:        ErrMissingField,
			}
		}
		raw := row.FieldString(idx)
		if err := m.Set(dest, raw); err != nil {
			return false, &ConversionError{
				RowIndex:   row.RowIndex(),
				LineNumber: row.LineNumber(),
				FieldIndex: idx,
				Member:     m.Name,
				Err:        err,
			}
		}
	}
	return true, nil
}

// Header returns the captured header row, or nil if opts.HasHeader is
// false or the input was empty.
func (r *Reader) Header() []string { return r.header }

// Close releases the Reader's internal buffer back to the process-wide
// pool. The Reader must not be used afterward. Callers that read a
// source to completion and then discard the Reader (the common case for
// the CLI's one-shot commands) don't need to call this; it matters for
// long-running processes that construct many short-lived Readers.
func (r *Reader) Close() error {
	r.p.row.Release()
	return nil
}
