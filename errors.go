package csvcore

import (
	"errors"
	"fmt"
)

// Sentinel reasons behind a ParseError/ConversionError/BadDataContext,
// usable with errors.Is against the wrapped Err.
var (
	ErrUnexpectedEOFInQuotedField = errors.New("unexpected EOF inside quoted field")
	ErrBareQuote                  = errors.New("unexpected quote in unquoted field")
	ErrCharAfterClosingQuote      = errors.New("unexpected character after closing quote")
	ErrFieldCount                 = errors.New("wrong number of fields")
	ErrUnresolvedColumn           = errors.New("column could not be resolved for member")
	ErrMissingField               = errors.New("missing field at row")
	ErrConversionFailed           = errors.New("field could not be converted")
	ErrSetterFailed               = errors.New("setter failed")
)

// BadDataContext carries positional information about one malformed
// field or row, passed to Options.BadDataCallback under lenient read mode
// (spec §3, §7).
type BadDataContext struct {
	RowIndex   int
	LineNumber int
	FieldIndex int
	Message    string
	RawField   string
}

// ParseError is a fatal failure raised under strict read mode. It carries
// the (row_index, line_number, field_index, message) tuple required by
// spec §6 and participates in errors.Is/errors.As via Unwrap.
type ParseError struct {
	RowIndex   int
	LineNumber int
	FieldIndex int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csvcore: parse error at row %d, line %d, field %d: %v",
		e.RowIndex, e.LineNumber, e.FieldIndex, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConversionError is a mapping/conversion failure returned by
// TryReadRecord. It is returned in every read mode: these failures are
// not routed to Options.BadDataCallback under lenient mode.
type ConversionError struct {
	RowIndex   int
	LineNumber int
	FieldIndex int
	Member     string
	Err        error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("csvcore: conversion error at row %d, line %d, field %d (%s): %v",
		e.RowIndex, e.LineNumber, e.FieldIndex, e.Member, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ConfigError is raised at construction time for an invalid Options value
// (spec §6, §7 — configuration errors are always raised regardless of
// read mode).
type ConfigError struct {
	Option  string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("csvcore: invalid option %s: %s", e.Option, e.Message)
}

// dispatchBadData is the single strict/lenient switch described in spec
// §7: strict mode returns a fatal *ParseError the caller must propagate;
// lenient mode invokes the callback (if set) and returns nil so the
// caller can continue. Cancellation errors are never routed through here.
func dispatchBadData(opts *Options, rowIndex, lineNumber, fieldIndex int, sentinel error, raw string) error {
	if opts.ReadMode == ReadModeStrict {
		return &ParseError{RowIndex: rowIndex, LineNumber: lineNumber, FieldIndex: fieldIndex, Err: sentinel}
	}
	if opts.BadDataCallback != nil {
		opts.BadDataCallback(BadDataContext{
			RowIndex:   rowIndex,
			LineNumber: lineNumber,
			FieldIndex: fieldIndex,
			Message:    sentinel.Error(),
			RawField:   raw,
		})
	}
	return nil
}
