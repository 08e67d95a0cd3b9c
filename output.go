package csvcore

import (
	"bufio"
	"context"
	"io"
)

// CharWriter is the push-based sink the writer emits runes to.
type CharWriter interface {
	WriteRune(r rune) error
	WriteString(s string) error
}

// ContextCharWriter is a CharWriter that can be asked to stop blocking
// against a context.
type ContextCharWriter interface {
	CharWriter
	WriteRuneContext(ctx context.Context, r rune) error
}

// UTF8Writer adapts an io.Writer into a CharWriter via bufio.Writer.
type UTF8Writer struct {
	bw        *bufio.Writer
	closer    io.Closer
	leaveOpen bool
}

// NewUTF8Writer wraps w with a buffer sized per bufferSize (spec
// Options.ByteBufferSize).
func NewUTF8Writer(w io.Writer, bufferSize int) *UTF8Writer {
	if bufferSize <= 0 {
		bufferSize = DefaultByteBufferSize
	}
	closer, _ := w.(io.Closer)
	return &UTF8Writer{bw: bufio.NewWriterSize(w, bufferSize), closer: closer}
}

// LeaveOpen controls whether Close leaves the underlying writer open after
// flushing. Returns the receiver for fluent construction.
func (u *UTF8Writer) LeaveOpen(v bool) *UTF8Writer {
	u.leaveOpen = v
	return u
}

// WriteRune writes a single rune to the buffered output.
func (u *UTF8Writer) WriteRune(r rune) error {
	_, err := u.bw.WriteRune(r)
	return err
}

// WriteString writes s to the buffered output.
func (u *UTF8Writer) WriteString(s string) error {
	_, err := u.bw.WriteString(s)
	return err
}

// Flush pushes any buffered bytes to the underlying writer.
func (u *UTF8Writer) Flush() error {
	return u.bw.Flush()
}

// Close flushes the buffer and, unless LeaveOpen was set, closes the
// underlying writer if it implements io.Closer.
func (u *UTF8Writer) Close() error {
	if err := u.bw.Flush(); err != nil {
		return err
	}
	if u.leaveOpen || u.closer == nil {
		return nil
	}
	return u.closer.Close()
}
