package csvcore

import (
	"bufio"
	"context"
	"io"
)

// EOF is the rune value returned by CharReader.Read to signal end of
// input, reusing the same sentinel the parser uses for pushback-empty
// (spec §4.4 notes these are safely unambiguous in combination).
const EOF rune = -1

// CharReader is the pull-based source the parser consumes one rune at a
// time from. Read returns EOF (not an error) at end of input; any other
// non-nil error is fatal and propagated verbatim to the caller.
type CharReader interface {
	Read() (rune, error)
}

// ContextCharReader is a CharReader that can be asked to stop blocking
// against a context, for sources backed by network or pipe reads.
type ContextCharReader interface {
	CharReader
	ReadContext(ctx context.Context) (rune, error)
}

// UTF8Reader adapts an io.Reader into a CharReader by decoding UTF-8 runes
// through bufio.Reader, which already guarantees a read never splits a
// multi-byte codepoint across two calls.
type UTF8Reader struct {
	br        *bufio.Reader
	stripBOM  bool
	bomChecked bool
}

// NewUTF8Reader wraps r with a buffer sized per bufferSize (spec
// Options.ByteBufferSize). stripBOM, when true, silently discards a
// leading U+FEFF exactly once (spec §9 Open Question: opt-in, not
// automatic).
func NewUTF8Reader(r io.Reader, bufferSize int, stripBOM bool) *UTF8Reader {
	if bufferSize <= 0 {
		bufferSize = DefaultByteBufferSize
	}
	return &UTF8Reader{br: bufio.NewReaderSize(r, bufferSize), stripBOM: stripBOM}
}

// Read returns the next decoded rune, or EOF at end of input.
func (u *UTF8Reader) Read() (rune, error) {
	if u.stripBOM && !u.bomChecked {
		u.bomChecked = true
		if err := u.skipBOM(); err != nil {
			return EOF, err
		}
	}
	r, _, err := u.br.ReadRune()
	if err == io.EOF {
		return EOF, nil
	}
	if err != nil {
		return EOF, err
	}
	return r, nil
}

func (u *UTF8Reader) skipBOM() error {
	r, _, err := u.br.ReadRune()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if r != '\uFEFF' {
		return u.br.UnreadRune()
	}
	return nil
}
