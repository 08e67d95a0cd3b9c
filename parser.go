package csvcore

import "github.com/ooyeku/csvcore/internal/arena"

// parser is the character-level state machine described in spec §4.6. It
// pulls runes one at a time from a CharReader and accumulates them into a
// RowBuffer, tracking quote state, a single-rune pushback, and the line
// and row counters needed for diagnostics.
type parser struct {
	input CharReader
	opts  *Options
	row   *arena.RowBuffer

	pushback rune // EOF (-1) means empty; see input.go

	rowIndex   int
	lineNumber int

	detectedNewline string

	inQuotes          bool
	afterClosingQuote bool
	fieldWasQuoted    bool

	hasDistinctEscape bool

	ioErr error
}

func newParser(input CharReader, opts *Options) *parser {
	return &parser{
		input:             input,
		opts:              opts,
		row:               arena.NewRowBuffer(),
		pushback:          EOF,
		lineNumber:        1,
		hasDistinctEscape: opts.hasDistinctEscape(),
	}
}

// readChar returns the next rune, consuming the pushback slot first.
// A genuine I/O error is latched in p.ioErr and re-surfaced as EOF so the
// caller's loop terminates; readRow checks p.ioErr once it unwinds.
func (p *parser) readChar() rune {
	if p.pushback >= 0 {
		c := p.pushback
		p.pushback = EOF
		return c
	}
	c, err := p.input.Read()
	if err != nil {
		p.ioErr = err
		return EOF
	}
	return c
}

// pushBack stashes a single rune for the next readChar call. Pushing back
// EOF is a safe no-op: the slot already reads as empty.
func (p *parser) pushBack(c rune) {
	p.pushback = c
}

func toArenaTrim(t Trim) arena.TrimPolicy {
	switch t {
	case TrimStart:
		return arena.TrimStart
	case TrimEnd:
		return arena.TrimEnd
	case TrimBoth:
		return arena.TrimBoth
	default:
		return arena.TrimNone
	}
}

// completeField closes out the field currently being accumulated and
// resets the per-field flags for the next one.
func (p *parser) completeField() {
	p.row.CompleteField(p.fieldWasQuoted, toArenaTrim(p.opts.Trim))
	p.fieldWasQuoted = false
	p.afterClosingQuote = false
}

func (p *parser) setDetectedNewline(nl string) {
	if p.detectedNewline == "" {
		p.detectedNewline = nl
	}
}

// consumeNewlineSuffix handles the line-ending seen at c: bumps the line
// counter and, for a bare '\r', peeks one rune ahead to fold a following
// '\n' into a single CRLF line break.
func (p *parser) consumeNewlineSuffix(c rune) {
	p.lineNumber++
	if c == '\r' {
		next := p.readChar()
		if next == '\n' {
			p.setDetectedNewline("\r\n")
			return
		}
		p.pushBack(next)
		p.setDetectedNewline("\r")
		return
	}
	p.setDetectedNewline("\n")
}

func (p *parser) reportBadData(sentinel error, raw string) error {
	return dispatchBadData(p.opts, p.rowIndex, p.lineNumber, p.row.Tokens.Len(), sentinel, raw)
}

// finishRow snapshots a Row view over the current buffer contents before
// advancing rowIndex, so the returned Row reports the index it was
// actually read at (spec §6 scenario: column-count mismatch row index).
func (p *parser) finishRow() Row {
	r := newRow(p.row, p.rowIndex, p.lineNumber)
	p.rowIndex++
	return r
}

// readRow implements the transition tables of spec §4.6. It returns
// (row, true, nil) on a successfully parsed row, (zero, false, nil) at a
// clean EOF with nothing left to emit, and (zero, false, err) on a fatal
// parse fault under strict read mode.
func (p *parser) readRow() (Row, bool, error) {
	p.row.Reset()
	sawInput := false

	for {
		if p.inQuotes {
			c := p.readChar()
			if c == EOF {
				if p.ioErr != nil {
					return Row{}, false, p.ioErr
				}
				if err := p.reportBadData(ErrUnexpectedEOFInQuotedField, p.row.CurrentFieldRaw()); err != nil {
					return Row{}, false, err
				}
				p.completeField()
				if p.row.IsBlankLine() && p.opts.IgnoreBlankLines {
					return Row{}, false, nil
				}
				return p.finishRow(), true, nil
			}
			if c == p.opts.Quote {
				// A doubled quote is always a literal quote, whether or not
				// a distinct escape char is also configured — escape widens
				// the vocabulary inside quotes, it doesn't replace the
				// doubled-quote convention. A single quote closes the field.
				next := p.readChar()
				if next == p.opts.Quote {
					p.row.Append(c)
					continue
				}
				p.pushBack(next)
				p.inQuotes = false
				p.afterClosingQuote = true
				continue
			}
			if c == p.opts.Escape && p.hasDistinctEscape {
				next := p.readChar()
				if next == EOF {
					if p.ioErr != nil {
						return Row{}, false, p.ioErr
					}
					p.row.Append(c)
					if err := p.reportBadData(ErrUnexpectedEOFInQuotedField, p.row.CurrentFieldRaw()); err != nil {
						return Row{}, false, err
					}
					p.completeField()
					return p.finishRow(), true, nil
				}
				if next != p.opts.Quote {
					// An escape not followed by a quote is kept literally.
					p.pushBack(next)
					p.row.Append(c)
					continue
				}
				p.row.Append(next)
				continue
			}
			sawInput = true
			p.row.Append(c)
			continue
		}

		if p.afterClosingQuote {
			c := p.readChar()
			switch {
			case c == EOF:
				if p.ioErr != nil {
					return Row{}, false, p.ioErr
				}
				p.completeField()
				if p.row.IsBlankLine() && p.opts.IgnoreBlankLines {
					return Row{}, false, nil
				}
				return p.finishRow(), true, nil
			case c == p.opts.Delimiter:
				p.completeField()
				continue
			case c == '\r' || c == '\n':
				p.completeField()
				p.consumeNewlineSuffix(c)
				if p.row.IsBlankLine() && p.opts.IgnoreBlankLines {
					sawInput = false
					continue
				}
				return p.finishRow(), true, nil
			case isTrimmableSpace(c):
				continue
			default:
				if err := p.reportBadData(ErrCharAfterClosingQuote, string(c)); err != nil {
					return Row{}, false, err
				}
				p.afterClosingQuote = false
				p.row.Append(c)
				continue
			}
		}

		// Outside quotes.
		c := p.readChar()
		switch {
		case c == EOF:
			if p.ioErr != nil {
				return Row{}, false, p.ioErr
			}
			if !sawInput && p.row.Tokens.Len() == 0 && p.row.CurrentFieldLen() == 0 {
				return Row{}, false, nil
			}
			p.completeField()
			if p.row.IsBlankLine() && p.opts.IgnoreBlankLines {
				return Row{}, false, nil
			}
			return p.finishRow(), true, nil
		case c == p.opts.Quote && p.row.CurrentFieldLen() == 0:
			p.inQuotes = true
			p.fieldWasQuoted = true
			sawInput = true
			continue
		case c == p.opts.Quote:
			if err := p.reportBadData(ErrBareQuote, p.row.CurrentFieldRaw()); err != nil {
				return Row{}, false, err
			}
			p.row.Append(c)
			sawInput = true
			continue
		case c == p.opts.Delimiter:
			sawInput = true
			p.completeField()
			continue
		case c == '\r' || c == '\n':
			sawInput = true
			p.completeField()
			p.consumeNewlineSuffix(c)
			if p.row.IsBlankLine() && p.opts.IgnoreBlankLines {
				p.row.Reset()
				sawInput = false
				continue
			}
			return p.finishRow(), true, nil
		case (p.opts.Trim == TrimStart || p.opts.Trim == TrimBoth) && p.row.CurrentFieldLen() == 0 && isTrimmableSpace(c):
			sawInput = true
			continue
		default:
			sawInput = true
			p.row.Append(c)
			continue
		}
	}
}
