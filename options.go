package csvcore

import "runtime"

// Trim selects the post-read trim policy applied to a field's offsets
// (spec §3). Trimming only adjusts the token's (start, length) window; it
// never copies data.
type Trim int

const (
	TrimNone Trim = iota
	TrimStart
	TrimEnd
	TrimBoth
)

// ReadMode selects how the parser reacts to malformed input (spec §7).
type ReadMode int

const (
	ReadModeStrict ReadMode = iota
	ReadModeLenient
)

// HeaderComparer selects how header names are looked up (spec §3, §4.8).
type HeaderComparer int

const (
	HeaderComparerCaseInsensitive HeaderComparer = iota
	HeaderComparerCaseSensitive
)

// Default buffer sizes (spec §3).
const (
	DefaultCharBufferSize = 16384
	DefaultByteBufferSize = 16384
)

// Options configures a Reader or Writer (spec §3). The zero value is not
// valid — start from DefaultOptions and override fields. Validate is
// called automatically by NewReader/NewWriter and returns a *ConfigError
// describing the first invariant violated.
type Options struct {
	Delimiter rune
	Quote     rune
	Escape    rune

	HasHeader bool

	// Newline is the explicit output newline; empty means platform default.
	Newline string

	Trim Trim

	DetectColumnCount bool
	IgnoreBlankLines  bool
	ReadMode          ReadMode

	// Culture is a locale tag (e.g. "en-US", "de-DE") governing numeric
	// and date parsing/formatting in the conversion registry.
	Culture string

	HeaderComparer HeaderComparer

	CharBufferSize int
	ByteBufferSize int

	BadDataCallback func(BadDataContext)
}

// DefaultOptions returns the RFC 4180-style defaults from spec §3.
func DefaultOptions() Options {
	return Options{
		Delimiter:         ',',
		Quote:             '"',
		Escape:            '"',
		HasHeader:         true,
		Trim:              TrimNone,
		DetectColumnCount: true,
		IgnoreBlankLines:  false,
		ReadMode:          ReadModeStrict,
		Culture:           "en-US",
		HeaderComparer:    HeaderComparerCaseInsensitive,
		CharBufferSize:    DefaultCharBufferSize,
		ByteBufferSize:    DefaultByteBufferSize,
	}
}

// Validate checks the option invariants from spec §3.
func (o *Options) Validate() error {
	if o.Delimiter == 0 {
		return &ConfigError{Option: "Delimiter", Message: "must be non-null"}
	}
	if o.Quote == 0 {
		return &ConfigError{Option: "Quote", Message: "must be non-null"}
	}
	if o.Escape == 0 {
		return &ConfigError{Option: "Escape", Message: "must be non-null"}
	}
	if o.CharBufferSize <= 0 {
		return &ConfigError{Option: "CharBufferSize", Message: "must be > 0"}
	}
	if o.ByteBufferSize <= 0 {
		return &ConfigError{Option: "ByteBufferSize", Message: "must be > 0"}
	}
	return nil
}

// hasDistinctEscape reports whether Escape differs from Quote; when it
// doesn't, escaping falls back entirely to the doubled-quote convention.
func (o *Options) hasDistinctEscape() bool {
	return o.Escape != o.Quote
}

// effectiveNewline resolves Newline to the platform default when unset.
func (o *Options) effectiveNewline() string {
	if o.Newline != "" {
		return o.Newline
	}
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
