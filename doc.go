// Package csvcore is a streaming CSV reader/writer core: a character-level
// state machine that ingests delimited text incrementally, exposes each
// parsed row as zero-copy field slices over a pooled backing arena, and
// emits well-formed delimited text with minimal escaping.
//
// The package handles quoting, distinct escape characters, embedded
// newlines, LF/CR/CRLF detection, blank-line suppression, and trimming,
// reading from a pull-based CharReader in bounded-memory increments.
// Value conversion (convert) and struct mapping (mapping) are separate
// sub-packages consumed through small interfaces, following the same
// split the spec draws between the core and its external collaborators.
package csvcore
