/*
Package codepoint decodes UTF-8 encoded text into Unicode scalar values.

The decoder is strict: invalid lead or continuation bytes, truncated sequences,
overlong encodings, encoded surrogate halves and values above U+10FFFF are
reported as a *MalformedError. Nothing is ever silently replaced by U+FFFD, as
the standard library does; deciding whether to fail or to skip is up to the
client.

Decoding is available as a single step (DecodeRune), as a pull-style Scanner
which returns io.EOF at the end of input, and as a lazy iter.Seq2 (Runes).
*/
package codepoint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unidecode.codepoint'
func tracer() tracing.Trace {
	return tracing.Select("unidecode.codepoint")
}
