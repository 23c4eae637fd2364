package codepoint

import (
	"errors"
	"fmt"
	"io"
)

// MaxCodePoint is the highest Unicode scalar value.
const MaxCodePoint = 0x10FFFF

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// ErrMalformed is the sentinel wrapped by every decoding fault.
var ErrMalformed = errors.New("input is not valid UTF-8 text")

// Reason classifies a decoding fault.
type Reason uint8

// Decoding faults, in the order they are detected for a single sequence.
const (
	BadLeadByte     Reason = iota + 1 // stray continuation byte or 0xF8..0xFF
	BadContinuation                   // expected 10xxxxxx
	Truncated                         // input ends within a sequence
	Overlong                          // value would fit into a shorter sequence
	Surrogate                         // encodes U+D800..U+DFFF
	OutOfRange                        // encodes a value above U+10FFFF
)

func (r Reason) String() string {
	switch r {
	case BadLeadByte:
		return "invalid lead byte"
	case BadContinuation:
		return "invalid continuation byte"
	case Truncated:
		return "truncated sequence"
	case Overlong:
		return "overlong encoding"
	case Surrogate:
		return "encoded surrogate half"
	case OutOfRange:
		return "code point out of range"
	}
	return "<unknown>"
}

// MalformedError reports a byte sequence which cannot be decoded into a code point.
//
// Offset is the byte position of the sequence within the decoded input. Size is the
// length of the maximal invalid prefix starting at Offset; callers which skip over
// malformed input should advance by Size (it is always at least 1).
type MalformedError struct {
	Offset int
	Size   int
	Bytes  []byte // copy of the offending bytes
	Reason Reason
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed UTF-8 at byte offset %d: %s (% x)", e.Offset, e.Reason, e.Bytes)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// at returns a copy of e, shifted to absolute offset off.
func (e *MalformedError) at(off int) *MalformedError {
	shifted := *e
	shifted.Offset += off
	return &shifted
}

// DecodeRune decodes the code point at the start of s.
// It returns the code point and the number of bytes consumed.
//
// Unlike utf8.DecodeRune, an invalid sequence is never mapped to U+FFFD: it is
// reported as a *MalformedError with Offset 0. Empty input yields io.EOF.
func DecodeRune[S ~string | ~[]byte](s S) (rune, int, error) {
	n := len(s)
	if n == 0 {
		return 0, 0, io.EOF
	}
	b0 := s[0]
	if b0 < 0x80 {
		return rune(b0), 1, nil
	}
	var need int
	var lo rune
	var cp rune
	switch {
	case b0 < 0xC0:
		return 0, 0, malformed(s, 1, BadLeadByte)
	case b0 < 0xE0:
		need, lo, cp = 2, 0x80, rune(b0&0x1F)
	case b0 < 0xF0:
		need, lo, cp = 3, 0x800, rune(b0&0x0F)
	case b0 < 0xF8:
		need, lo, cp = 4, 0x10000, rune(b0&0x07)
	default:
		return 0, 0, malformed(s, 1, BadLeadByte)
	}
	for i := 1; i < need; i++ {
		if i >= n {
			return 0, 0, malformed(s, n, Truncated)
		}
		c := s[i]
		if c&0xC0 != 0x80 {
			return 0, 0, malformed(s, i, BadContinuation)
		}
		cp = cp<<6 | rune(c&0x3F)
	}
	switch {
	case cp < lo:
		return 0, 0, malformed(s, need, Overlong)
	case cp >= surrogateMin && cp <= surrogateMax:
		return 0, 0, malformed(s, need, Surrogate)
	case cp > MaxCodePoint:
		return 0, 0, malformed(s, need, OutOfRange)
	}
	return cp, need, nil
}

func malformed[S ~string | ~[]byte](s S, size int, reason Reason) *MalformedError {
	b := make([]byte, size)
	copy(b, s[:size])
	return &MalformedError{
		Size:   size,
		Bytes:  b,
		Reason: reason,
	}
}
