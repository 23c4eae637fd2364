package codepoint

import (
	"io"
	"iter"

	asmutf8 "github.com/segmentio/asm/utf8"
)

// Scanner yields the code points of a UTF-8 encoded input one-by-one.
// It does not copy its input.
type Scanner[S ~string | ~[]byte] struct {
	src S
	pos int
	err error
}

// NewScanner creates a scanner for src.
func NewScanner[S ~string | ~[]byte](src S) *Scanner[S] {
	return &Scanner[S]{src: src}
}

// Next returns the next code point.
// It returns io.EOF when the input is exhausted and a *MalformedError if the input
// is not well-formed at the current position. Errors are sticky: every subsequent
// call returns the same error.
func (s *Scanner[S]) Next() (rune, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.pos >= len(s.src) {
		s.err = io.EOF
		return 0, s.err
	}
	cp, size, err := DecodeRune(s.src[s.pos:])
	if err != nil {
		s.err = err.(*MalformedError).at(s.pos)
		tracer().P("offset", s.pos).Debugf("scanner stopped: %v", s.err)
		return 0, s.err
	}
	s.pos += size
	return cp, nil
}

// Offset returns the byte offset of the next code point to be decoded.
func (s *Scanner[S]) Offset() int {
	return s.pos
}

// Runes returns a lazy sequence of the code points in src, paired with a nil error.
// If src is malformed, the sequence ends with a single (0, *MalformedError) pair.
func Runes[S ~string | ~[]byte](src S) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		s := NewScanner(src)
		for {
			cp, err := s.Next()
			if err == io.EOF {
				return
			}
			if !yield(cp, err) || err != nil {
				return
			}
		}
	}
}

// Count returns the number of code points in src.
func Count[S ~string | ~[]byte](src S) (int, error) {
	n := 0
	for _, err := range Runes(src) {
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Validate reports whether b consists of ASCII bytes only and whether b is
// well-formed UTF-8. It does not locate faults; use a Scanner for that.
func Validate(b []byte) (ascii bool, utf8 bool) {
	v := asmutf8.Validate(b)
	return v.IsASCII(), v.IsUTF8()
}
