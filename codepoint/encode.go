package codepoint

import "fmt"

// RangeError is returned when encoding a value which is not a Unicode scalar value.
type RangeError struct {
	Value rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("not a Unicode scalar value: %#x", e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrMalformed
}

// Valid reports whether cp is a Unicode scalar value, i.e. in [0, 0x10FFFF] and
// not a surrogate.
func Valid(cp rune) bool {
	return cp >= 0 && cp <= MaxCodePoint && (cp < surrogateMin || cp > surrogateMax)
}

// AppendRune appends the UTF-8 encoding of cp to dst.
//
// Values without a canonical UTF-8 form (negative, surrogates, above U+10FFFF) are
// rejected with a *RangeError instead of being replaced.
func AppendRune(dst []byte, cp rune) ([]byte, error) {
	if !Valid(cp) {
		return dst, &RangeError{Value: cp}
	}
	switch {
	case cp <= 0x7F:
		return append(dst, byte(cp)), nil
	case cp <= 0x7FF:
		return append(dst,
			0xC0|byte(cp>>6),
			0x80|byte(cp)&0x3F), nil
	case cp <= 0xFFFF:
		return append(dst,
			0xE0|byte(cp>>12),
			0x80|byte(cp>>6)&0x3F,
			0x80|byte(cp)&0x3F), nil
	}
	return append(dst,
		0xF0|byte(cp>>18),
		0x80|byte(cp>>12)&0x3F,
		0x80|byte(cp>>6)&0x3F,
		0x80|byte(cp)&0x3F), nil
}
