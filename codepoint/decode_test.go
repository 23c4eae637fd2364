package codepoint

import (
	"errors"
	"io"
	"testing"
	"unicode/utf8"
)

func TestDecodeRuneWellFormed(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		size  int
	}{
		{input: "A", want: 'A', size: 1},
		{input: "\x00", want: 0, size: 1},
		{input: "\x7f", want: 0x7F, size: 1},
		{input: "é", want: 0xE9, size: 2},
		{input: "߿", want: 0x7FF, size: 2},
		{input: "北", want: 0x5317, size: 3},
		{input: "�", want: 0xFFFD, size: 3},
		{input: "\U0001d5a0", want: 0x1D5A0, size: 4},
		{input: "\U0010ffff", want: 0x10FFFF, size: 4},
		{input: "Čx", want: 0x10C, size: 2},
	}
	for _, tt := range tests {
		cp, size, err := DecodeRune(tt.input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if cp != tt.want || size != tt.size {
			t.Fatalf("decode mismatch for %q: got (%#x,%d), want (%#x,%d)", tt.input, cp, size, tt.want, tt.size)
		}
	}
}

func TestDecodeRuneMalformed(t *testing.T) {
	tests := []struct {
		input  string
		reason Reason
		size   int
	}{
		{input: "\x80", reason: BadLeadByte, size: 1},
		{input: "\xbf", reason: BadLeadByte, size: 1},
		{input: "\xf8\x88\x80\x80\x80", reason: BadLeadByte, size: 1},
		{input: "\xff", reason: BadLeadByte, size: 1},
		{input: "\xc3A", reason: BadContinuation, size: 1},
		{input: "\xe4\xb8A", reason: BadContinuation, size: 2},
		{input: "\xc3", reason: Truncated, size: 1},
		{input: "\xe4\xb8", reason: Truncated, size: 2},
		{input: "\xf0\x9d\x96", reason: Truncated, size: 3},
		{input: "\xc0\xaf", reason: Overlong, size: 2},
		{input: "\xc1\xbf", reason: Overlong, size: 2},
		{input: "\xe0\x80\xaf", reason: Overlong, size: 3},
		{input: "\xf0\x80\x80\xaf", reason: Overlong, size: 4},
		{input: "\xed\xa0\x80", reason: Surrogate, size: 3},
		{input: "\xed\xbf\xbf", reason: Surrogate, size: 3},
		{input: "\xf4\x90\x80\x80", reason: OutOfRange, size: 4},
		{input: "\xf7\xbf\xbf\xbf", reason: OutOfRange, size: 4},
	}
	for _, tt := range tests {
		_, _, err := DecodeRune([]byte(tt.input))
		if err == nil {
			t.Fatalf("expected fault for % x", tt.input)
		}
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("fault for % x does not wrap ErrMalformed: %v", tt.input, err)
		}
		var me *MalformedError
		if !errors.As(err, &me) {
			t.Fatalf("fault for % x is not a *MalformedError: %T", tt.input, err)
		}
		if me.Reason != tt.reason || me.Size != tt.size {
			t.Fatalf("fault mismatch for % x: got (%s,%d), want (%s,%d)", tt.input,
				me.Reason, me.Size, tt.reason, tt.size)
		}
	}
}

func TestDecodeAgreesWithStdlib(t *testing.T) {
	buf := make([]byte, 0, 4)
	for cp := rune(0); cp <= MaxCodePoint; cp++ {
		if cp == surrogateMin {
			cp = surrogateMax
			continue
		}
		buf = utf8.AppendRune(buf[:0], cp)
		got, size, err := DecodeRune(buf)
		if err != nil {
			t.Fatalf("unexpected fault for U+%04X: %v", cp, err)
		}
		if got != cp || size != len(buf) {
			t.Fatalf("decode mismatch for U+%04X: got U+%04X/%d", cp, got, size)
		}
	}
}

func TestScanner(t *testing.T) {
	s := NewScanner("aČ北\U0001d5a0")
	var got []rune
	for {
		cp, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, cp)
	}
	want := []rune{'a', 0x10C, 0x5317, 0x1D5A0}
	if len(got) != len(want) {
		t.Fatalf("expected %d code points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("code point %d: got U+%04X, want U+%04X", i, got[i], want[i])
		}
	}
	if s.Offset() != 1+2+3+4 {
		t.Fatalf("expected offset 10 at end, got %d", s.Offset())
	}
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("expected sticky io.EOF, got %v", err)
	}
}

func TestScannerReportsAbsoluteOffset(t *testing.T) {
	s := NewScanner([]byte("ab\xc3(cd"))
	for range 2 {
		if _, err := s.Next(); err != nil {
			t.Fatal(err)
		}
	}
	_, err := s.Next()
	var me *MalformedError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedError, got %v", err)
	}
	if me.Offset != 2 || me.Reason != BadContinuation {
		t.Fatalf("expected bad continuation at offset 2, got %s at %d", me.Reason, me.Offset)
	}
	if _, err2 := s.Next(); err2 != err {
		t.Fatalf("expected sticky fault, got %v", err2)
	}
}

func TestRunesStopsAtFault(t *testing.T) {
	var cps []rune
	var faults int
	for cp, err := range Runes("ok\xed\xa0\x80never") {
		if err != nil {
			faults++
			continue
		}
		cps = append(cps, cp)
	}
	if string(cps) != "ok" || faults != 1 {
		t.Fatalf("expected \"ok\" and one fault, got %q and %d faults", string(cps), faults)
	}
	if n, err := Count("čšž"); err != nil || n != 3 {
		t.Fatalf("expected 3 code points, got %d (%v)", n, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		input string
		ascii bool
		utf8  bool
	}{
		{input: "", ascii: true, utf8: true},
		{input: "Hello, World!", ascii: true, utf8: true},
		{input: "château", ascii: false, utf8: true},
		{input: "bad\xff", ascii: false, utf8: false},
	}
	for _, tt := range tests {
		ascii, valid := Validate([]byte(tt.input))
		if ascii != tt.ascii || valid != tt.utf8 {
			t.Fatalf("Validate(%q) = (%v,%v), want (%v,%v)", tt.input, ascii, valid, tt.ascii, tt.utf8)
		}
	}
}

func TestDecodeRuneEmptyInput(t *testing.T) {
	cp, size, err := DecodeRune("")
	if err != io.EOF {
		t.Fatalf("expected io.EOF for empty input, got %v", err)
	}
	if cp != 0 || size != 0 {
		t.Fatalf("expected (0,0) for empty input, got (%#x,%d)", cp, size)
	}
	if _, _, err = DecodeRune([]byte{}); err != io.EOF {
		t.Fatalf("expected io.EOF for empty byte slice, got %v", err)
	}
}
