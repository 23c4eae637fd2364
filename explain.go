package unidecode

import (
	"fmt"
	"io"

	"github.com/npillmayer/unidecode/codepoint"
)

// Substitution describes how a single code point is transliterated.
type Substitution struct {
	Offset    int    // byte offset of the code point in the (normalized) input
	CodePoint rune   // the decoded code point
	Entry     string // its ASCII substitution
	Defined   bool   // false if the table has no entry; Entry is then empty
}

func (s Substitution) String() string {
	if !s.Defined {
		return fmt.Sprintf("%U -> (undefined)", s.CodePoint)
	}
	return fmt.Sprintf("%U -> %q", s.CodePoint, s.Entry)
}

// Lossy reports whether the code point vanishes from the output.
func (s Substitution) Lossy() bool {
	return s.Entry == ""
}

// Explain lists the substitution of every code point in text, in input order.
// It lets clients which rely on lossless output find out what would be dropped.
// ASCII code points are reported as substitutions of themselves.
//
// Explain always stops at the first malformed sequence, regardless of
// SkipMalformed.
func (t *Transliterator) Explain(text string) ([]Substitution, error) {
	if t.normalize {
		text = t.form.String(text)
	}
	subst := make([]Substitution, 0, len(text))
	scanner := codepoint.NewScanner(text)
	for {
		offset := scanner.Offset()
		cp, err := scanner.Next()
		if err == io.EOF {
			return subst, nil
		} else if err != nil {
			return subst, err
		}
		s := Substitution{Offset: offset, CodePoint: cp}
		if cp < 0x80 {
			s.Entry, s.Defined = string(cp), true
		} else {
			s.Entry, s.Defined = t.table.Entry(cp)
		}
		subst = append(subst, s)
	}
}
