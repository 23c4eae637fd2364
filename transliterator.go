package unidecode

import (
	"sync"

	"github.com/npillmayer/unidecode/blocks"
	"github.com/npillmayer/unidecode/codepoint"
	"github.com/npillmayer/unidecode/tables"
	"github.com/segmentio/asm/ascii"
	"golang.org/x/text/unicode/norm"
)

// Transliterator converts UTF-8 text to ASCII using a substitution table.
//
// A Transliterator is immutable after construction and may be used by multiple
// goroutines concurrently.
type Transliterator struct {
	table       *blocks.Table
	normalize   bool
	form        norm.Form
	skip        bool   // skip malformed input instead of failing
	replacement string // emitted for each skipped sequence
}

// Option configures a Transliterator.
type Option func(*Transliterator)

// WithTable sets the substitution table. The default is tables.Default().
func WithTable(table *blocks.Table) Option {
	return func(t *Transliterator) {
		t.table = table
	}
}

// WithNormalization normalizes the input to form before transliterating it.
// NFKC or NFKD map many compatibility characters (ligatures, letter-like
// symbols, width variants) to code points which are more likely to have a
// table entry. Fault offsets then refer to the normalized text.
func WithNormalization(form norm.Form) Option {
	return func(t *Transliterator) {
		t.normalize = true
		t.form = form
	}
}

// SkipMalformed lets the Transliterator continue after malformed input.
// Each maximal invalid byte sequence is replaced by replacement, which itself
// is transliterated first if it is not plain ASCII.
//
// Without this option, decoding stops at the first fault.
func SkipMalformed(replacement string) Option {
	return func(t *Transliterator) {
		t.skip = true
		t.replacement = replacement
	}
}

// New creates a Transliterator. Without options it uses the shipped table and
// fails on malformed input.
func New(opts ...Option) *Transliterator {
	t := &Transliterator{}
	for _, opt := range opts {
		opt(t)
	}
	if t.table == nil {
		t.table = tables.Default()
	}
	if t.skip && !ascii.ValidString(t.replacement) {
		repl := &Transliterator{table: t.table}
		r, err := repl.Decode(t.replacement)
		if err != nil {
			tracer().Errorf("replacement %q is malformed, using empty replacement", t.replacement)
		}
		t.replacement = r
	}
	return t
}

var defaultTransliterator = sync.OnceValue(func() *Transliterator {
	return New()
})

// Default returns a shared Transliterator using the shipped table.
func Default() *Transliterator {
	return defaultTransliterator()
}

// Decode transliterates text using the default Transliterator.
func Decode(text string) (string, error) {
	return Default().Decode(text)
}

// Table returns the substitution table in use.
func (t *Transliterator) Table() *blocks.Table {
	return t.table
}

// Decode transliterates text to ASCII.
//
// If text is not well-formed UTF-8, Decode returns "" and a
// *codepoint.MalformedError (unless malformed input is skipped).
func (t *Transliterator) Decode(text string) (string, error) {
	if !t.normalize && ascii.ValidString(text) {
		return text, nil
	}
	if t.normalize {
		text = t.form.String(text)
	}
	out, err := transliterate(t, make([]byte, 0, len(text)), text)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeBytes transliterates src to ASCII. The result never aliases src.
func (t *Transliterator) DecodeBytes(src []byte) ([]byte, error) {
	return t.AppendDecode(make([]byte, 0, len(src)), src)
}

// AppendDecode appends the transliteration of src to dst and returns the
// extended buffer. On error, dst is returned unchanged.
func (t *Transliterator) AppendDecode(dst, src []byte) ([]byte, error) {
	if t.normalize {
		src = t.form.Bytes(src)
	} else if isASCII, _ := codepoint.Validate(src); isASCII {
		return append(dst, src...), nil
	}
	n := len(dst)
	out, err := transliterate(t, dst, src)
	if err != nil {
		return dst[:n], err
	}
	return out, nil
}

// transliterate is the hot path for both strings and byte slices.
func transliterate[S ~string | ~[]byte](t *Transliterator, dst []byte, src S) ([]byte, error) {
	pos := 0
	for pos < len(src) {
		if c := src[pos]; c < 0x80 {
			dst = append(dst, c)
			pos++
			continue
		}
		cp, size, err := codepoint.DecodeRune(src[pos:])
		if err != nil {
			fault := *err.(*codepoint.MalformedError)
			fault.Offset += pos
			if !t.skip {
				tracer().P("offset", fault.Offset).Debugf("transliteration stopped: %s", fault.Reason)
				return dst, &fault
			}
			tracer().P("offset", fault.Offset).Debugf("skipping %d malformed bytes", fault.Size)
			dst = append(dst, t.replacement...)
			pos += fault.Size
			continue
		}
		dst = append(dst, t.table.Lookup(cp)...)
		pos += size
	}
	return dst, nil
}
