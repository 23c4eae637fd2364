package unidecode

import (
	"io"

	"github.com/npillmayer/unidecode/codepoint"
	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer which transliterates UTF-8 to
// ASCII. Each call creates a new transformer; transformers carry state and must
// not be shared between goroutines.
//
// A sequence cut off at the end of a chunk is not a fault unless the input is
// exhausted. Fault offsets count from the start of the stream (since the last
// Reset).
func (t *Transliterator) Transformer() transform.Transformer {
	tr := &transformer{t: t}
	if t.normalize {
		return transform.Chain(t.form, tr)
	}
	return tr
}

// NewReader wraps r so that everything read from it is transliterated.
func (t *Transliterator) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, t.Transformer())
}

type transformer struct {
	t        *Transliterator
	consumed int // bytes of src consumed by previous calls
}

func (tr *transformer) Reset() {
	tr.consumed = 0
}

func (tr *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() {
		tr.consumed += nSrc
	}()
	for nSrc < len(src) {
		if c := src[nSrc]; c < 0x80 {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		var entry string
		cp, size, e := codepoint.DecodeRune(src[nSrc:])
		if e != nil {
			fault := *e.(*codepoint.MalformedError)
			if fault.Reason == codepoint.Truncated && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			fault.Offset += tr.consumed + nSrc
			if !tr.t.skip {
				tracer().P("offset", fault.Offset).Debugf("transformer stopped: %s", fault.Reason)
				return nDst, nSrc, &fault
			}
			entry, size = tr.t.replacement, fault.Size
		} else {
			entry = tr.t.table.Lookup(cp)
		}
		if nDst+len(entry) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], entry)
		nSrc += size
	}
	return nDst, nSrc, nil
}
