package slug

import (
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Slugifier creates slugs. It is immutable after construction and may be used
// by multiple goroutines concurrently.
type Slugifier struct {
	tr           *unidecode.Transliterator
	separator    string
	lowercase    bool
	maxLength    int
	strip        string
	stripper     transform.Transformer
	replacements *trie.Trie
}

// Option configures a Slugifier.
type Option func(*Slugifier)

// Separator sets the string placed between words. The default is "-".
func Separator(sep string) Option {
	return func(s *Slugifier) {
		s.separator = sep
	}
}

// Lowercase controls whether the slug is lowercased. The default is true.
func Lowercase(lower bool) Option {
	return func(s *Slugifier) {
		s.lowercase = lower
	}
}

// MaxLength limits the length of a slug in bytes. Zero or less means no limit.
func MaxLength(n int) Option {
	return func(s *Slugifier) {
		s.maxLength = n
	}
}

// StripChars sets the characters which are deleted from the transliterated
// text instead of being turned into a separator. The default is "'", which
// also covers typographic apostrophes. Characters outside of ASCII never make
// it into the transliterated text and cannot be stripped.
func StripChars(chars string) Option {
	return func(s *Slugifier) {
		s.strip = chars
	}
}

// CustomReplace replaces occurrences of the keys of replacements in the input
// text by their values, before the text is transliterated. Where keys overlap,
// the longest match wins.
func CustomReplace(replacements map[string]string) Option {
	return func(s *Slugifier) {
		if len(replacements) == 0 {
			return
		}
		if s.replacements == nil {
			s.replacements = trie.New()
		}
		for from, to := range replacements {
			if from != "" {
				s.replacements.Add(from, to)
			}
		}
	}
}

// WithTransliterator sets the transliterator to use. The default is
// unidecode.Default().
func WithTransliterator(tr *unidecode.Transliterator) Option {
	return func(s *Slugifier) {
		s.tr = tr
	}
}

// New creates a Slugifier.
func New(opts ...Option) *Slugifier {
	s := &Slugifier{
		separator: "-",
		lowercase: true,
		strip:     "'",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tr == nil {
		s.tr = unidecode.Default()
	}
	if s.strip != "" {
		s.stripper = runes.Remove(runes.Predicate(func(r rune) bool {
			return strings.ContainsRune(s.strip, r)
		}))
	}
	return s
}

var lenient = sync.OnceValue(func() *unidecode.Transliterator {
	return unidecode.New(unidecode.SkipMalformed(""))
})

// Make creates a slug from text. Malformed UTF-8 in text is dropped.
func Make(text string, opts ...Option) string {
	s := New(append([]Option{WithTransliterator(lenient())}, opts...)...)
	slug, err := s.Slugify(text)
	if err != nil { // cannot happen with a lenient transliterator
		tracer().Errorf("cannot slugify %q: %v", text, err)
	}
	return slug
}

// Slugify creates a slug from text. It fails if text is not well-formed UTF-8,
// unless the Slugifier uses a transliterator which skips malformed input.
func (s *Slugifier) Slugify(text string) (string, error) {
	ascii, err := s.tr.Decode(s.replace(text))
	if err != nil {
		tracer().Debugf("slugify: %v", err)
		return "", err
	}
	if s.stripper != nil {
		ascii, _, _ = transform.String(s.stripper, ascii)
	}
	if s.lowercase {
		ascii = strings.ToLower(ascii)
	}
	slug := s.join(ascii)
	if s.maxLength > 0 && len(slug) > s.maxLength {
		slug = strings.TrimRight(slug[:s.maxLength], s.separator)
	}
	return slug, nil
}

// join collapses every run of non-alphanumeric characters into a single
// separator and drops them at the start and end.
func (s *Slugifier) join(ascii string) string {
	var b strings.Builder
	b.Grow(len(ascii))
	gap := false
	for i := 0; i < len(ascii); i++ {
		c := ascii[i]
		if !isAlnum(c) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteString(s.separator)
		}
		gap = false
		b.WriteByte(c)
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
