/*
Package unidecode converts Unicode text into a best-effort ASCII approximation.

Every code point of the input is replaced by a short ASCII string taken from a
transliteration table: "Κνωσός" becomes "Knosos", "北京" becomes "Bei Jing ".
ASCII characters pass through unchanged. Code points without a table entry are
dropped. The result is meant for humans and machines which cannot cope with
anything but ASCII (file names, URLs, legacy systems). It is neither a
linguistically correct romanization nor reversible.

The transliteration table is organized in blocks of 256 code points, following
Sean M. Burke's Text::Unidecode. Package tables ships a table derived from
github.com/mozillazg/go-unidecode; package blocks allows building custom ones.

Input has to be well-formed UTF-8. Malformed input is reported as a
*codepoint.MalformedError, unless a Transliterator is configured to skip over
malformed bytes.

Package slug builds URL-safe slugs on top of this package.

Further Reading

	https://metacpan.org/pod/Text::Unidecode

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package unidecode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unidecode'
func tracer() tracing.Trace {
	return tracing.Select("unidecode")
}
