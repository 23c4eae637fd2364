/*
Package tablefile reads and writes transliteration tables in a line-oriented
text format.

A table file consists of blocks. Each block starts with a header giving the
block id in hex and the number of entries, followed by exactly that many
Go-quoted strings, one per line:

	# unidecode transliteration table
	# source: github.com/mozillazg/go-unidecode v0.2.0
	@0a0 256
	"yi"
	"ding"
	...

Blocks may have fewer than 256 entries. Lines starting with '#' are comments.

Override files list single code point substitutions, which are applied on top
of a table with blocks.Table.WithOverrides:

	# German umlauts
	U+00E4 "ae"
	U+00F6 "oe"
*/
package tablefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unidecode.tablefile'
func tracer() tracing.Trace {
	return tracing.Select("unidecode.tablefile")
}
