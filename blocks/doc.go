/*
Package blocks implements the block table store for transliteration data.

The Unicode code space is partitioned into 0x1100 blocks of 256 code points,
identified by cp >> 8. Substitution data is registered per block, in any order,
through a Builder (or streamed in by LoadTable) and then frozen into a Table.
A Table is a two-level page table: one array indexed by block id points to
pages of 256 strings, each page knowing how many of its entries are defined.
Lookups are O(1) and never fail; undefined code points yield the empty string.

Tables are immutable. Deriving a variant (see Table.WithOverrides) creates a
new table.
*/
package blocks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unidecode.blocks'
func tracer() tracing.Trace {
	return tracing.Select("unidecode.blocks")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
