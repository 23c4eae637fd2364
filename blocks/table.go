package blocks

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
)

const (
	// BlockSize is the number of code points sharing one block.
	BlockSize = 256
	// NumBlocks is the number of blocks needed to cover the Unicode code space.
	NumBlocks = 0x1100
	// MaxCodePoint is the highest Unicode scalar value.
	MaxCodePoint = 0x10FFFF
)

// BlockID returns the block a code point belongs to.
func BlockID(cp rune) int { return int(cp >> 8) }

// Table is a frozen, sparse substitution table.
//
// Code points are partitioned into blocks of 256. A block is either absent or
// holds 0..256 entries, indexed by the low 8 bits of a code point. Code points
// in absent blocks or beyond the end of their block are undefined.
//
// A Table is never modified after construction and may be shared between
// goroutines without locking.
type Table struct {
	name string
	m    pagedMap
}

// BlockReader yields blocks of substitution entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type BlockReader interface {
	Next() (id int, entries []string, err error)
}

// LoadTable builds a table from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside this package. Use adapters
// like package tablefile to parse concrete formats and feed this API.
func LoadTable(name string, reader BlockReader) (*Table, error) {
	b := NewBuilder(name)
	for {
		id, entries, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if b.HasBlock(id) {
			return nil, fmt.Errorf("duplicate block %#03x in table %q", id, name)
		}
		if err = b.SetBlock(id, entries); err != nil {
			return nil, err
		}
	}
	t := b.Freeze()
	stats := t.Stats()
	tracer().Infof("table %q stats blocks=%d entries=%d empty=%d fill=%.2f",
		name, stats.Blocks, stats.Entries, stats.Empty, stats.FillRatio())
	tracing.With(tracer()).Dump("stats", stats)
	return t, nil
}

// Name identifies the table.
func (t *Table) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Lookup returns the substitution for cp. Undefined code points yield "".
func (t *Table) Lookup(cp rune) string {
	s, _ := t.Entry(cp)
	return s
}

// Entry returns the substitution for cp and whether cp has an entry at all.
// An entry may be present and empty, which means the code point is deliberately
// suppressed.
func (t *Table) Entry(cp rune) (string, bool) {
	if t == nil || cp < 0 || cp > MaxCodePoint {
		return "", false
	}
	return t.m.get(cp)
}

// HasBlock reports whether block id is registered.
func (t *Table) HasBlock(id int) bool {
	if t == nil || id < 0 || id >= NumBlocks {
		return false
	}
	return t.m.top[id] != 0
}

// Block returns a copy of the entries of block id.
func (t *Table) Block(id int) ([]string, bool) {
	if !t.HasBlock(id) {
		return nil, false
	}
	entries, _ := t.m.block(id)
	return append([]string(nil), entries...), true
}

// BlockIDs returns the ids of all registered blocks in ascending order.
func (t *Table) BlockIDs() []int {
	if t == nil {
		return nil
	}
	ids := make([]int, 0, t.m.numPages())
	for id := range NumBlocks {
		if t.m.top[id] != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// WithOverrides returns a new table which is a copy of t with the entries of
// overrides replacing (or adding to) t's entries. t itself is not modified.
func (t *Table) WithOverrides(name string, overrides map[rune]string) (*Table, error) {
	b := NewBuilder(name)
	for _, id := range t.BlockIDs() {
		entries, _ := t.m.block(id)
		if err := b.SetBlock(id, entries); err != nil {
			return nil, err
		}
	}
	for cp, entry := range overrides {
		if err := b.Set(cp, entry); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("table %q derived from %q with %d overrides", name, t.Name(), len(overrides))
	return b.Freeze(), nil
}

func (t *Table) String() string {
	stats := t.Stats()
	return fmt.Sprintf("Table(%s,blocks=%d,entries=%d)", t.Name(), stats.Blocks, stats.Entries)
}
