package blocks

import (
	"fmt"
	"sort"

	"github.com/segmentio/asm/ascii"
)

// Builder collects blocks for a Table. A Builder is not safe for concurrent use.
type Builder struct {
	name   string
	blocks map[int][]string
}

// NewBuilder creates an empty builder for a table called name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		blocks: make(map[int][]string),
	}
}

// HasBlock reports whether block id has been set.
func (b *Builder) HasBlock(id int) bool {
	_, ok := b.blocks[id]
	return ok
}

// SetBlock registers the entries of block id, replacing a previously set block.
// entries may be shorter than BlockSize; the remaining code points of the block
// stay undefined.
func (b *Builder) SetBlock(id int, entries []string) error {
	if id < 0 || id >= NumBlocks {
		return fmt.Errorf("block id out of range (0..%#x): %#x", NumBlocks-1, id)
	}
	if len(entries) > BlockSize {
		return fmt.Errorf("block %#03x has %d entries, at most %d allowed", id, len(entries), BlockSize)
	}
	for i, e := range entries {
		if !ascii.ValidString(e) {
			return fmt.Errorf("entry for U+%04X is not ASCII: %q", id<<8|i, e)
		}
	}
	b.blocks[id] = append(make([]string, 0, len(entries)), entries...)
	return nil
}

// Set defines the entry of a single code point. If its block does not yet hold
// enough entries, the block is extended with empty entries.
func (b *Builder) Set(cp rune, entry string) error {
	if cp < 0 || cp > MaxCodePoint {
		return fmt.Errorf("code point out of range: %#x", cp)
	}
	if !ascii.ValidString(entry) {
		return fmt.Errorf("entry for U+%04X is not ASCII: %q", cp, entry)
	}
	id, inx := BlockID(cp), int(cp&0xFF)
	entries := b.blocks[id]
	for len(entries) <= inx {
		entries = append(entries, "")
	}
	entries[inx] = entry
	b.blocks[id] = entries
	return nil
}

// Freeze creates an immutable Table from the blocks collected so far.
// The builder may continue to be used afterwards; the table does not share
// memory with it.
func (b *Builder) Freeze() *Table {
	ids := make([]int, 0, len(b.blocks))
	for id := range b.blocks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	t := &Table{name: b.name}
	t.m.pages = make([]string, 0, len(ids)*BlockSize)
	t.m.count = make([]uint16, 0, len(ids))
	for _, id := range ids {
		t.m.setBlock(id, b.blocks[id])
	}
	return t
}
