package blocks

// pagedMap maps code points to substitution strings.
// It's a two-level page table:
//   - top[blockID] = page index (1..numPages), or 0 meaning "block absent".
//   - pages is a flat array of numPages*BlockSize entries.
//   - count[page-1] is the number of defined entries of a page; slots at or beyond
//     it are undefined, even though they hold an (empty) string.
//
// Lookup is O(1) with three array reads and a couple of ops.
//
// Memory:
//   - top: 4352 * 2 bytes = 8.5 KB
//   - each populated page: 256 string headers = 4 KB on 64-bit platforms
type pagedMap struct {
	top   [NumBlocks]uint16
	count []uint16
	pages []string
}

// get returns the entry for code point cp and whether it is defined.
// cp must be in [0, MaxCodePoint].
func (m *pagedMap) get(cp rune) (string, bool) {
	pi := m.top[cp>>8]
	if pi == 0 {
		return "", false
	}
	inx := int(cp & 0xFF)
	if inx >= int(m.count[pi-1]) {
		return "", false
	}
	return m.pages[int(pi-1)<<8+inx], true
}

// numPages returns the number of allocated pages.
func (m *pagedMap) numPages() int { return len(m.count) }

// ensurePage ensures that the page for block id exists.
// Returns the 1-based page index.
func (m *pagedMap) ensurePage(id int) uint16 {
	pi := m.top[id]
	if pi != 0 {
		return pi
	}
	m.pages = append(m.pages, make([]string, BlockSize)...)
	m.count = append(m.count, 0)
	pi = uint16(len(m.count))
	m.top[id] = pi
	return pi
}

// setBlock stores the entries of block id. A block may be registered with zero
// entries; it then exists, but every code point in it is undefined.
func (m *pagedMap) setBlock(id int, entries []string) {
	assert(len(entries) <= BlockSize, "block too large")
	pi := m.ensurePage(id)
	base := int(pi-1) << 8
	copy(m.pages[base:base+BlockSize], entries)
	m.count[pi-1] = uint16(len(entries))
}

// block returns the defined entries of block id. The result aliases the page.
func (m *pagedMap) block(id int) ([]string, bool) {
	pi := m.top[id]
	if pi == 0 {
		return nil, false
	}
	base := int(pi-1) << 8
	return m.pages[base : base+int(m.count[pi-1])], true
}
