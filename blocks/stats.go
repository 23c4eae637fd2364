package blocks

// TableStats reports density metrics for a table.
type TableStats struct {
	Blocks  int // registered blocks
	Entries int // defined entries, including empty ones
	Empty   int // defined entries which are empty strings
	Slots   int // Blocks * BlockSize
}

func (s TableStats) FillRatio() float64 {
	if s.Slots == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.Slots)
}

// Stats computes density metrics for t.
func (t *Table) Stats() TableStats {
	var stats TableStats
	if t == nil {
		return stats
	}
	for _, id := range t.BlockIDs() {
		entries, _ := t.m.block(id)
		stats.Blocks++
		stats.Entries += len(entries)
		for _, e := range entries {
			if e == "" {
				stats.Empty++
			}
		}
	}
	stats.Slots = stats.Blocks * BlockSize
	return stats
}
