package bitfont

// An entry in a font's kerning table: a signed horizontal adjustment
// applied to the drawn position of After when it immediately follows
// Before. Entries exist only for pairs with non-default spacing, so
// the table is expected to be small or empty.
type KerningEntry struct {
	Before GlyphIndex
	After  GlyphIndex
	Adjust int8
}

// key gives the sort/search ordering of the kerning table:
// ascending by (before, after).
func (self KerningEntry) key() uint16 {
	return uint16(self.Before)<<8 | uint16(self.After)
}

// Returns the kerning adjustment between two glyphs of the font, in
// pixels, and whether an entry exists at all. Absence of an entry is
// the common case and simply means no adjustment.
func (self *Font) Kern(before, after GlyphIndex) (int8, bool) {
	entries := self.kerning
	target := uint16(before)<<8 | uint16(after)
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := (lo + hi) >> 1
		if entries[mid].key() < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(entries) || entries[lo].key() != target { return 0, false }
	return entries[lo].Adjust, true
}

// Number of entries in the font's kerning table.
func (self *Font) NumKerningEntries() int { return len(self.kerning) }
