package bitfont

// Maps a codepoint to a glyph index in this font, or in the nearest
// font of its fallback chain that represents it. The second return
// value reports whether the codepoint is represented at all.
//
// Lookup never substitutes a default glyph on a miss: choosing a
// replacement, if any, is the caller's policy (see
// [Renderer.SetPlaceholder]()).
//
// Note that when the match comes from a fallback font, the returned
// index refers to that font's glyph table, not this one's. Use
// [Font.Resolve]() if you need to know which font owns the glyph.
func (self *Font) Lookup(codepoint rune) (GlyphIndex, bool) {
	_, index, found := self.Resolve(codepoint)
	return index, found
}

// Like [Font.Lookup](), but also returns the font that owns the
// resulting glyph. Draw operations must read bitmap data from the
// owning font's pool, which may be a fallback's.
func (self *Font) Resolve(codepoint rune) (*Font, GlyphIndex, bool) {
	for font := self; font != nil; font = font.fallback {
		index, found := font.mapping.lookup(codepoint, len(font.glyphs))
		if found { return font, index, true }
	}
	return nil, 0, false
}
