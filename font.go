package bitfont

import "errors"

// A Font is the immutable runtime model of a compiled pixel font: a
// few metrics, an ordered glyph table, a sorted kerning table, a
// codepoint mapping strategy and the shared bitmap pool that all glyph
// images reference.
//
// Fonts are produced by [Parse]() or by the encode subpackage, never
// modified afterwards, and can be shared freely across goroutines and
// renderers without synchronization.
type Font struct {
	ascent      uint8
	descent     uint8
	lineSpacing int8
	glyphs      []Glyph
	kerning     []KerningEntry
	mapping     mapping
	pool        []byte
	fallback    *Font
}

// Pixels above the baseline bounding all glyphs in the font.
func (self *Font) Ascent() int { return int(self.ascent) }

// Pixels below the baseline bounding all glyphs in the font.
func (self *Font) Descent() int { return int(self.descent) }

// Extra pixels between the bounding box of one line and the next.
// May be zero or negative.
func (self *Font) LineSpacing() int { return int(self.lineSpacing) }

// Height of a single line, ascent + descent. Every glyph image fits
// within this height.
func (self *Font) LineHeight() int { return int(self.ascent) + int(self.descent) }

// Vertical displacement from one baseline to the next,
// ascent + descent + line spacing.
func (self *Font) LineAdvance() int { return self.LineHeight() + int(self.lineSpacing) }

// Number of glyphs in the font, at most 256.
func (self *Font) NumGlyphs() int { return len(self.glyphs) }

// Returns the glyph at the given index. The index must be valid
// (below [Font.NumGlyphs]()), otherwise the function panics.
func (self *Font) Glyph(index GlyphIndex) Glyph {
	return self.glyphs[index]
}

// Returns the bitmap bytes for the given reference. The returned slice
// aliases the font's bitmap pool and must not be modified.
func (self *Font) Bitmap(ref BitmapRef) []byte {
	return self.pool[ref.Offset : ref.Offset+ref.Length]
}

// Size of the font's shared bitmap pool, in bytes.
func (self *Font) PoolSize() int { return len(self.pool) }

// Returns the font consulted when a codepoint is not represented in
// this font, or nil if there's none.
func (self *Font) Fallback() *Font { return self.fallback }

// Links a fallback font to be consulted when a codepoint is not
// represented in this font. Fallback references are strictly
// one-directional; an attempt to close a cycle is an error and
// leaves the font unchanged.
//
// Unlike the rest of the font, the fallback link is set up at program
// start rather than encoded, so it's the one mutation the type allows.
// Don't call this concurrently with rendering.
func (self *Font) SetFallback(fallback *Font) error {
	for font := fallback; font != nil; font = font.fallback {
		if font == self { return errors.New("fallback chain can't contain cycles") }
	}
	self.fallback = fallback
	return nil
}
