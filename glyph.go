package bitfont

// An index into a font's glyph table. Fonts can hold 256 glyphs at
// most, so indices always fit in a byte; kerning entries and compiled
// glyph records rely on that.
type GlyphIndex uint8

// A BitmapRef locates a glyph's image inside its font's shared bitmap
// pool. Multiple glyphs may reference overlapping or identical byte
// ranges; the pool is built once and never mutated, so references can
// alias freely.
//
// A zero-length reference is the canonical form for blank glyphs.
type BitmapRef struct {
	Offset uint32
	Length uint32
}

// Whether the reference points to any image data at all. Blank glyphs
// (e.g. the space character) have empty references.
func (self BitmapRef) IsEmpty() bool { return self.Length == 0 }

// Data for a single glyph in a font.
//
// The bitmap is stored row-major, one bit per pixel, most significant
// bit leftmost, each row padded to Stride bytes. The image height is
// not stored; it's always Bitmap.Length / Stride.
type Glyph struct {
	// Bitmap row width in bytes (units of 8 pixels).
	Stride uint8

	// Position of the glyph's image within the font's bitmap pool.
	Bitmap BitmapRef

	// Displacement from the top-left of the glyph's advance box to the
	// top-left pixel of its image. Unsigned: a glyph's image can never
	// extend left of or above its box.
	OriginX, OriginY uint8

	// Default horizontal displacement from this glyph's origin to the
	// next glyph's origin, in pixels. Kerning does not modify it.
	Advance uint8
}

// Image height in pixels, derived from the bitmap reference.
// Blank glyphs have height zero.
func (self *Glyph) Height() int {
	if self.Stride == 0 { return 0 }
	return int(self.Bitmap.Length) / int(self.Stride)
}
