package face

import "image"
import "image/color"

import "github.com/pxkit/bitfont"

// Memoizes materialized glyph masks. Fonts are immutable and hold at
// most 256 glyphs each, so entries are never invalidated and the cache
// stays small; a fallback chain contributes one key space per font.
//
// Not safe for concurrent use, matching the general [font.Face]
// contract.
type maskCache struct {
	masks map[maskKey]*image.Alpha
}

type maskKey struct {
	font  *bitfont.Font
	index bitfont.GlyphIndex
}

func (self *maskCache) get(font *bitfont.Font, index bitfont.GlyphIndex) *image.Alpha {
	key := maskKey{font: font, index: index}
	if mask, cached := self.masks[key]; cached { return mask }

	glyph := font.Glyph(index)
	width := int(glyph.Stride) * 8
	mask := image.NewAlpha(image.Rect(0, 0, width, glyph.Height()))
	data := font.Bitmap(glyph.Bitmap)
	stride := int(glyph.Stride)
	for row := 0; row < glyph.Height(); row++ {
		px := 0
		for _, b := range data[row*stride : (row+1)*stride] {
			for bit := 0; bit < 8; bit++ {
				if b&0x80 != 0 { mask.SetAlpha(px, row, alphaOn) }
				b <<= 1
				px++
			}
		}
	}

	if self.masks == nil { self.masks = make(map[maskKey]*image.Alpha) }
	self.masks[key] = mask
	return mask
}

var alphaOn = color.Alpha{0xFF}
