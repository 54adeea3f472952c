// face adapts a [bitfont.Font] to the [golang.org/x/image/font.Face]
// interface, so compiled pixel fonts plug into any code that draws
// through font.Drawer and friends.
//
// This is a desktop-side convenience: glyph masks are materialized as
// image.Alpha (and memoized per glyph), trading the zero-allocation
// property of the core renderer for interface compatibility.
// Microcontroller targets should consume [bitfont.DrawIterator]
// directly instead.
package face

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/pxkit/bitfont"

// A Face wraps a compiled font. It implements [font.Face].
type Face struct {
	font  *bitfont.Font
	cache maskCache
}

var _ font.Face = (*Face)(nil)

// Creates a [font.Face] view of the given font. Fallback fonts linked
// to it are honored during glyph resolution.
func New(fnt *bitfont.Font) *Face {
	if fnt == nil { panic("nil font") }
	return &Face{font: fnt}
}

// Implements [font.Face]. No resources to release; always nil.
func (self *Face) Close() error { return nil }

// Implements [font.Face].
func (self *Face) Metrics() font.Metrics {
	ascent := fixed.I(self.font.Ascent())
	return font.Metrics{
		Height:     fixed.I(self.font.LineAdvance()),
		Ascent:     ascent,
		Descent:    fixed.I(self.font.Descent()),
		XHeight:    ascent,
		CapHeight:  ascent,
		CaretSlope: image.Pt(0, 1),
	}
}

// Implements [font.Face]. The dot is on the baseline; the glyph box
// top sits ascent pixels above it.
func (self *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	owner, index, found := self.font.Resolve(r)
	if !found { return image.Rectangle{}, nil, image.Point{}, 0, false }
	glyph := owner.Glyph(index)

	width := int(glyph.Stride) * 8
	height := glyph.Height()
	x := dot.X.Floor() + int(glyph.OriginX)
	y := dot.Y.Floor() - self.font.Ascent() + int(glyph.OriginY)
	dr := image.Rect(x, y, x+width, y+height)
	mask := self.cache.get(owner, index)
	return dr, mask, image.Point{}, fixed.I(int(glyph.Advance)), true
}

// Implements [font.Face].
func (self *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	owner, index, found := self.font.Resolve(r)
	if !found { return fixed.Rectangle26_6{}, 0, false }
	glyph := owner.Glyph(index)
	minX := fixed.I(int(glyph.OriginX))
	minY := fixed.I(int(glyph.OriginY) - self.font.Ascent())
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: minX, Y: minY},
		Max: fixed.Point26_6{
			X: minX + fixed.I(int(glyph.Stride)*8),
			Y: minY + fixed.I(glyph.Height()),
		},
	}
	return bounds, fixed.I(int(glyph.Advance)), true
}

// Implements [font.Face].
func (self *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	owner, index, found := self.font.Resolve(r)
	if !found { return 0, false }
	return fixed.I(int(owner.Glyph(index).Advance)), true
}

// Implements [font.Face]. Kerning pairs are only defined within a
// single font, so codepoints resolving to different fonts of the
// fallback chain never kern.
func (self *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	font0, index0, found := self.font.Resolve(r0)
	if !found { return 0 }
	font1, index1, found := self.font.Resolve(r1)
	if !found || font0 != font1 { return 0 }
	adjust, has := font0.Kern(index0, index1)
	if !has { return 0 }
	return fixed.I(int(adjust))
}
