package bitfont

// A single draw instruction produced by a [DrawIterator]: one glyph
// image and the absolute pixel coordinate of its top-left corner.
// Consumers only need to blit Data at (X, Y); origin, advance and
// kerning have already been applied.
type DrawOp struct {
	// Bitmap bytes, row-major, Stride bytes per row, MSB leftmost.
	// Aliases the owning font's pool; read-only.
	Data []byte

	// Bitmap row width in bytes.
	Stride uint8

	// Glyph index within the owning font.
	Index GlyphIndex

	// Absolute position of the image's top-left pixel.
	X, Y int

	// Pool reference of the image, for consumers that address the
	// pool directly instead of going through Data.
	Bitmap BitmapRef
}

// Image height in pixels.
func (self *DrawOp) Height() int {
	if self.Stride == 0 { return 0 }
	return len(self.Data) / int(self.Stride)
}

// A DrawIterator walks a codepoint sequence and lazily produces one
// [DrawOp] per renderable glyph. It performs no layout beyond a single
// line: detecting line breaks and restarting with an adjusted y is the
// caller's responsibility (see [Font.LineAdvance]()).
//
// The iterator is a plain value with constant working memory: no part
// of the input is buffered and nothing is heap allocated, regardless
// of string length. It can be restarted from the beginning at any
// point with [DrawIterator.Reset]().
type DrawIterator struct {
	font *Font
	text string
	iter ltrStringIterator

	x0   int
	penX int
	y0   int

	prevFont  *Font
	prevIndex GlyphIndex
	hasPrev   bool

	placeholder    GlyphIndex
	usePlaceholder bool
}

// Creates a [DrawIterator] over the given text with the glyph boxes
// of the first line starting at (x, y) (their top-left, not the
// baseline).
func (self *Font) Instructions(text string, x, y int) DrawIterator {
	return DrawIterator{font: self, text: text, x0: x, penX: x, y0: y}
}

// Configures the iterator to draw the given glyph of its primary font
// in place of codepoints that no font in the fallback chain represents.
// Without a placeholder, unrepresented codepoints are skipped: they
// emit no pixels and don't advance the pen.
func (self *DrawIterator) SetPlaceholder(index GlyphIndex) {
	self.placeholder = index
	self.usePlaceholder = true
}

// Restarts the iterator at the beginning of its text.
func (self *DrawIterator) Reset() {
	self.iter = ltrStringIterator{}
	self.penX = self.x0
	self.hasPrev = false
}

// Current pen position, the x where the next glyph's advance box
// starts. Useful to measure partially consumed text.
func (self *DrawIterator) Pen() int { return self.penX }

// Returns the next draw instruction. Ok is false once the codepoint
// input is exhausted. Blank glyphs still produce an instruction (with
// empty Data) so that positions remain observable; codepoints skipped
// by the missing-glyph policy produce none, so a single Next() call
// may consume multiple codepoints.
func (self *DrawIterator) Next() (op DrawOp, ok bool) {
	for {
		codePoint := self.iter.Next(self.text)
		if codePoint == -1 { return DrawOp{}, false }

		font, index, found := self.font.Resolve(codePoint)
		if !found {
			if !self.usePlaceholder {
				// skipped codepoints break the kerning pair chain
				self.hasPrev = false
				continue
			}
			font, index = self.font, self.placeholder
		}
		glyph := font.glyphs[index]

		// kerning shifts the drawn position of this glyph only; the
		// pen keeps advancing by the unadjusted advance widths
		drawX := self.penX + int(glyph.OriginX)
		if self.hasPrev && self.prevFont == font {
			adjust, has := font.Kern(self.prevIndex, index)
			if has { drawX += int(adjust) }
		}

		self.penX += int(glyph.Advance)
		self.prevFont, self.prevIndex, self.hasPrev = font, index, true

		return DrawOp{
			Data:   font.Bitmap(glyph.Bitmap),
			Stride: glyph.Stride,
			Index:  index,
			X:      drawX,
			Y:      self.y0 + int(glyph.OriginY),
			Bitmap: glyph.Bitmap,
		}, true
	}
}
