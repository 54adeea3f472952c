package bitfont

import "image/color"

// Draws the given text with the current configuration (font, color,
// missing-glyph policy). The given position is the top-left of the
// first line's bounding box, so the first baseline sits at
// y + [Font.Ascent]().
//
// Line breaks ('\n') restart a new pass of the underlying iterator
// with x back at the left edge and y advanced by [Font.LineAdvance]();
// no other layout is performed.
//
// Out-of-bounds pixels are silently dropped by the target's Set, so
// partial clipping comes for free.
func (self *Renderer) Draw(target Target, text string, x, y int) {
	if target == nil { panic("can't draw on nil Target") }
	if self.font == nil { panic("can't draw text with nil font (tip: Renderer.SetFont())") }

	fontColor := self.GetColor()
	lineStart := 0
	for lineStart <= len(text) {
		lineEnd := lineStart
		for lineEnd < len(text) && text[lineEnd] != '\n' { lineEnd++ }

		iter := self.font.Instructions(text[lineStart:lineEnd], x, y)
		if self.missingMode == MissingPlaceholder {
			iter.SetPlaceholder(self.placeholder)
		}
		for {
			op, ok := iter.Next()
			if !ok { break }
			blitOp(target, &op, fontColor)
		}

		if lineEnd >= len(text) { break }
		lineStart = lineEnd + 1
		y += self.font.LineAdvance()
	}
}

// Blits a 1bpp draw instruction onto the target, most significant bit
// leftmost, one Set call per set bit. Clear bits leave the target
// untouched.
func blitOp(target Target, op *DrawOp, fontColor color.Color) {
	if len(op.Data) == 0 || op.Stride == 0 { return }
	stride := int(op.Stride)
	y := op.Y
	for row := 0; row+stride <= len(op.Data); row += stride {
		x := op.X
		for _, b := range op.Data[row : row+stride] {
			for bit := 0; bit < 8; bit++ {
				if b&0x80 != 0 { target.Set(x, y, fontColor) }
				b <<= 1
				x++
			}
		}
		y++
	}
}
