package bitfont

import "image/color"

// Determines what a [Renderer] does with codepoints that no font in
// the fallback chain represents. The resolver itself never guesses;
// this policy is renderer configuration.
type MissingMode uint8

const (
	// Unrepresented codepoints emit no pixels and don't advance the pen.
	MissingSkip MissingMode = iota

	// Unrepresented codepoints are drawn with the placeholder glyph
	// set through [Renderer.SetPlaceholder]().
	MissingPlaceholder
)

// A Renderer is a small configurable front end over [DrawIterator]:
// it remembers a font, a color and a missing-glyph policy, and blits
// draw instructions onto a [Target].
//
// The zero value is valid; you only need to set a font before drawing.
// Renderers keep no reference to targets between calls, and rendering
// itself never mutates the font, so any number of renderers may share
// one font concurrently. Exclusive access to the target is the
// caller's responsibility.
type Renderer struct {
	font        *Font
	fontColor   color.Color
	missingMode MissingMode
	placeholder GlyphIndex
}

// Sets the font used on subsequent operations. Drawing without a
// font panics; there's no meaningful default.
func (self *Renderer) SetFont(font *Font) { self.font = font }

// Returns the current font. Nil by default.
func (self *Renderer) GetFont() *Font { return self.font }

// Sets the color used for set bits on subsequent draws.
// The default color is white.
func (self *Renderer) SetColor(fontColor color.Color) { self.fontColor = fontColor }

// Returns the current drawing color.
func (self *Renderer) GetColor() color.Color {
	if self.fontColor == nil { return color.RGBA{255, 255, 255, 255} }
	return self.fontColor
}

// Sets the policy for codepoints not represented by the font or any
// of its fallbacks. The default is [MissingSkip].
func (self *Renderer) SetMissingMode(mode MissingMode) { self.missingMode = mode }

// Returns the current missing-glyph policy.
func (self *Renderer) GetMissingMode() MissingMode { return self.missingMode }

// Sets the glyph drawn for unrepresented codepoints and switches the
// missing-glyph policy to [MissingPlaceholder]. The index refers to
// the primary font's glyph table.
func (self *Renderer) SetPlaceholder(index GlyphIndex) {
	self.placeholder = index
	self.missingMode = MissingPlaceholder
}

// Returns the width of the text in pixels, using the current font and
// missing-glyph policy. The width is the sum of advance widths;
// kerning doesn't participate, consistently with it adjusting drawn
// positions only. For multi-line text, the widest line is reported.
func (self *Renderer) Measure(text string) int {
	if self.font == nil { panic("can't measure text with nil font (tip: Renderer.SetFont())") }
	width, maxWidth := 0, 0
	for _, codePoint := range text {
		if codePoint == '\n' {
			if width > maxWidth { maxWidth = width }
			width = 0
			continue
		}
		font, index, found := self.font.Resolve(codePoint)
		if !found {
			if self.missingMode != MissingPlaceholder { continue }
			font, index = self.font, self.placeholder
		}
		width += int(font.glyphs[index].Advance)
	}
	if width > maxWidth { maxWidth = width }
	return maxWidth
}
